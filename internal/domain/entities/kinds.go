package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// Hospital represents a hospital directory entry.
type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameAr      string   `json:"name_ar"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	AddressAr   string   `json:"address_ar"`
	City        string   `json:"city,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Ambulance   bool     `json:"ambulance"`
	Status      string   `json:"status"` // available, busy, unavailable
	Departments []string `json:"departments,omitempty"`
}

// Listing converts the hospital into its locatable form.
func (h Hospital) Listing() Listing {
	tags := append([]string{}, h.Departments...)
	if h.Ambulance {
		tags = append(tags, "ambulance")
	}
	return Listing{
		ID:            h.ID,
		Kind:          KindHospital,
		Name:          h.Name,
		NameLocalized: h.NameAr,
		Position:      positionOf(h.Latitude, h.Longitude),
		CategoryTags:  tags,
		Status:        h.Status,
		Attributes: compactAttributes(map[string]string{
			AttrPhone:     h.Phone,
			AttrAddress:   h.Address,
			AttrAddressAr: h.AddressAr,
			AttrCity:      h.City,
		}),
	}
}

// Doctor represents a doctor directory entry.
type Doctor struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	NameAr          string       `json:"name_ar"`
	Specialty       string       `json:"specialty"`
	SpecialtyAr     string       `json:"specialty_ar"`
	Clinic          string       `json:"clinic"`
	ClinicAr        string       `json:"clinic_ar"`
	Phone           string       `json:"phone"`
	City            string       `json:"city,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	Rating          float64      `json:"rating"`
	Visits          int          `json:"visits"`
	ConsultationFee float64      `json:"consultation_fee,omitempty"`
	Availability    Availability `json:"availability"`
	AvailableDays   []string     `json:"available_days,omitempty"`
	AvailableSlots  []string     `json:"available_slots,omitempty"`
}

// Listing converts the doctor into its locatable form.
func (d Doctor) Listing() Listing {
	availability := d.Availability
	if availability == "" {
		availability = AvailabilityAvailable
	}
	attrs := map[string]string{
		AttrPhone:     d.Phone,
		AttrAddress:   d.Clinic,
		AttrAddressAr: d.ClinicAr,
		AttrCity:      d.City,
		"visits":      strconv.Itoa(d.Visits),
	}
	if d.Rating > 0 {
		attrs[AttrRating] = strconv.FormatFloat(d.Rating, 'f', 1, 64)
	}
	if d.ConsultationFee > 0 {
		attrs["consultation_fee"] = strconv.FormatFloat(d.ConsultationFee, 'f', 0, 64)
	}
	if len(d.AvailableSlots) > 0 {
		attrs["available_slots"] = strings.Join(d.AvailableSlots, ",")
	}
	return Listing{
		ID:            d.ID,
		Kind:          KindDoctor,
		Name:          d.Name,
		NameLocalized: d.NameAr,
		Position:      positionOf(d.Latitude, d.Longitude),
		CategoryTags:  nonEmpty(d.Specialty, d.SpecialtyAr),
		Availability:  availability,
		Attributes:    compactAttributes(attrs),
	}
}

// Pharmacy represents a pharmacy directory entry.
type Pharmacy struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	NameAr    string   `json:"name_ar"`
	Address   string   `json:"address"`
	AddressAr string   `json:"address_ar"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsOpen    bool     `json:"is_open"`
}

// Listing converts the pharmacy into its locatable form.
func (p Pharmacy) Listing() Listing {
	return Listing{
		ID:            p.ID,
		Kind:          KindPharmacy,
		Name:          p.Name,
		NameLocalized: p.NameAr,
		Position:      positionOf(p.Latitude, p.Longitude),
		Status:        OpenStatus(KindPharmacy, p.IsOpen),
		Attributes: compactAttributes(map[string]string{
			AttrPhone:     p.Phone,
			AttrAddress:   p.Address,
			AttrAddressAr: p.AddressAr,
		}),
	}
}

// OpenStatus returns the status word a kind uses for open or closed.
// Pharmacies say open/closed; every other kind says available/busy.
func OpenStatus(kind Kind, open bool) string {
	if kind == KindPharmacy {
		if open {
			return "open"
		}
		return "closed"
	}
	if open {
		return "available"
	}
	return "busy"
}

// Lab represents a medical laboratory directory entry.
type Lab struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameAr           string   `json:"name_ar"`
	Address          string   `json:"address"`
	AddressAr        string   `json:"address_ar"`
	Phone            string   `json:"phone"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	AvailableTests   []string `json:"available_tests"`
	AvailableTestsAr []string `json:"available_tests_ar,omitempty"`
}

// Listing converts the lab into its locatable form. Tests in both locales become tags.
func (l Lab) Listing() Listing {
	tags := make([]string, 0, len(l.AvailableTests)+len(l.AvailableTestsAr))
	tags = append(tags, nonEmpty(l.AvailableTests...)...)
	tags = append(tags, nonEmpty(l.AvailableTestsAr...)...)
	return Listing{
		ID:            l.ID,
		Kind:          KindLab,
		Name:          l.Name,
		NameLocalized: l.NameAr,
		Position:      positionOf(l.Latitude, l.Longitude),
		CategoryTags:  tags,
		Attributes: compactAttributes(map[string]string{
			AttrPhone:     l.Phone,
			AttrAddress:   l.Address,
			AttrAddressAr: l.AddressAr,
		}),
	}
}

// DonationType is the kind of help a donor offers.
type DonationType string

const (
	DonationAmbulance DonationType = "ambulance"
	DonationBlood     DonationType = "blood"
	DonationSupplies  DonationType = "supplies"
)

// Donation represents a blood, ambulance or supplies donor.
type Donation struct {
	ID         string       `json:"id"`
	DonorName  string       `json:"donor_name"`
	Type       DonationType `json:"type"`
	BloodType  string       `json:"blood_type,omitempty"`
	Location   string       `json:"location"`
	LocationAr string       `json:"location_ar"`
	Phone      string       `json:"phone"`
	Latitude   *float64     `json:"latitude,omitempty"`
	Longitude  *float64     `json:"longitude,omitempty"`
}

var bloodTypeSuffix = regexp.MustCompile(`\(([^)]*)\)`)

// ResolvedBloodType returns the blood type column or the "(A+)" suffix of the donor name.
func (d Donation) ResolvedBloodType() string {
	if bt := strings.TrimSpace(d.BloodType); bt != "" {
		return bt
	}
	if m := bloodTypeSuffix.FindStringSubmatch(d.DonorName); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Listing converts the donation into its locatable form.
func (d Donation) Listing() Listing {
	return Listing{
		ID:            d.ID,
		Kind:          KindDonation,
		Name:          d.DonorName,
		NameLocalized: d.DonorName,
		Position:      positionOf(d.Latitude, d.Longitude),
		CategoryTags:  nonEmpty(string(d.Type)),
		Attributes: compactAttributes(map[string]string{
			AttrPhone:     d.Phone,
			AttrAddress:   d.Location,
			AttrAddressAr: d.LocationAr,
			AttrBloodType: d.ResolvedBloodType(),
		}),
	}
}

// positionOf returns nil when either coordinate is missing or invalid.
func positionOf(lat, lng *float64) *GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}
	p := GeoPoint{Lat: *lat, Lng: *lng}
	if err := p.Validate(); err != nil {
		return nil
	}
	return &p
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func compactAttributes(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
