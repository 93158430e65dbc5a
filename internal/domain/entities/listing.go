package entities

import (
	"strings"
	"time"
)

// Kind identifies the directory a listing belongs to.
type Kind string

const (
	KindHospital Kind = "hospital"
	KindDoctor   Kind = "doctor"
	KindPharmacy Kind = "pharmacy"
	KindLab      Kind = "lab"
	KindDonation Kind = "donation"
)

// AllKinds lists every directory kind in display order.
var AllKinds = []Kind{KindHospital, KindDoctor, KindPharmacy, KindLab, KindDonation}

// ParseKind accepts singular or plural forms ("doctors", "Labs").
func ParseKind(raw string) (Kind, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "hospital", "hospitals":
		return KindHospital, true
	case "doctor", "doctors":
		return KindDoctor, true
	case "pharmacy", "pharmacies":
		return KindPharmacy, true
	case "lab", "labs":
		return KindLab, true
	case "donation", "donations":
		return KindDonation, true
	}
	return "", false
}

// Source is the provenance of a listing.
type Source string

const (
	// SourceVerified listings come from the curated store and are never dropped.
	SourceVerified Source = "verified"
	// SourceSupplementary listings come from an external place search.
	SourceSupplementary Source = "supplementary"
)

// Availability is the discrete availability state used for ranking.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// Rank orders availability states; unknown states rank as available.
func (a Availability) Rank() int {
	switch a {
	case AvailabilityBusy:
		return 1
	case AvailabilityOffline:
		return 2
	default:
		return 0
	}
}

// Attribute keys shared by listing kinds.
const (
	AttrPhone      = "phone"
	AttrAddress    = "address"
	AttrAddressAr  = "address_ar"
	AttrCity       = "city"
	AttrBloodType  = "blood_type"
	AttrRating     = "rating"
	AttrSampleData = "sample"
)

// Listing is the locatable record shared by every directory kind.
type Listing struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	Name          string            `json:"name"`
	NameLocalized string            `json:"name_localized,omitempty"`
	Position      *GeoPoint         `json:"position,omitempty"`
	CategoryTags  []string          `json:"category_tags,omitempty"`
	Status        string            `json:"status,omitempty"`
	Availability  Availability      `json:"availability,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	Source        Source            `json:"source"`
	Verified      bool              `json:"verified"`
	CreatedAt     time.Time         `json:"created_at,omitempty"`

	// Derived at query time.
	DistanceKm    float64 `json:"distance_km"`
	DistanceKnown bool    `json:"distance_known"`
}

// Attr returns an attribute value or "".
func (l Listing) Attr(key string) string {
	if l.Attributes == nil {
		return ""
	}
	return l.Attributes[key]
}

// Locatable is implemented by every per-kind record.
type Locatable interface {
	Listing() Listing
}

// EmergencyNumber is a national hotline shown on the emergency page.
type EmergencyNumber struct {
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Number string `json:"number"`
}

// EmergencyNumbers are the Egyptian national hotlines.
var EmergencyNumbers = []EmergencyNumber{
	{Name: "Ambulance", NameAr: "الإسعاف", Number: "123"},
	{Name: "Police", NameAr: "الشرطة", Number: "122"},
	{Name: "Fire", NameAr: "الإطفاء", Number: "180"},
	{Name: "Traffic Accidents", NameAr: "حوادث المرور", Number: "128"},
}
