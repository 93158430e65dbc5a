package entities

import "strings"

// CriterionField selects which part of a listing a criterion inspects.
type CriterionField string

const (
	// CriterionCategory matches a category tag exactly (case-insensitive).
	CriterionCategory CriterionField = "category"
	// CriterionCategoryText matches a category tag by bidirectional substring.
	CriterionCategoryText CriterionField = "category_text"
	// CriterionStatus matches the status field.
	CriterionStatus CriterionField = "status"
	// CriterionAvailability matches the availability state.
	CriterionAvailability CriterionField = "availability"
	// CriterionAttribute matches Attributes[Attribute].
	CriterionAttribute CriterionField = "attribute"
	// CriterionText matches name, localized name, tags and address by bidirectional substring.
	CriterionText CriterionField = "text"
)

// FilterCriterion is a single predicate of the filter stage.
type FilterCriterion struct {
	Field     CriterionField `json:"field"`
	Value     string         `json:"value"`
	Attribute string         `json:"attribute,omitempty"`
}

// Category builds an exact category criterion.
func Category(value string) FilterCriterion {
	return FilterCriterion{Field: CriterionCategory, Value: value}
}

// CategoryText builds a partial-term category criterion.
func CategoryText(value string) FilterCriterion {
	return FilterCriterion{Field: CriterionCategoryText, Value: value}
}

// Status builds a status criterion.
func Status(value string) FilterCriterion {
	return FilterCriterion{Field: CriterionStatus, Value: value}
}

// AvailabilityIs builds an availability criterion.
func AvailabilityIs(value Availability) FilterCriterion {
	return FilterCriterion{Field: CriterionAvailability, Value: string(value)}
}

// AttributeEquals builds an attribute criterion.
func AttributeEquals(key, value string) FilterCriterion {
	return FilterCriterion{Field: CriterionAttribute, Attribute: key, Value: value}
}

// Text builds a free-text criterion.
func Text(value string) FilterCriterion {
	return FilterCriterion{Field: CriterionText, Value: value}
}

// IsEmpty reports whether the criterion carries no value and so matches everything.
func (c FilterCriterion) IsEmpty() bool {
	return strings.TrimSpace(c.Value) == ""
}

// Matches evaluates the criterion against a listing.
func (c FilterCriterion) Matches(l Listing) bool {
	if c.IsEmpty() {
		return true
	}
	value := normalize(c.Value)

	switch c.Field {
	case CriterionCategory:
		for _, tag := range l.CategoryTags {
			if normalize(tag) == value {
				return true
			}
		}
		return false
	case CriterionCategoryText:
		for _, tag := range l.CategoryTags {
			if containsEither(normalize(tag), value) {
				return true
			}
		}
		return false
	case CriterionStatus:
		return normalize(l.Status) == value
	case CriterionAvailability:
		availability := l.Availability
		if availability == "" {
			availability = AvailabilityAvailable
		}
		return string(availability) == value
	case CriterionAttribute:
		return normalize(l.Attr(c.Attribute)) == value
	case CriterionText:
		fields := []string{l.Name, l.NameLocalized, l.Attr(AttrAddress), l.Attr(AttrAddressAr)}
		fields = append(fields, l.CategoryTags...)
		for _, f := range fields {
			if containsEither(normalize(f), value) {
				return true
			}
		}
		return false
	}
	return false
}

// MatchesAll is the AND composition of criteria.
func MatchesAll(l Listing, criteria []FilterCriterion) bool {
	for _, c := range criteria {
		if !c.Matches(l) {
			return false
		}
	}
	return true
}

// DirectoryFilter carries the page-level filter inputs of every directory kind.
type DirectoryFilter struct {
	Category     string
	Query        string
	Status       string
	Availability string
	DonationType string
	BloodType    string
}

// Criteria translates page filters into criteria for a kind.
func (f DirectoryFilter) Criteria(kind Kind) []FilterCriterion {
	var criteria []FilterCriterion
	switch kind {
	case KindLab:
		// Test names are multi-word, so partial terms are allowed.
		if f.Category != "" {
			criteria = append(criteria, CategoryText(f.Category))
		}
	case KindDonation:
		donationType := f.DonationType
		if donationType == "" {
			donationType = f.Category
		}
		if donationType != "" && !strings.EqualFold(donationType, "all") {
			criteria = append(criteria, Category(donationType))
			if strings.EqualFold(donationType, string(DonationBlood)) && f.BloodType != "" && !strings.EqualFold(f.BloodType, "all") {
				criteria = append(criteria, AttributeEquals(AttrBloodType, f.BloodType))
			}
		}
	default:
		if f.Category != "" && !strings.EqualFold(f.Category, "all") {
			criteria = append(criteria, Category(f.Category))
		}
	}
	if f.Status != "" && !strings.EqualFold(f.Status, "all") {
		criteria = append(criteria, Status(f.Status))
	}
	if f.Availability != "" {
		criteria = append(criteria, AvailabilityIs(Availability(strings.ToLower(f.Availability))))
	}
	if f.Query != "" {
		criteria = append(criteria, Text(f.Query))
	}
	return criteria
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsEither is the bidirectional substring test. Empty fields never match.
func containsEither(field, query string) bool {
	if field == "" || query == "" {
		return false
	}
	return strings.Contains(field, query) || strings.Contains(query, field)
}
