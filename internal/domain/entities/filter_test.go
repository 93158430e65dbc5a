package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriterion_Category(t *testing.T) {
	cardio := Doctor{ID: "d1", Name: "Dr. Ahmed", Specialty: "Cardiology", SpecialtyAr: "أمراض القلب"}.Listing()
	derm := Doctor{ID: "d4", Name: "Dr. Fatima", Specialty: "Dermatology"}.Listing()

	c := Category("cardiology")
	assert.True(t, c.Matches(cardio))
	assert.False(t, c.Matches(derm))

	// Arabic tag matches too.
	assert.True(t, Category("أمراض القلب").Matches(cardio))
}

func TestFilterCriterion_CategoryTextIsBidirectional(t *testing.T) {
	lab := Lab{ID: "l1", Name: "Al-Borg", AvailableTests: []string{"CBC", "Blood Sugar", "Liver Function"}}.Listing()

	assert.True(t, CategoryText("sugar").Matches(lab), "query inside tag")
	assert.True(t, CategoryText("fasting blood sugar test").Matches(lab), "tag inside query")
	assert.False(t, CategoryText("MRI").Matches(lab))
}

func TestFilterCriterion_EmptyValueMatchesEverything(t *testing.T) {
	l := Pharmacy{ID: "m1", Name: "El Ezaby"}.Listing()
	assert.True(t, Status("  ").Matches(l))
	assert.True(t, MatchesAll(l, nil))
}

func TestFilterCriterion_TextIgnoresEmptyFields(t *testing.T) {
	// A listing with no address must not match every query through the empty field.
	l := Listing{ID: "x", Name: "Delta Hospital"}
	assert.False(t, Text("cleopatra").Matches(l))
	assert.True(t, Text("delta").Matches(l))
	assert.True(t, Text("delta hospital mansoura").Matches(l))
}

func TestMatchesAll_IsAndComposed(t *testing.T) {
	busy := Doctor{ID: "d3", Name: "Dr. Omar", Specialty: "Orthopedics", Availability: AvailabilityBusy}.Listing()

	assert.True(t, MatchesAll(busy, []FilterCriterion{Category("Orthopedics")}))
	assert.False(t, MatchesAll(busy, []FilterCriterion{Category("Orthopedics"), AvailabilityIs(AvailabilityAvailable)}))
}

func TestDirectoryFilter_BloodTypeOnlyForBloodDonations(t *testing.T) {
	f := DirectoryFilter{DonationType: "ambulance", BloodType: "A+"}
	assert.Equal(t, []FilterCriterion{Category("ambulance")}, f.Criteria(KindDonation))

	f = DirectoryFilter{DonationType: "blood", BloodType: "A+"}
	assert.Equal(t, []FilterCriterion{Category("blood"), AttributeEquals(AttrBloodType, "A+")}, f.Criteria(KindDonation))

	f = DirectoryFilter{DonationType: "all", BloodType: "A+"}
	assert.Empty(t, f.Criteria(KindDonation))
}

func TestDirectoryFilter_LabUsesPartialMatch(t *testing.T) {
	f := DirectoryFilter{Category: "sugar", Query: "borg"}
	assert.Equal(t, []FilterCriterion{CategoryText("sugar"), Text("borg")}, f.Criteria(KindLab))
}
