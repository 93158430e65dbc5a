package sample

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

func TestSource_EveryKindHasData(t *testing.T) {
	src := NewSource()
	for _, kind := range entities.AllKinds {
		listings, err := src.FetchVerified(context.Background(), kind)
		require.NoError(t, err)
		assert.NotEmpty(t, listings, kind)
		for _, l := range listings {
			assert.Equal(t, kind, l.Kind)
			assert.Equal(t, entities.SourceVerified, l.Source)
			assert.Equal(t, "true", l.Attr(entities.AttrSampleData))
			assert.NotNil(t, l.Position, l.ID)
		}
	}
}

func TestSource_ReturnsFreshCopies(t *testing.T) {
	first := Listings(entities.KindHospital)
	first[0].Name = "changed"
	first[0].Attributes[entities.AttrPhone] = "000"

	second := Listings(entities.KindHospital)
	assert.Equal(t, "Mansoura University Hospitals", second[0].Name)
	assert.Equal(t, "0502202876", second[0].Attr(entities.AttrPhone))
}

func TestSource_DonationBloodTypes(t *testing.T) {
	byID := map[string]entities.Listing{}
	for _, l := range Listings(entities.KindDonation) {
		byID[l.ID] = l
	}
	assert.Equal(t, "A+", byID["dn1"].Attr(entities.AttrBloodType))
	assert.Equal(t, "", byID["dn3"].Attr(entities.AttrBloodType))
	assert.Equal(t, []string{"ambulance"}, byID["dn3"].CategoryTags)
}

func TestRecords_UnknownKind(t *testing.T) {
	assert.Empty(t, Records(entities.Kind("volunteer")))
}
