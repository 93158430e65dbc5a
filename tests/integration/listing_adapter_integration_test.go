//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/afandyna/ser-Health/internal/adapters/database"
	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

type ListingAdapterIntegrationTestSuite struct {
	suite.Suite
	client   *postgres.Client
	listings *database.ListingAdapter
}

func (s *ListingAdapterIntegrationTestSuite) SetupSuite() {
	s.client = newTestPostgresClient(s.T())
	require.NoError(s.T(), database.Migrate(context.Background(), s.client))
	s.listings = database.NewListingAdapter(s.client, nil)
}

func (s *ListingAdapterIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *ListingAdapterIntegrationTestSuite) SetupTest() {
	_, err := s.client.DB().Exec(`TRUNCATE TABLE bookings, listings`)
	require.NoError(s.T(), err)
}

func (s *ListingAdapterIntegrationTestSuite) TestRegisterAndApprove() {
	ctx := context.Background()
	pos := entities.GeoPoint{Lat: 30.0444, Lng: 31.2357}
	listing := &entities.Listing{
		ID:            uuid.NewString(),
		Kind:          entities.KindPharmacy,
		Name:          "El Ezaby",
		NameLocalized: "العزبي",
		Position:      &pos,
		CategoryTags:  []string{"24h"},
		Attributes:    map[string]string{entities.AttrPhone: "19600"},
	}
	require.NoError(s.T(), s.listings.Create(ctx, listing))

	pending, err := s.listings.ListPending(ctx, entities.KindPharmacy)
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), "العزبي", pending[0].NameLocalized)

	require.NoError(s.T(), s.listings.SetVerified(ctx, entities.KindPharmacy, listing.ID, true))

	verified, err := s.listings.ListVerified(ctx, entities.KindPharmacy)
	require.NoError(s.T(), err)
	require.Len(s.T(), verified, 1)
	assert.Equal(s.T(), "19600", verified[0].Attr(entities.AttrPhone))
	require.NotNil(s.T(), verified[0].Position)
	assert.InDelta(s.T(), 30.0444, verified[0].Position.Lat, 1e-9)
}

func (s *ListingAdapterIntegrationTestSuite) TestDuplicateIDConflicts() {
	ctx := context.Background()
	require.NoError(s.T(), s.listings.Create(ctx, &entities.Listing{ID: "dup", Kind: entities.KindLab, Name: "Alfa"}))

	err := s.listings.Create(ctx, &entities.Listing{ID: "dup", Kind: entities.KindLab, Name: "Alfa 2"})
	assert.True(s.T(), apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func (s *ListingAdapterIntegrationTestSuite) TestBookingSlotIsExclusive() {
	ctx := context.Background()
	bookings := database.NewBookingAdapter(s.client)
	first := &entities.Booking{
		ID:          uuid.NewString(),
		DoctorID:    "d-1",
		PatientName: "Mona",
		Phone:       "0100",
		BookingDate: "2030-01-02",
		BookingTime: "10:00",
		Status:      entities.BookingPending,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(s.T(), bookings.Create(ctx, first))

	second := *first
	second.ID = uuid.NewString()
	err := bookings.Create(ctx, &second)
	assert.True(s.T(), apperrors.IsType(err, apperrors.ErrorTypeConflict))

	require.NoError(s.T(), bookings.Cancel(ctx, first.ID))
	require.NoError(s.T(), bookings.Create(ctx, &second))
}

func TestListingAdapterIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ListingAdapterIntegrationTestSuite))
}
