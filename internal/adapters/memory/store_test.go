package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func TestListingStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewListingStore()

	listing := &entities.Listing{
		ID:         "d1",
		Kind:       entities.KindDoctor,
		Name:       "Dr. Ahmed",
		Attributes: map[string]string{"specialty": "cardiology"},
	}
	require.NoError(t, store.Create(ctx, listing))
	assert.True(t, apperrors.IsType(store.Create(ctx, listing), apperrors.ErrorTypeConflict))

	pending, err := store.ListPending(ctx, entities.KindDoctor)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	verified, err := store.ListVerified(ctx, entities.KindDoctor)
	require.NoError(t, err)
	assert.NotNil(t, verified)
	assert.Empty(t, verified)

	require.NoError(t, store.SetVerified(ctx, entities.KindDoctor, "d1", true))
	verified, err = store.FetchVerified(ctx, entities.KindDoctor)
	require.NoError(t, err)
	require.Len(t, verified, 1)

	// Returned listings do not alias the stored copy.
	verified[0].Attributes["specialty"] = "changed"
	got, err := store.GetByID(ctx, entities.KindDoctor, "d1")
	require.NoError(t, err)
	assert.Equal(t, "cardiology", got.Attr("specialty"))

	require.NoError(t, store.Delete(ctx, entities.KindDoctor, "d1"))
	_, err = store.GetByID(ctx, entities.KindDoctor, "d1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.True(t, apperrors.IsType(store.Delete(ctx, entities.KindDoctor, "d1"), apperrors.ErrorTypeNotFound))
}

func TestListingStore_GetByIDs(t *testing.T) {
	ctx := context.Background()
	store := NewListingStore()
	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "d1", Kind: entities.KindDoctor, Name: "Dr. Ahmed"}))
	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "d2", Kind: entities.KindDoctor, Name: "Dr. Sara", Verified: true}))
	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "d3", Kind: entities.KindLab, Name: "Alfa"}))

	got, err := store.GetByIDs(ctx, entities.KindDoctor, []string{"d2", "d3", "d1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)
	assert.Equal(t, "d1", got[1].ID)
}

func TestListingStore_OrdersByCreation(t *testing.T) {
	ctx := context.Background()
	store := NewListingStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "b", Kind: entities.KindLab, Verified: true, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "a", Kind: entities.KindLab, Verified: true, CreatedAt: base}))
	require.NoError(t, store.Create(ctx, &entities.Listing{ID: "c", Kind: entities.KindPharmacy, Verified: true, CreatedAt: base}))

	labs, err := store.ListVerified(ctx, entities.KindLab)
	require.NoError(t, err)
	require.Len(t, labs, 2)
	assert.Equal(t, "a", labs[0].ID)
	assert.Equal(t, "b", labs[1].ID)
}

func TestBookingStore_SlotLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()

	first := &entities.Booking{ID: "b1", DoctorID: "d1", BookingDate: "2024-05-01", BookingTime: "10:00", Status: entities.BookingPending}
	require.NoError(t, store.Create(ctx, first))

	booked, err := store.IsSlotBooked(ctx, "d1", "2024-05-01", "10:00")
	require.NoError(t, err)
	assert.True(t, booked)

	second := &entities.Booking{ID: "b2", DoctorID: "d1", BookingDate: "2024-05-01", BookingTime: "10:00", Status: entities.BookingPending}
	assert.True(t, apperrors.IsType(store.Create(ctx, second), apperrors.ErrorTypeConflict))

	require.NoError(t, store.Cancel(ctx, "b1"))
	assert.True(t, apperrors.IsType(store.Cancel(ctx, "b1"), apperrors.ErrorTypeNotFound))

	booked, err = store.IsSlotBooked(ctx, "d1", "2024-05-01", "10:00")
	require.NoError(t, err)
	assert.False(t, booked)
	require.NoError(t, store.Create(ctx, second))

	require.NoError(t, store.Create(ctx, &entities.Booking{ID: "b3", DoctorID: "d1", BookingDate: "2024-04-30", BookingTime: "12:00"}))
	list, err := store.ListByDoctor(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b3", list[0].ID)
}
