package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewClientFromDB(db), mock
}

var listingRowColumns = []string{
	"id", "kind", "name", "name_ar", "latitude", "longitude", "category_tags",
	"status", "availability", "attributes", "verified", "created_at",
}

func TestListingAdapter_Create(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectExec(`INSERT INTO "listings"`).WillReturnResult(sqlmock.NewResult(0, 1))

	listing := &entities.Listing{
		ID:           "h1",
		Kind:         entities.KindHospital,
		Name:         "Dar Al Fouad",
		Position:     &entities.GeoPoint{Lat: 30.01, Lng: 31.0},
		CategoryTags: []string{"general"},
		Attributes:   map[string]string{entities.AttrPhone: "16370"},
	}
	require.NoError(t, adapter.Create(context.Background(), listing))
	assert.False(t, listing.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingAdapter_Create_Duplicate(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectExec(`INSERT INTO "listings"`).WillReturnError(&pq.Error{Code: "23505"})

	err := adapter.Create(context.Background(), &entities.Listing{ID: "h1", Kind: entities.KindHospital, Name: "X"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestListingAdapter_ListVerified(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listingRowColumns).
		AddRow("h1", "hospital", "Kasr Al Ainy", "قصر العيني", 30.03, 31.23, "{general,emergency}", "open", "", []byte(`{"phone":"0223"}`), true, created).
		AddRow("h2", "hospital", "No Coordinates", "", nil, nil, "{}", "", "", []byte(`{}`), true, created)
	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).WillReturnRows(rows)

	listings, err := adapter.ListVerified(context.Background(), entities.KindHospital)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, entities.KindHospital, first.Kind)
	assert.Equal(t, "قصر العيني", first.NameLocalized)
	require.NotNil(t, first.Position)
	assert.InDelta(t, 30.03, first.Position.Lat, 1e-9)
	assert.Equal(t, []string{"general", "emergency"}, first.CategoryTags)
	assert.Equal(t, "0223", first.Attr(entities.AttrPhone))
	assert.Equal(t, entities.SourceVerified, first.Source)

	assert.Nil(t, listings[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingAdapter_FetchVerified_Empty(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).WillReturnRows(sqlmock.NewRows(listingRowColumns))

	listings, err := adapter.FetchVerified(context.Background(), entities.KindLab)
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
	assert.Equal(t, "postgres", adapter.Name())
}

func TestListingAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).WillReturnRows(sqlmock.NewRows(listingRowColumns))

	listing, err := adapter.GetByID(context.Background(), entities.KindDoctor, "missing")
	assert.Nil(t, listing)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestListingAdapter_SetVerified(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectExec(`UPDATE "listings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "listings"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, adapter.SetVerified(context.Background(), entities.KindPharmacy, "p1", true))
	err := adapter.SetVerified(context.Background(), entities.KindPharmacy, "missing", true)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingAdapter_Delete(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	mock.ExpectExec(`DELETE FROM "listings"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, adapter.Delete(context.Background(), entities.KindLab, "l1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingAdapter_GetByIDs(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewListingAdapter(client, nil)

	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listingRowColumns).
		AddRow("d1", "doctor", "Dr. Ahmed", "", nil, nil, "{cardiology}", "", "available", []byte(`{}`), true, created).
		AddRow("d2", "doctor", "Dr. Sara", "", nil, nil, "{}", "", "busy", []byte(`{}`), false, created)
	mock.ExpectQuery(`SELECT (.+) FROM "listings" WHERE (.+)"id" IN \(\$\d+, \$\d+, \$\d+\)`).
		WillReturnRows(rows)

	listings, err := adapter.GetByIDs(context.Background(), entities.KindDoctor, []string{"d1", "d2", "missing"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, entities.AvailabilityBusy, listings[1].Availability)
	assert.NoError(t, mock.ExpectationsWereMet())

	empty, err := adapter.GetByIDs(context.Background(), entities.KindDoctor, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
