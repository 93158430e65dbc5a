package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

const listingsTable = "listings"

var listingColumns = []interface{}{
	"id", "kind", "name", "name_ar", "latitude", "longitude", "category_tags",
	"status", "availability", "attributes", "verified", "created_at",
}

// ListingAdapter implements listing persistence in Postgres.
type ListingAdapter struct {
	client  *postgres.Client
	db      *goqu.Database
	metrics *observability.Metrics
}

var _ repositories.ListingRepository = (*ListingAdapter)(nil)

// NewListingAdapter creates a new listing adapter. metrics may be nil.
func NewListingAdapter(client *postgres.Client, metrics *observability.Metrics) *ListingAdapter {
	return &ListingAdapter{
		client:  client,
		db:      goqu.New("postgres", client.DB()),
		metrics: metrics,
	}
}

// Name identifies the adapter as a verified source.
func (a *ListingAdapter) Name() string { return "postgres" }

// FetchVerified returns approved listings, for use in a source chain.
func (a *ListingAdapter) FetchVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return a.ListVerified(ctx, kind)
}

// Create inserts a listing.
func (a *ListingAdapter) Create(ctx context.Context, listing *entities.Listing) error {
	if listing == nil {
		return apperrors.NewInternalError("listing is nil", fmt.Errorf("listing is nil"))
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}

	attrs, err := json.Marshal(nonNilAttributes(listing.Attributes))
	if err != nil {
		return apperrors.NewInternalError("failed to encode listing attributes", err)
	}

	var lat, lng sql.NullFloat64
	if listing.Position != nil {
		lat = sql.NullFloat64{Float64: listing.Position.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: listing.Position.Lng, Valid: true}
	}

	record := goqu.Record{
		"id":            listing.ID,
		"kind":          string(listing.Kind),
		"name":          listing.Name,
		"name_ar":       listing.NameLocalized,
		"latitude":      lat,
		"longitude":     lng,
		"category_tags": pq.Array(nonNilTags(listing.CategoryTags)),
		"status":        listing.Status,
		"availability":  string(listing.Availability),
		"attributes":    string(attrs),
		"verified":      listing.Verified,
		"created_at":    listing.CreatedAt,
	}

	query, args, err := a.db.Insert(listingsTable).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build listing insert query", err)
	}

	start := time.Now()
	_, err = a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, listingsTable+".insert", time.Since(start))
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", listing.Kind, listing.ID))
		}
		return apperrors.NewInternalError("failed to create listing", err)
	}
	return nil
}

// GetByID retrieves a listing regardless of its verification state.
func (a *ListingAdapter) GetByID(ctx context.Context, kind entities.Kind, id string) (*entities.Listing, error) {
	query, args, err := a.db.From(listingsTable).
		Select(listingColumns...).
		Where(goqu.Ex{"kind": string(kind), "id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build listing query", err)
	}

	start := time.Now()
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	listing, err := scanListing(row)
	observability.RecordDBMetric(ctx, a.metrics, listingsTable+".select", time.Since(start))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get listing", err)
	}
	return listing, nil
}

// ListVerified returns approved listings of a kind, oldest first.
func (a *ListingAdapter) ListVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return a.list(ctx, kind, true)
}

// ListPending returns listings awaiting approval, oldest first.
func (a *ListingAdapter) ListPending(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return a.list(ctx, kind, false)
}

// GetByIDs returns the listings of a kind among ids. Missing ids are skipped.
func (a *ListingAdapter) GetByIDs(ctx context.Context, kind entities.Kind, ids []string) ([]entities.Listing, error) {
	if len(ids) == 0 {
		return []entities.Listing{}, nil
	}
	return a.selectListings(ctx, goqu.Ex{"kind": string(kind), "id": ids})
}

func (a *ListingAdapter) list(ctx context.Context, kind entities.Kind, verified bool) ([]entities.Listing, error) {
	return a.selectListings(ctx, goqu.Ex{"kind": string(kind), "verified": verified})
}

func (a *ListingAdapter) selectListings(ctx context.Context, where goqu.Ex) ([]entities.Listing, error) {
	query, args, err := a.db.From(listingsTable).
		Select(listingColumns...).
		Where(where).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build listing query", err)
	}

	start := time.Now()
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list listings", err)
	}
	defer rows.Close()

	listings := []entities.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan listing", err)
		}
		listings = append(listings, *listing)
	}
	observability.RecordDBMetric(ctx, a.metrics, listingsTable+".select", time.Since(start))
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate listings", err)
	}
	return listings, nil
}

// SetVerified approves or withdraws a listing.
func (a *ListingAdapter) SetVerified(ctx context.Context, kind entities.Kind, id string, verified bool) error {
	query, args, err := a.db.Update(listingsTable).
		Set(goqu.Record{"verified": verified}).
		Where(goqu.Ex{"kind": string(kind), "id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build listing update query", err)
	}
	return a.execOne(ctx, "update", query, args, kind, id)
}

// Delete removes a listing.
func (a *ListingAdapter) Delete(ctx context.Context, kind entities.Kind, id string) error {
	query, args, err := a.db.Delete(listingsTable).
		Where(goqu.Ex{"kind": string(kind), "id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build listing delete query", err)
	}
	return a.execOne(ctx, "delete", query, args, kind, id)
}

func (a *ListingAdapter) execOne(ctx context.Context, op, query string, args []interface{}, kind entities.Kind, id string) error {
	start := time.Now()
	result, err := a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, listingsTable+"."+op, time.Since(start))
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to %s listing", op), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*entities.Listing, error) {
	var (
		listing      entities.Listing
		kind         string
		availability string
		lat, lng     sql.NullFloat64
		tags         pq.StringArray
		attrs        []byte
	)
	err := row.Scan(
		&listing.ID,
		&kind,
		&listing.Name,
		&listing.NameLocalized,
		&lat,
		&lng,
		&tags,
		&listing.Status,
		&availability,
		&attrs,
		&listing.Verified,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.Kind = entities.Kind(kind)
	listing.Availability = entities.Availability(availability)
	listing.CategoryTags = []string(tags)
	listing.Source = entities.SourceVerified
	if lat.Valid && lng.Valid {
		if p, err := entities.NewGeoPoint(lat.Float64, lng.Float64); err == nil {
			listing.Position = &p
		}
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &listing.Attributes); err != nil {
			return nil, fmt.Errorf("decode attributes: %w", err)
		}
	}
	return &listing, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func nonNilAttributes(attrs map[string]string) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}
	return attrs
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
