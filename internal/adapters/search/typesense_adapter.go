package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	tsclient "github.com/afandyna/ser-Health/internal/infrastructure/clients/typesense"
)

const (
	collectionName = "listings"
	maxPerPage     = 250
)

// TypesenseAdapter implements the listing index using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.ListingSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Name identifies the adapter as a verified source.
func (a *TypesenseAdapter) Name() string { return "typesense" }

// FetchVerified returns indexed listings, for use in a source chain.
func (a *TypesenseAdapter) FetchVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return a.ListVerified(ctx, kind)
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "listing_id", Type: "string"},
			{Name: "kind", Type: "string", Facet: pointer.True()},
			{Name: "name", Type: "string"},
			{Name: "name_ar", Type: "string", Optional: pointer.True()},
			{Name: "location", Type: "geopoint", Optional: pointer.True()},
			{Name: "category_tags", Type: "string[]", Facet: pointer.True()},
			{Name: "status", Type: "string", Optional: pointer.True()},
			{Name: "availability", Type: "string", Optional: pointer.True()},
			{Name: "attributes", Type: "string", Index: pointer.False(), Optional: pointer.True()},
			{Name: "verified", Type: "bool"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// DropSchema deletes the collection; InitSchema recreates it.
func (a *TypesenseAdapter) DropSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(collectionName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete typesense collection: %w", err)
	}
	return nil
}

// Index adds or replaces a listing
func (a *TypesenseAdapter) Index(ctx context.Context, listing *entities.Listing) error {
	document, err := toDocument(listing)
	if err != nil {
		return err
	}

	_, err = a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index listing: %w", err)
	}
	return nil
}

// Delete removes a listing from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, kind entities.Kind, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(documentID(kind, id)).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete listing from index: %w", err)
	}
	return nil
}

// ListVerified returns verified listings of a kind from the index.
func (a *TypesenseAdapter) ListVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	listings := []entities.Listing{}
	for page := 1; ; page++ {
		searchParams := &api.SearchCollectionParams{
			Q:        pointer.String("*"),
			QueryBy:  pointer.String("name"),
			FilterBy: pointer.String(fmt.Sprintf("kind:=%s && verified:=true", kind)),
			SortBy:   pointer.String("created_at:asc"),
			Page:     pointer.Int(page),
			PerPage:  pointer.Int(maxPerPage),
		}

		result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
		if err != nil {
			return nil, fmt.Errorf("failed to search listings: %w", err)
		}
		if result.Hits == nil {
			break
		}

		for _, hit := range *result.Hits {
			if hit.Document == nil {
				continue
			}
			listing, err := fromDocument(*hit.Document)
			if err != nil {
				return nil, err
			}
			listings = append(listings, listing)
		}

		if len(*result.Hits) < maxPerPage {
			break
		}
	}
	return listings, nil
}

func documentID(kind entities.Kind, id string) string {
	return string(kind) + "_" + id
}

func toDocument(listing *entities.Listing) (map[string]interface{}, error) {
	attrs, err := json.Marshal(listing.Attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode listing attributes: %w", err)
	}

	tags := listing.CategoryTags
	if tags == nil {
		tags = []string{}
	}

	document := map[string]interface{}{
		"id":            documentID(listing.Kind, listing.ID),
		"listing_id":    listing.ID,
		"kind":          string(listing.Kind),
		"name":          listing.Name,
		"name_ar":       listing.NameLocalized,
		"category_tags": tags,
		"status":        listing.Status,
		"availability":  string(listing.Availability),
		"attributes":    string(attrs),
		"verified":      listing.Verified,
		"created_at":    listing.CreatedAt.Unix(),
	}
	if listing.Position != nil {
		document["location"] = []float64{listing.Position.Lat, listing.Position.Lng}
	}
	return document, nil
}

// fromDocument rebuilds a listing from a decoded search hit. Values arrive as
// generic JSON types, so every field is read defensively.
func fromDocument(doc map[string]interface{}) (entities.Listing, error) {
	listing := entities.Listing{
		ID:            stringField(doc, "listing_id"),
		Kind:          entities.Kind(stringField(doc, "kind")),
		Name:          stringField(doc, "name"),
		NameLocalized: stringField(doc, "name_ar"),
		Status:        stringField(doc, "status"),
		Availability:  entities.Availability(stringField(doc, "availability")),
		Source:        entities.SourceVerified,
	}
	if v, ok := doc["verified"].(bool); ok {
		listing.Verified = v
	}
	if v, ok := doc["created_at"].(float64); ok {
		listing.CreatedAt = time.Unix(int64(v), 0).UTC()
	}

	if loc, ok := doc["location"].([]interface{}); ok && len(loc) == 2 {
		lat, latOK := loc[0].(float64)
		lng, lngOK := loc[1].(float64)
		if latOK && lngOK {
			if p, err := entities.NewGeoPoint(lat, lng); err == nil {
				listing.Position = &p
			}
		}
	}

	if tags, ok := doc["category_tags"].([]interface{}); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				listing.CategoryTags = append(listing.CategoryTags, s)
			}
		}
	}

	if raw := stringField(doc, "attributes"); raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), &listing.Attributes); err != nil {
			return entities.Listing{}, fmt.Errorf("failed to decode attributes of %s: %w", listing.ID, err)
		}
	}
	return listing, nil
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
