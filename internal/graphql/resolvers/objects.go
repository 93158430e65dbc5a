package resolvers

import (
	"context"
	"fmt"

	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/graphql/loaders"
	"github.com/afandyna/ser-Health/internal/graphql/scalars"
)

func unknownField(typeName, name string) error {
	return fmt.Errorf("unknown field %s.%s", typeName, name)
}

type listingObject struct {
	entities.Listing
}

func listingObjects(listings []entities.Listing) []*listingObject {
	out := make([]*listingObject, 0, len(listings))
	for _, l := range listings {
		out = append(out, &listingObject{l})
	}
	return out
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (o *listingObject) Field(_ context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "id":
		return o.ID, nil
	case "kind":
		return string(o.Kind), nil
	case "name":
		return o.Name, nil
	case "nameLocalized":
		return optional(o.NameLocalized), nil
	case "position":
		if o.Position == nil {
			return nil, nil
		}
		return &geoPointObject{*o.Position}, nil
	case "categoryTags":
		return o.CategoryTags, nil
	case "status":
		return optional(o.Status), nil
	case "availability":
		return optional(string(o.Availability)), nil
	case "attribute":
		return optional(o.Attr(stringArg(args, "key"))), nil
	case "source":
		return string(o.Source), nil
	case "verified":
		return o.Verified, nil
	case "distanceKm":
		return o.DistanceKm, nil
	case "distanceKnown":
		return o.DistanceKnown, nil
	case "createdAt":
		return scalars.MarshalDateTime(o.CreatedAt), nil
	}
	return nil, unknownField("Listing", name)
}

type geoPointObject struct {
	entities.GeoPoint
}

func (o *geoPointObject) Field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "lat":
		return o.Lat, nil
	case "lng":
		return o.Lng, nil
	}
	return nil, unknownField("GeoPoint", name)
}

type nearbyObject struct {
	*services.NearbyResult
}

func (o *nearbyObject) Field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "kind":
		return string(o.Kind), nil
	case "source":
		return o.Source, nil
	case "attempts":
		out := make([]*attemptObject, 0, len(o.Attempts))
		for _, a := range o.Attempts {
			out = append(out, &attemptObject{a})
		}
		return out, nil
	case "supplementaryCount":
		return o.SupplementaryCount, nil
	case "duplicatesDropped":
		return o.DuplicatesDropped, nil
	case "listings":
		return listingObjects(o.Listings), nil
	}
	return nil, unknownField("NearbyResult", name)
}

type attemptObject struct {
	services.SourceAttempt
}

func (o *attemptObject) Field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "source":
		return o.Source, nil
	case "count":
		return o.Count, nil
	case "error":
		return optional(o.Error), nil
	}
	return nil, unknownField("SourceAttempt", name)
}

type searchObject struct {
	*services.SearchResult
}

func (o *searchObject) Field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "query":
		return o.Query, nil
	case "total":
		return o.Total, nil
	case "groups":
		out := make([]*groupObject, 0, len(o.Groups))
		for _, g := range o.Groups {
			out = append(out, &groupObject{g})
		}
		return out, nil
	}
	return nil, unknownField("SearchResult", name)
}

type groupObject struct {
	services.SearchGroup
}

func (o *groupObject) Field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "kind":
		return string(o.Kind), nil
	case "listings":
		return listingObjects(o.Listings), nil
	}
	return nil, unknownField("SearchGroup", name)
}

type bookingObject struct {
	*entities.Booking
}

func (o *bookingObject) Field(ctx context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "id":
		return o.ID, nil
	case "doctorId":
		return o.DoctorID, nil
	case "patientName":
		return o.PatientName, nil
	case "bookingDate":
		return o.BookingDate, nil
	case "bookingTime":
		return o.BookingTime, nil
	case "status":
		return string(o.Status), nil
	case "createdAt":
		return scalars.MarshalDateTime(o.CreatedAt), nil
	case "doctor":
		doctor, err := loaders.For(ctx).ListingLoader.Load(ctx, loaders.ListingKey{Kind: entities.KindDoctor, ID: o.DoctorID})()
		if err != nil || doctor == nil {
			return nil, err
		}
		return &listingObject{*doctor}, nil
	}
	return nil, unknownField("Booking", name)
}
