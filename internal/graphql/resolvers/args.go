package resolvers

import (
	"encoding/json"
	"fmt"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

// floatArg accepts literals (float64, int64) and decoded variables (json.Number).
func floatArg(args map[string]any, name string) (*float64, error) {
	var f float64
	switch v := args[name].(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", name))
		}
		f = parsed
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", name))
	}
	return &f, nil
}

func kindArg(args map[string]any) (entities.Kind, error) {
	raw := stringArg(args, "kind")
	kind, ok := entities.ParseKind(raw)
	if !ok {
		return "", apperrors.NewValidationError("unknown listing kind " + raw)
	}
	return kind, nil
}

// originArg builds the origin from lat/lng. Both or neither must be given.
func originArg(args map[string]any) (*entities.GeoPoint, error) {
	lat, err := floatArg(args, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := floatArg(args, "lng")
	if err != nil {
		return nil, err
	}
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, apperrors.NewValidationError("lat and lng must be given together")
	}
	point, err := entities.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func filterArg(args map[string]any) entities.DirectoryFilter {
	raw, _ := args["filter"].(map[string]any)
	return entities.DirectoryFilter{
		Category:     stringArg(raw, "category"),
		Query:        stringArg(raw, "query"),
		Status:       stringArg(raw, "status"),
		Availability: stringArg(raw, "availability"),
		DonationType: stringArg(raw, "donationType"),
		BloodType:    stringArg(raw, "bloodType"),
	}
}
