// Package sample serves the built-in directory used when no store is reachable.
package sample

import (
	"context"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// SourceName identifies the built-in data in fallback attempts.
const SourceName = "sample"

// Source returns the built-in listings. It never fails.
type Source struct{}

// NewSource creates a sample source.
func NewSource() *Source {
	return &Source{}
}

// Name implements services.VerifiedSource.
func (s *Source) Name() string { return SourceName }

// FetchVerified returns a fresh copy of the built-in listings of a kind.
func (s *Source) FetchVerified(_ context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return Listings(kind), nil
}

// Listings converts the built-in records of a kind, flagged as sample data.
func Listings(kind entities.Kind) []entities.Listing {
	records := Records(kind)
	out := make([]entities.Listing, 0, len(records))
	for _, r := range records {
		l := r.Listing()
		l.Source = entities.SourceVerified
		l.Verified = true
		if l.Attributes == nil {
			l.Attributes = map[string]string{}
		}
		l.Attributes[entities.AttrSampleData] = "true"
		out = append(out, l)
	}
	return out
}

// Records returns the typed built-in records of a kind.
func Records(kind entities.Kind) []entities.Locatable {
	var out []entities.Locatable
	switch kind {
	case entities.KindHospital:
		for _, h := range hospitals() {
			out = append(out, h)
		}
	case entities.KindDoctor:
		for _, d := range doctors() {
			out = append(out, d)
		}
	case entities.KindPharmacy:
		for _, p := range pharmacies() {
			out = append(out, p)
		}
	case entities.KindLab:
		for _, l := range labs() {
			out = append(out, l)
		}
	case entities.KindDonation:
		for _, d := range donations() {
			out = append(out, d)
		}
	}
	return out
}
