package graphql

import (
	"net/http"

	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/graphql/executor"
	"github.com/afandyna/ser-Health/internal/graphql/loaders"
	"github.com/afandyna/ser-Health/internal/graphql/resolvers"
)

// NewHandler serves the directory schema. Each request gets its own loaders over listingRepo.
func NewHandler(resolver *resolvers.Resolver, listingRepo repositories.ListingRepository) (http.Handler, error) {
	schema, err := LoadSchema()
	if err != nil {
		return nil, err
	}
	return loaders.Middleware(listingRepo)(executor.New(schema, resolver)), nil
}
