// Package graphql serves the read-only directory schema.
package graphql

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSource string

// LoadSchema parses the embedded directory schema.
func LoadSchema() (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
	if err != nil {
		return nil, fmt.Errorf("load graphql schema: %w", err)
	}
	return schema, nil
}
