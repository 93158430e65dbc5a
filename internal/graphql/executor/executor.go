// Package executor runs read-only queries against a schema whose objects resolve
// one field at a time.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"

	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// Object is a schema object value. Field returns a scalar, a graphql.Marshaler,
// another Object, a slice of those, or nil.
type Object interface {
	Field(ctx context.Context, name string, args map[string]any) (any, error)
}

// Request is a decoded GraphQL request.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Executor resolves queries against the Query root object.
type Executor struct {
	schema *ast.Schema
	query  Object
}

// New creates an executor.
func New(schema *ast.Schema, query Object) *Executor {
	return &Executor{schema: schema, query: query}
}

// Execute runs req and returns the response with the HTTP status it should carry.
// Field errors keep status 200; request errors are 422.
func (e *Executor) Execute(ctx context.Context, req Request) (*graphql.Response, int) {
	doc, errs := gqlparser.LoadQuery(e.schema, req.Query)
	if len(errs) > 0 {
		return &graphql.Response{Errors: errs}, http.StatusUnprocessableEntity
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return errorResponse(gqlerror.Errorf("operation %q not found", req.OperationName)), http.StatusUnprocessableEntity
	}
	if op.Operation != ast.Query {
		return errorResponse(gqlerror.Errorf("only query operations are supported")), http.StatusUnprocessableEntity
	}

	vars, err := validator.VariableValues(e.schema, op, req.Variables)
	if err != nil {
		var gqlErr *gqlerror.Error
		if !errors.As(err, &gqlErr) {
			gqlErr = gqlerror.Errorf("%s", err.Error())
		}
		return errorResponse(gqlErr), http.StatusUnprocessableEntity
	}

	run := &execution{
		op: &graphql.OperationContext{
			RawQuery:      req.Query,
			Variables:     vars,
			OperationName: req.OperationName,
			Doc:           doc,
			Operation:     op,
		},
	}
	data := run.object(ctx, e.query, e.schema.Query.Name, op.SelectionSet, nil)

	var buf bytes.Buffer
	data.MarshalGQL(&buf)
	return &graphql.Response{Data: buf.Bytes(), Errors: run.errors}, http.StatusOK
}

func errorResponse(err *gqlerror.Error) *graphql.Response {
	return &graphql.Response{Errors: gqlerror.List{err}}
}

type execution struct {
	op *graphql.OperationContext

	mu     sync.Mutex
	errors gqlerror.List
}

func (x *execution) fail(err error, path ast.Path) {
	gqlErr := &gqlerror.Error{Message: err.Error(), Path: path}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		gqlErr.Message = appErr.Message
		gqlErr.Extensions = map[string]any{"code": string(appErr.Type)}
	}

	x.mu.Lock()
	x.errors = append(x.errors, gqlErr)
	x.mu.Unlock()
}

func (x *execution) object(ctx context.Context, obj Object, typeName string, sel ast.SelectionSet, path ast.Path) graphql.Marshaler {
	fields := graphql.CollectFields(x.op, sel, []string{typeName})
	out := &fieldSet{keys: make([]string, 0, len(fields)), values: make([]graphql.Marshaler, 0, len(fields))}

	for _, f := range fields {
		fieldPath := extend(path, ast.PathName(f.Alias))
		if f.Name == "__typename" {
			out.add(f.Alias, graphql.MarshalString(typeName))
			continue
		}

		value, err := obj.Field(ctx, f.Name, f.ArgumentMap(x.op.Variables))
		if err != nil {
			x.fail(err, fieldPath)
			out.add(f.Alias, graphql.Null)
			continue
		}
		out.add(f.Alias, x.value(ctx, value, f.Definition.Type, f.Selections, fieldPath))
	}
	return out
}

// value completes v against typ. List elements resolve concurrently so their
// loaders can batch.
func (x *execution) value(ctx context.Context, v any, typ *ast.Type, sel ast.SelectionSet, path ast.Path) graphql.Marshaler {
	if typ.Elem != nil {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() == reflect.Slice && rv.IsNil()) {
			if typ.NonNull {
				return list{}
			}
			return graphql.Null
		}
		if rv.Kind() != reflect.Slice {
			x.fail(fmt.Errorf("expected a list, got %T", v), path)
			return graphql.Null
		}

		items := make(list, rv.Len())
		var wg sync.WaitGroup
		for i := range rv.Len() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				items[i] = x.value(ctx, rv.Index(i).Interface(), typ.Elem, sel, extend(path, ast.PathIndex(i)))
			}()
		}
		wg.Wait()
		return items
	}

	if isNil(v) {
		if typ.NonNull {
			x.fail(fmt.Errorf("must not be null"), path)
		}
		return graphql.Null
	}

	switch val := v.(type) {
	case graphql.Marshaler:
		return val
	case Object:
		return x.object(ctx, val, typ.NamedType, sel, path)
	case string:
		if typ.NamedType == "ID" {
			return graphql.MarshalID(val)
		}
		return graphql.MarshalString(val)
	case int:
		return graphql.MarshalInt(val)
	case float64:
		return graphql.MarshalFloat(val)
	case bool:
		return graphql.MarshalBoolean(val)
	}
	x.fail(fmt.Errorf("unsupported value %T for %s", v, typ.NamedType), path)
	return graphql.Null
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func extend(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}
