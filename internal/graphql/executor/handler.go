package executor

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

// ServeHTTP accepts GET requests with query parameters and POST requests with a JSON body.
func (e *Executor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := decodeJSON([]byte(raw), &req.Variables); err != nil {
				writeResponse(w, errorResponse(gqlerror.Errorf("variables must be a JSON object")), http.StatusBadRequest)
				return
			}
		}
	case http.MethodPost:
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			writeResponse(w, errorResponse(gqlerror.Errorf("json request body could not be decoded: %s", err.Error())), http.StatusBadRequest)
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeResponse(w, errorResponse(gqlerror.Errorf("method %s not allowed", r.Method)), http.StatusMethodNotAllowed)
		return
	}

	resp, status := e.Execute(r.Context(), req)
	if len(resp.Errors) > 0 {
		observability.LoggerFromContext(r.Context()).Debug().
			Str("operation", req.OperationName).
			Int("errors", len(resp.Errors)).
			Msg("graphql request finished with errors")
	}
	writeResponse(w, resp, status)
}

func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func writeResponse(w http.ResponseWriter, resp *graphql.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
