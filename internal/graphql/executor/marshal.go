package executor

import (
	"io"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
)

// fieldSet is a JSON object that keeps selection order.
type fieldSet struct {
	keys   []string
	values []graphql.Marshaler
}

func (f *fieldSet) add(key string, value graphql.Marshaler) {
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
}

func (f *fieldSet) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, "{")
	for i, key := range f.keys {
		if i > 0 {
			_, _ = io.WriteString(w, ",")
		}
		_, _ = io.WriteString(w, strconv.Quote(key))
		_, _ = io.WriteString(w, ":")
		f.values[i].MarshalGQL(w)
	}
	_, _ = io.WriteString(w, "}")
}

type list []graphql.Marshaler

func (l list) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, "[")
	for i, item := range l {
		if i > 0 {
			_, _ = io.WriteString(w, ",")
		}
		item.MarshalGQL(w)
	}
	_, _ = io.WriteString(w, "]")
}
