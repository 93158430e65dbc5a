package scalars

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarshalDateTime(t *testing.T) {
	var buf bytes.Buffer
	MarshalDateTime(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)).MarshalGQL(&buf)
	assert.Equal(t, `"2024-03-01T09:30:00Z"`, buf.String())

	buf.Reset()
	MarshalDateTime(time.Time{}).MarshalGQL(&buf)
	assert.Equal(t, "null", buf.String())
}
