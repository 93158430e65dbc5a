package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := NewInternalError("failed to list listings", fmt.Errorf("connection reset"))
	assert.Equal(t, "INTERNAL: failed to list listings: connection reset", err.Error())

	plain := NewNotFoundError("listing h1 not found")
	assert.Equal(t, "NOT_FOUND: listing h1 not found", plain.Error())
}

func TestIsType_FollowsWrapping(t *testing.T) {
	base := NewUnavailableError("postgres", fmt.Errorf("dial tcp: refused"))
	wrapped := fmt.Errorf("fetch verified doctors: %w", base)

	assert.True(t, IsType(wrapped, ErrorTypeUnavailable))
	assert.False(t, IsType(wrapped, ErrorTypeNotFound))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeUnavailable))
	assert.Equal(t, "UNAVAILABLE: postgres unavailable: dial tcp: refused", base.Error())
}
