package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "bad request", err: BadRequest("nope"), want: http.StatusBadRequest},
		{name: "conflict", err: Conflict("dup"), want: http.StatusConflict},
		{name: "not found", err: NotFound("missing"), want: http.StatusNotFound},
		{name: "unprocessable", err: Unprocessable("bad state"), want: http.StatusUnprocessableEntity},
		{name: "internal", err: Internal("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to store RFQ", WithCause(cause))

	assert.Equal(t, "failed to store RFQ: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	orig := NotFound("missing")
	wrapped := fmt.Errorf("handler: %w", orig)

	got := From(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, KindNotFound, got.Kind())
	assert.Equal(t, "missing", got.Message())
}

func TestFromWrapsForeignErrors(t *testing.T) {
	got := From(errors.New("surprise"))
	require.NotNil(t, got)
	assert.Equal(t, KindInternal, got.Kind())
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestWithDetails(t *testing.T) {
	err := BadRequest("invalid", WithDetail("field", "delivery_date"), WithDetails(map[string]any{"value": "soon"}))
	assert.Equal(t, "delivery_date", err.Details()["field"])
	assert.Equal(t, "soon", err.Details()["value"])
}
