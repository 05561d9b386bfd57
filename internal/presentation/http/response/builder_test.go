package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingsu322/fake-rfq-api/pkg/errorbank"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBuildMessage(t *testing.T) {
	ctx, rec := newContext()

	require.NoError(t, New(ctx).WithStatus(http.StatusCreated).WithMessage("RFQ submitted successfully.").Build())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message": "RFQ submitted successfully."}`, rec.Body.String())
}

func TestBuildDataVerbatim(t *testing.T) {
	ctx, rec := newContext()

	require.NoError(t, New(ctx).WithData([]int{3, 2, 1}).Build())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[3, 2, 1]`, rec.Body.String())
}

func TestBuildErrorUsesKindStatus(t *testing.T) {
	ctx, rec := newContext()

	require.NoError(t, New(ctx).WithError(errorbank.NotFound("RFQ ID 7 not found")).Build())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "RFQ ID 7 not found"}`, rec.Body.String())
}

func TestBuildForeignErrorIsInternal(t *testing.T) {
	ctx, rec := newContext()

	require.NoError(t, New(ctx).WithError(errors.New("boom")).Build())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "internal error"}`, rec.Body.String())
}
