package rfq

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	"github.com/jingsu322/fake-rfq-api/internal/config"
	"github.com/jingsu322/fake-rfq-api/internal/database"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
	repo "github.com/jingsu322/fake-rfq-api/internal/repository/rfq"
	service "github.com/jingsu322/fake-rfq-api/internal/service/rfq"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.NewCreateTable().Model((*entity.RFQ)(nil)).Exec(context.Background())
	require.NoError(t, err)

	repository := repo.NewRepository(&database.Connections{Writer: db, Reader: db})
	svc := service.NewService(service.Params{
		Repository: repository,
		Logger:     zap.NewNop(),
	})

	e := echo.New()
	Register(e, NewHandler(svc, config.Config{}))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(e *echo.Echo, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "This is a fake RFQ Submission API"}`, rec.Body.String())
}

func TestSubmitThenGetAppliesDefaults(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/submit_rfq",
		`{"user_email":"a@b.com","product_name":"Widget","requested_quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message": "RFQ submitted successfully."}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/rfq/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "a@b.com", detail["user_email"])
	assert.Equal(t, "Unknown Company", detail["company_name"])
	assert.Equal(t, "N/A", detail["product_sku"])
	assert.Equal(t, 0.0, detail["requested_price"])
	assert.Equal(t, 5.0, detail["requested_quantity"])
	assert.Equal(t, "2099-12-31", detail["delivery_date"])
	assert.Equal(t, "General Use", detail["application"])
}

func TestSubmitMissingRequiredField(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/submit_rfq", `{"user_email":"a@b.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error": "Missing required fields: user_email, product_name, or requested_quantity"}`,
		rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/rfqs", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitMalformedBody(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/submit_rfq", `{"user_email": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestSubmitMalformedDeliveryDate(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/submit_rfq",
		`{"user_email":"a@b.com","product_name":"Widget","requested_quantity":5,"delivery_date":"soon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "delivery_date")
}

func TestListMostRecentFirst(t *testing.T) {
	e := newTestServer(t)

	for _, email := range []string{"first@b.com", "second@b.com"} {
		rec := doJSON(e, http.MethodPost, "/submit_rfq",
			`{"user_email":"`+email+`","product_name":"Widget","requested_quantity":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		time.Sleep(5 * time.Millisecond)
	}

	rec := doJSON(e, http.MethodGet, "/rfqs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "second@b.com", summaries[0]["user_email"])
	assert.Equal(t, "first@b.com", summaries[1]["user_email"])

	// Summary projection carries exactly the reduced field set.
	for _, key := range []string{"id", "user_email", "company_name", "product_sku", "submitted_at"} {
		assert.Contains(t, summaries[0], key)
	}
	assert.NotContains(t, summaries[0], "requested_price")
}

func TestGetInvalidID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/rfq/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/rfq/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "RFQ ID 99 not found"}`, rec.Body.String())
}

func TestDeleteLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/submit_rfq",
		`{"user_email":"a@b.com","product_name":"Widget","requested_quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/rfq/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "RFQ ID 1 deleted successfully."}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/rfq/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/rfq/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartRFQBuildsFormURL(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/start_rfq",
		`{"user_email":"a@b.com","product_name":"Widget"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "http://example.com/rfq_form?product_name=Widget&user_email=a%40b.com", body["form_url"])
}

func TestStartRFQRequiresBothFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/start_rfq", `{"user_email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}

func TestRenderFormEscapesUserInput(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/rfq_form?user_email="+url.QueryEscape(`<script>alert(1)</script>`)+"&product_name=Widget", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := rec.Body.String()
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, `value="Widget"`)
}

func TestSubmitFormLenientCoercion(t *testing.T) {
	e := newTestServer(t)

	rec := doForm(e, "/submit_rfq_form", url.Values{
		"user_email":              {"a@b.com"},
		"product_name":            {"Widget"},
		"requested_quantity":      {"abc"},
		"annual_estimated_volume": {"xyz"},
		"requested_price":         {""},
		"delivery_date":           {"garbled"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "RFQ submitted successfully.")
	assert.Contains(t, rec.Body.String(), `href="/rfq_form"`)

	rec = doJSON(e, http.MethodGet, "/rfq/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 1.0, detail["requested_quantity"])
	assert.Equal(t, 0.0, detail["annual_estimated_volume"])
	assert.Equal(t, 0.0, detail["requested_price"])
	assert.Equal(t, "2099-12-31", detail["delivery_date"])
}

func TestSubmitFormMissingEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doForm(e, "/submit_rfq_form", url.Values{
		"product_name": {"Widget"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_email and product_name are required")
}
