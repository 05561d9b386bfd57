package rfq

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jingsu322/fake-rfq-api/internal/dto"
	"github.com/jingsu322/fake-rfq-api/internal/presentation/http/response"
	"github.com/jingsu322/fake-rfq-api/pkg/errorbank"
)

//go:embed templates/*.html
var templateFS embed.FS

// All user-supplied values pass through html/template, so form echoes and
// error text are escaped at render time.
var formTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type formPage struct {
	UserEmail   string
	ProductName string
}

type confirmationPage struct {
	ID int64
}

type errorPage struct {
	Message string
}

func (h *Handler) startForm(c echo.Context) error {
	b := response.New(c)

	var payload dto.StartRFQRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest(fmt.Sprintf("invalid payload: %v", err), errorbank.WithCause(err))).Build()
	}

	userEmail := strings.TrimSpace(payload.UserEmail)
	productName := strings.TrimSpace(payload.ProductName)
	if userEmail == "" || productName == "" {
		return b.WithError(errorbank.BadRequest("user_email and product_name are required")).Build()
	}

	query := url.Values{}
	query.Set("user_email", userEmail)
	query.Set("product_name", productName)

	return b.WithData(dto.StartRFQResponse{
		Message: "RFQ form link generated.",
		FormURL: h.baseURL(c) + "/rfq_form?" + query.Encode(),
	}).Build()
}

func (h *Handler) renderForm(c echo.Context) error {
	page := formPage{
		UserEmail:   c.QueryParam("user_email"),
		ProductName: c.QueryParam("product_name"),
	}
	return h.renderHTML(c, http.StatusOK, "rfq_form.html", page)
}

func (h *Handler) submitForm(c echo.Context) error {
	var form dto.RFQFormSubmission
	if err := c.Bind(&form); err != nil {
		return h.renderHTML(c, http.StatusBadRequest, "rfq_error.html", errorPage{Message: err.Error()})
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "rfq.submitForm")
	defer span.End()

	record, err := h.svc.SubmitForm(ctx, form)
	if err != nil {
		appErr := errorbank.From(err)
		return h.renderHTML(c, appErr.StatusCode(), "rfq_error.html", errorPage{Message: appErr.Message()})
	}

	return h.renderHTML(c, http.StatusOK, "rfq_confirmation.html", confirmationPage{ID: record.ID})
}

func (h *Handler) renderHTML(c echo.Context, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := formTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// baseURL resolves the externally visible base URL for links returned to
// clients, preferring explicit configuration over the inbound request.
func (h *Handler) baseURL(c echo.Context) string {
	if h.cfg.HTTP.PublicBaseURL != "" {
		return h.cfg.HTTP.PublicBaseURL
	}
	return c.Scheme() + "://" + c.Request().Host
}
