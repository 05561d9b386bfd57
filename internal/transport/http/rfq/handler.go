package rfq

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jingsu322/fake-rfq-api/internal/config"
	"github.com/jingsu322/fake-rfq-api/internal/dto"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
	"github.com/jingsu322/fake-rfq-api/internal/presentation/http/response"
	service "github.com/jingsu322/fake-rfq-api/internal/service/rfq"
	"github.com/jingsu322/fake-rfq-api/pkg/errorbank"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var httpTracer = otel.Tracer("github.com/jingsu322/fake-rfq-api/transport/http/rfq")

const homeMessage = "This is a fake RFQ Submission API"

// Handler exposes the RFQ endpoints over HTTP.
type Handler struct {
	svc *service.Service
	cfg config.Config
}

// NewHandler constructs an RFQ Handler.
func NewHandler(svc *service.Service, cfg config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/", h.home)
	e.POST("/submit_rfq", h.submit)
	e.GET("/rfqs", h.list)
	e.GET("/rfq/:id", h.getByID)
	e.DELETE("/rfq/:id", h.deleteByID)
	e.POST("/start_rfq", h.startForm)
	e.GET("/rfq_form", h.renderForm)
	e.POST("/submit_rfq_form", h.submitForm)
}

func (h *Handler) home(c echo.Context) error {
	return response.New(c).WithMessage(homeMessage).Build()
}

func (h *Handler) submit(c echo.Context) error {
	b := response.New(c)

	var payload dto.SubmitRFQRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest(fmt.Sprintf("invalid payload: %v", err), errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "rfq.submit")
	defer span.End()

	if _, err := h.svc.Submit(ctx, payload); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("RFQ submitted successfully.").Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "rfq.list")
	defer span.End()

	rfqs, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	summaries := make([]dto.RFQSummary, 0, len(rfqs))
	for i := range rfqs {
		summaries = append(summaries, toSummary(&rfqs[i]))
	}
	return b.WithData(summaries).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "rfq.getByID", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	record, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toDetail(record)).Build()
}

func (h *Handler) deleteByID(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "rfq.deleteByID", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage(fmt.Sprintf("RFQ ID %d deleted successfully.", id)).Build()
}

func toSummary(record *entity.RFQ) dto.RFQSummary {
	return dto.RFQSummary{
		ID:          record.ID,
		UserEmail:   record.UserEmail,
		CompanyName: record.CompanyName,
		ProductSKU:  record.ProductSKU,
		SubmittedAt: record.SubmittedAt.Format(dto.TimestampLayout),
	}
}

func toDetail(record *entity.RFQ) dto.RFQDetail {
	return dto.RFQDetail{
		ID:                    record.ID,
		UserEmail:             record.UserEmail,
		CompanyName:           record.CompanyName,
		ProductSKU:            record.ProductSKU,
		ProductName:           record.ProductName,
		RequestedPrice:        record.RequestedPrice,
		RequestedQuantity:     record.RequestedQuantity,
		AnnualEstimatedVolume: record.AnnualEstimatedVolume,
		Factory:               record.Factory,
		DeliveryDate:          record.DeliveryDate.Format(dto.DateLayout),
		Application:           record.Application,
		Comments:              record.Comments,
		SubmittedAt:           record.SubmittedAt.Format(dto.TimestampLayout),
	}
}
