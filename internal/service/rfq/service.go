package rfq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jingsu322/fake-rfq-api/internal/cache"
	"github.com/jingsu322/fake-rfq-api/internal/config"
	"github.com/jingsu322/fake-rfq-api/internal/dto"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
	"github.com/jingsu322/fake-rfq-api/internal/messaging"
	repo "github.com/jingsu322/fake-rfq-api/internal/repository/rfq"
	"github.com/jingsu322/fake-rfq-api/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/jingsu322/fake-rfq-api/service/rfq")

// missingRequiredFieldsMsg is the structured-path rejection for absent
// user_email, product_name, or requested_quantity.
const missingRequiredFieldsMsg = "Missing required fields: user_email, product_name, or requested_quantity"

// Service encapsulates RFQ intake and lifecycle logic.
type Service struct {
	repo      *repo.Repository
	cache     cache.Store
	cacheTTL  time.Duration
	logger    *zap.Logger
	publisher messaging.Client
	messaging messagingConfig
}

// messagingConfig contains messaging specific knobs we care about.
type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		cache:     p.Cache,
		cacheTTL:  p.Config.Cache.DefaultTTL,
		logger:    p.Logger,
		publisher: p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// Submit handles a structured (machine-to-machine) submission. Required-field
// absence and malformed dates reject the request before anything is persisted;
// a storage failure is reported back as a client error carrying the underlying
// message.
func (s *Service) Submit(ctx context.Context, req dto.SubmitRFQRequest) (*entity.RFQ, error) {
	ctx, span := serviceTracer.Start(ctx, "RFQService.Submit")
	defer span.End()

	if req.UserEmail == nil || req.ProductName == nil || req.RequestedQuantity == nil {
		return nil, errorbank.BadRequest(missingRequiredFieldsMsg)
	}

	deliveryDate := fallbackDeliveryDate
	if req.DeliveryDate != nil {
		parsed, err := parseDeliveryDate(*req.DeliveryDate)
		if err != nil {
			return nil, errorbank.BadRequest(err.Error(), errorbank.WithCause(err))
		}
		deliveryDate = parsed
	}

	record := &entity.RFQ{
		UserEmail:             *req.UserEmail,
		CompanyName:           stringOr(req.CompanyName, defaultCompanyName),
		ProductSKU:            stringOr(req.ProductSKU, defaultProductSKU),
		ProductName:           *req.ProductName,
		RequestedPrice:        floatOr(req.RequestedPrice, 0.0),
		RequestedQuantity:     *req.RequestedQuantity,
		AnnualEstimatedVolume: intOr(req.AnnualEstimatedVolume, 0),
		Factory:               stringOr(req.Factory, defaultFactory),
		DeliveryDate:          deliveryDate,
		Application:           stringOr(req.Application, defaultApplication),
		Comments:              stringOr(req.Comments, ""),
		SubmittedAt:           time.Now().UTC(),
	}

	if err := s.persist(ctx, span, record); err != nil {
		return nil, err
	}
	return record, nil
}

// SubmitForm handles a manual-entry form post. Numeric and date fields degrade
// to defaults on blank or garbage input; only the two identifying fields are
// mandatory.
func (s *Service) SubmitForm(ctx context.Context, form dto.RFQFormSubmission) (*entity.RFQ, error) {
	ctx, span := serviceTracer.Start(ctx, "RFQService.SubmitForm")
	defer span.End()

	userEmail := strings.TrimSpace(form.UserEmail)
	productName := strings.TrimSpace(form.ProductName)
	if userEmail == "" || productName == "" {
		return nil, errorbank.BadRequest("user_email and product_name are required")
	}

	record := &entity.RFQ{
		UserEmail:             userEmail,
		CompanyName:           textOr(form.CompanyName, defaultCompanyName),
		ProductSKU:            textOr(form.ProductSKU, defaultProductSKU),
		ProductName:           productName,
		RequestedPrice:        formFloat(form.RequestedPrice),
		RequestedQuantity:     formInt(form.RequestedQuantity, defaultFormQuantity),
		AnnualEstimatedVolume: formInt(form.AnnualEstimatedVolume, 0),
		Factory:               textOr(form.Factory, defaultFactory),
		DeliveryDate:          formDate(form.DeliveryDate),
		Application:           textOr(form.Application, defaultApplication),
		Comments:              form.Comments,
		SubmittedAt:           time.Now().UTC(),
	}

	if err := s.persist(ctx, span, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) persist(ctx context.Context, span trace.Span, record *entity.RFQ) error {
	if err := s.repo.Create(ctx, record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.BadRequest(err.Error(), errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, record); err != nil {
		if s.logger != nil {
			s.logger.Warn("rfq cache write failed", zap.Int64("id", record.ID), zap.Error(err))
		}
	}

	s.publishSubmitted(ctx, record)
	return nil
}

// List returns all RFQs, most recently submitted first.
func (s *Service) List(ctx context.Context) ([]entity.RFQ, error) {
	ctx, span := serviceTracer.Start(ctx, "RFQService.List")
	defer span.End()

	rfqs, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list RFQs", errorbank.WithCause(err))
	}
	return rfqs, nil
}

// Get retrieves an RFQ by id, consulting cache when available.
func (s *Service) Get(ctx context.Context, id int64) (*entity.RFQ, error) {
	ctx, span := serviceTracer.Start(ctx, "RFQService.Get", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	if record, err := s.getFromCache(ctx, id); err == nil {
		return record, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("rfq cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound(fmt.Sprintf("RFQ ID %d not found", id))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load RFQ", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, record); err != nil {
		if s.logger != nil {
			s.logger.Warn("rfq cache write failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	return record, nil
}

// Delete removes an RFQ by id. Deletion is terminal; the cache entry is
// evicted so a subsequent Get cannot resurrect the record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "RFQService.Delete", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound(fmt.Sprintf("RFQ ID %d not found", id))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete RFQ", errorbank.WithCause(err))
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
			if s.logger != nil {
				s.logger.Warn("rfq cache evict failed", zap.Int64("id", id), zap.Error(err))
			}
		}
	}

	return nil
}

func (s *Service) publishSubmitted(ctx context.Context, record *entity.RFQ) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	event := RFQSubmittedEvent{
		ID:                record.ID,
		UserEmail:         record.UserEmail,
		ProductName:       record.ProductName,
		RequestedQuantity: record.RequestedQuantity,
		SubmittedAt:       record.SubmittedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("marshal rfq submitted", zap.Error(err))
		}
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("rfq-%d", record.ID)), payload); err != nil {
		if s.logger != nil {
			s.logger.Error("publish rfq submitted", zap.Error(err))
		}
	}
}

func (s *Service) cacheKey(id int64) string {
	return fmt.Sprintf("rfqs:%d", id)
}

func (s *Service) getFromCache(ctx context.Context, id int64) (*entity.RFQ, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		return nil, err
	}
	var record entity.RFQ
	if err := json.Unmarshal(bytes, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) storeInCache(ctx context.Context, record *entity.RFQ) error {
	if s.cache == nil || record == nil {
		return nil
	}
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.cacheKey(record.ID), bytes, s.cacheTTL)
}

func textOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// RFQSubmittedEvent is emitted when a new RFQ is persisted.
type RFQSubmittedEvent struct {
	ID                int64     `json:"id"`
	UserEmail         string    `json:"user_email"`
	ProductName       string    `json:"product_name"`
	RequestedQuantity int       `json:"requested_quantity"`
	SubmittedAt       time.Time `json:"submitted_at"`
}
