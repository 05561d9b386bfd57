package rfq

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jingsu322/fake-rfq-api/internal/database"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
)

var repoTracer = otel.Tracer("github.com/jingsu322/fake-rfq-api/repository/rfq")

// ErrNotFound is returned when an RFQ record is missing.
var ErrNotFound = errors.New("rfq not found")

// Repository encapsulates read/write access for RFQ records.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Create persists a new RFQ using the write connection. The assigned primary
// key is written back into the model.
func (r *Repository) Create(ctx context.Context, rfq *entity.RFQ) error {
	if rfq == nil {
		return errors.New("nil rfq")
	}
	ctx, span := repoTracer.Start(ctx, "RFQRepository.Create", trace.WithAttributes(attribute.String("rfq.user_email", rfq.UserEmail)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(rfq).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// List returns all RFQs ordered by submission time, most recent first.
func (r *Repository) List(ctx context.Context) ([]entity.RFQ, error) {
	ctx, span := repoTracer.Start(ctx, "RFQRepository.List")
	defer span.End()

	var rfqs []entity.RFQ
	err := r.reader.NewSelect().Model(&rfqs).Order("submitted_at DESC").Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rfqs, nil
}

// GetByID fetches an RFQ by primary key using the read replica when available.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.RFQ, error) {
	ctx, span := repoTracer.Start(ctx, "RFQRepository.GetByID", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	rfq := new(entity.RFQ)
	err := r.reader.NewSelect().Model(rfq).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rfq, nil
}

// DeleteByID removes an RFQ by primary key. ErrNotFound is returned when no
// row matched, so callers can distinguish a missing id from a storage failure.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := repoTracer.Start(ctx, "RFQRepository.DeleteByID", trace.WithAttributes(attribute.Int64("rfq.id", id)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.RFQ)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return err
	}
	if affected == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrNotFound
	}
	return nil
}
