package rfq

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/jingsu322/fake-rfq-api/internal/database"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.NewCreateTable().Model((*entity.RFQ)(nil)).Exec(context.Background())
	require.NoError(t, err)

	return NewRepository(&database.Connections{Writer: db, Reader: db})
}

func sampleRFQ(email string, submittedAt time.Time) *entity.RFQ {
	return &entity.RFQ{
		UserEmail:         email,
		CompanyName:       "Unknown Company",
		ProductSKU:        "N/A",
		ProductName:       "Widget",
		RequestedQuantity: 5,
		Factory:           "Not Specified",
		DeliveryDate:      time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC),
		Application:       "General Use",
		SubmittedAt:       submittedAt,
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	record := sampleRFQ("a@b.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, record))
	assert.NotZero(t, record.ID)

	second := sampleRFQ("c@d.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, record.ID)
}

func TestGetByIDRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	record := sampleRFQ("a@b.com", time.Date(2026, time.August, 1, 10, 30, 0, 0, time.UTC))
	record.Comments = "need this fast"
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.UserEmail, got.UserEmail)
	assert.Equal(t, record.ProductName, got.ProductName)
	assert.Equal(t, record.RequestedQuantity, got.RequestedQuantity)
	assert.Equal(t, record.Comments, got.Comments)
	assert.Equal(t, "2099-12-31", got.DeliveryDate.UTC().Format("2006-01-02"))
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersBySubmissionTimeDescending(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	oldest := sampleRFQ("first@b.com", base)
	middle := sampleRFQ("second@b.com", base.Add(time.Minute))
	newest := sampleRFQ("third@b.com", base.Add(2*time.Minute))

	// Insert out of order to prove ordering comes from submitted_at.
	for _, r := range []*entity.RFQ{middle, newest, oldest} {
		require.NoError(t, repo.Create(ctx, r))
	}

	rfqs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rfqs, 3)
	assert.Equal(t, "third@b.com", rfqs[0].UserEmail)
	assert.Equal(t, "second@b.com", rfqs[1].UserEmail)
	assert.Equal(t, "first@b.com", rfqs[2].UserEmail)
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	record := sampleRFQ("a@b.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, record))

	require.NoError(t, repo.DeleteByID(ctx, record.ID))

	_, err := repo.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already removed id reports not found with no side effects.
	assert.ErrorIs(t, repo.DeleteByID(ctx, record.ID), ErrNotFound)
}
