package seeder

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jingsu322/fake-rfq-api/internal/database"
	"github.com/jingsu322/fake-rfq-api/internal/entity"
)

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// RFQs seeds example quotation requests for demo environments.
func (s *Seeder) RFQs(ctx context.Context) error {
	now := time.Now().UTC()
	samples := []entity.RFQ{
		{
			UserEmail:             "buyer@acme.example",
			CompanyName:           "Acme Industrial",
			ProductSKU:            "SKU-1001",
			ProductName:           "Hex Bolt M8",
			RequestedPrice:        0.12,
			RequestedQuantity:     5000,
			AnnualEstimatedVolume: 60000,
			Factory:               "Plant A",
			DeliveryDate:          now.AddDate(0, 2, 0),
			Application:           "Assembly line",
			Comments:              "Seed record",
			SubmittedAt:           now.Add(-time.Hour),
		},
		{
			UserEmail:             "purchasing@globex.example",
			CompanyName:           "Globex",
			ProductSKU:            "SKU-2040",
			ProductName:           "Bearing 6204",
			RequestedPrice:        1.85,
			RequestedQuantity:     1200,
			AnnualEstimatedVolume: 15000,
			Factory:               "Not Specified",
			DeliveryDate:          now.AddDate(0, 1, 0),
			Application:           "General Use",
			SubmittedAt:           now,
		},
	}

	for _, sample := range samples {
		record := sample
		if _, err := s.db.NewInsert().Model(&record).Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded rfqs", zap.Int("count", len(samples)))
	}
	return nil
}
