package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// RFQ represents a request-for-quotation record stored in the relational database.
// Records are immutable after creation; the only lifecycle transition is deletion.
type RFQ struct {
	bun.BaseModel `bun:"table:rfqs"`

	ID                    int64     `bun:",pk,autoincrement"`
	UserEmail             string    `bun:"user_email,notnull"`
	CompanyName           string    `bun:"company_name,notnull"`
	ProductSKU            string    `bun:"product_sku,notnull"`
	ProductName           string    `bun:"product_name,notnull"`
	RequestedPrice        float64   `bun:"requested_price,notnull"`
	RequestedQuantity     int       `bun:"requested_quantity,notnull"`
	AnnualEstimatedVolume int       `bun:"annual_estimated_volume,notnull"`
	Factory               string    `bun:"factory,notnull"`
	DeliveryDate          time.Time `bun:"delivery_date,notnull"`
	Application           string    `bun:"application,notnull"`
	Comments              string    `bun:"comments"`
	SubmittedAt           time.Time `bun:"submitted_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
