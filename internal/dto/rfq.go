package dto

// Wire formats for dates and timestamps exposed by the API.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// SubmitRFQRequest is the structured (machine-to-machine) submission payload.
// Optional fields are pointers so that an absent key is distinguishable from a
// zero value and can receive its documented default.
type SubmitRFQRequest struct {
	UserEmail             *string  `json:"user_email"`
	CompanyName           *string  `json:"company_name"`
	ProductSKU            *string  `json:"product_sku"`
	ProductName           *string  `json:"product_name"`
	RequestedPrice        *float64 `json:"requested_price"`
	RequestedQuantity     *int     `json:"requested_quantity"`
	AnnualEstimatedVolume *int     `json:"annual_estimated_volume"`
	Factory               *string  `json:"factory"`
	DeliveryDate          *string  `json:"delivery_date"`
	Application           *string  `json:"application"`
	Comments              *string  `json:"comments"`
}

// StartRFQRequest begins the two-step form flow.
type StartRFQRequest struct {
	UserEmail   string `json:"user_email"`
	ProductName string `json:"product_name"`
}

// StartRFQResponse carries the pre-filled entry form link.
type StartRFQResponse struct {
	Message string `json:"message"`
	FormURL string `json:"form_url"`
}

// RFQFormSubmission carries the manual-entry form fields. Everything arrives
// as text; numeric and date fields are leniently coerced by the service.
type RFQFormSubmission struct {
	UserEmail             string `form:"user_email"`
	CompanyName           string `form:"company_name"`
	ProductSKU            string `form:"product_sku"`
	ProductName           string `form:"product_name"`
	RequestedPrice        string `form:"requested_price"`
	RequestedQuantity     string `form:"requested_quantity"`
	AnnualEstimatedVolume string `form:"annual_estimated_volume"`
	Factory               string `form:"factory"`
	DeliveryDate          string `form:"delivery_date"`
	Application           string `form:"application"`
	Comments              string `form:"comments"`
}

// RFQSummary is the reduced projection returned by the list endpoint.
type RFQSummary struct {
	ID          int64  `json:"id"`
	UserEmail   string `json:"user_email"`
	CompanyName string `json:"company_name"`
	ProductSKU  string `json:"product_sku"`
	SubmittedAt string `json:"submitted_at"`
}

// RFQDetail is the complete projection returned by the single-record endpoint.
type RFQDetail struct {
	ID                    int64   `json:"id"`
	UserEmail             string  `json:"user_email"`
	CompanyName           string  `json:"company_name"`
	ProductSKU            string  `json:"product_sku"`
	ProductName           string  `json:"product_name"`
	RequestedPrice        float64 `json:"requested_price"`
	RequestedQuantity     int     `json:"requested_quantity"`
	AnnualEstimatedVolume int     `json:"annual_estimated_volume"`
	Factory               string  `json:"factory"`
	DeliveryDate          string  `json:"delivery_date"`
	Application           string  `json:"application"`
	Comments              string  `json:"comments"`
	SubmittedAt           string  `json:"submitted_at"`
}
