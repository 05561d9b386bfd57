package rfq

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts accepted on the two intake paths. The structured path takes
// ISO dates, the manual-entry form takes US-style dates.
const (
	deliveryDateLayout = "2006-01-02"
	formDateLayout     = "01/02/2006"
)

// Field defaults applied when an optional field is absent.
const (
	defaultCompanyName = "Unknown Company"
	defaultProductSKU  = "N/A"
	defaultFactory     = "Not Specified"
	defaultApplication = "General Use"

	defaultFormQuantity = 1
)

// fallbackDeliveryDate is stored when no delivery date is supplied.
var fallbackDeliveryDate = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// parseDeliveryDate parses a structured-path delivery date. Malformed input is
// an error; the structured path rejects rather than defaults.
func parseDeliveryDate(value string) (time.Time, error) {
	t, err := time.Parse(deliveryDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid delivery_date %q: expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// The form* helpers implement the lenient coercion used by the manual-entry
// form: blank or garbage input degrades to the supplied default instead of
// failing the submission.

func formInt(value string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return v
}

func formFloat(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0.0
	}
	return v
}

func formDate(value string) time.Time {
	t, err := time.Parse(formDateLayout, strings.TrimSpace(value))
	if err != nil {
		return fallbackDeliveryDate
	}
	return t.UTC()
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
