package http

import (
	"go.uber.org/fx"

	rfqtransport "github.com/jingsu322/fake-rfq-api/internal/transport/http/rfq"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	rfqtransport.Module,
)
