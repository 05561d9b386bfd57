package rfq

import "go.uber.org/fx"

// Module provides the RFQ service to Fx.
var Module = fx.Provide(NewService)
