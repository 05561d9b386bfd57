package app

import (
	"go.uber.org/fx"

	"github.com/jingsu322/fake-rfq-api/internal/cache"
	"github.com/jingsu322/fake-rfq-api/internal/config"
	"github.com/jingsu322/fake-rfq-api/internal/database"
	"github.com/jingsu322/fake-rfq-api/internal/logger"
	"github.com/jingsu322/fake-rfq-api/internal/messaging"
	"github.com/jingsu322/fake-rfq-api/internal/observability"
	repositoryrfq "github.com/jingsu322/fake-rfq-api/internal/repository/rfq"
	httpserver "github.com/jingsu322/fake-rfq-api/internal/server/http"
	servicerfq "github.com/jingsu322/fake-rfq-api/internal/service/rfq"
	transporthttp "github.com/jingsu322/fake-rfq-api/internal/transport/http"
	"github.com/jingsu322/fake-rfq-api/internal/worker"
	workerrfq "github.com/jingsu322/fake-rfq-api/internal/worker/rfq"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositoryrfq.Module,
	servicerfq.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerrfq.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
