package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signforge/signforge-backend/api/controllers"
	"github.com/signforge/signforge-backend/api/middleware"
	"github.com/signforge/signforge-backend/internal/catalog"
	"github.com/signforge/signforge-backend/internal/pricing"
	"github.com/signforge/signforge-backend/pkg/config"
	"github.com/signforge/signforge-backend/pkg/logger"
	"github.com/signforge/signforge-backend/pkg/metrics"
	pkgredis "github.com/signforge/signforge-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           controllers.Pinger
	Redis        *pkgredis.Client
	Catalog      catalog.Service
	Engine       *pricing.Engine
	QuoteMetrics *metrics.QuoteMetrics
	Idempotency  pkgredis.IdempotencyStore
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    pingerOrNil(deps.Redis),
		}))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/materials", controllers.MaterialsList(deps.Catalog, deps.Logger))

		r.With(middleware.Idempotency(deps.Idempotency, deps.Config.Quote.IdempotencyTTL, deps.Logger)).
			Post("/quotes", controllers.QuoteCreate(deps.Engine, deps.Catalog, deps.Config, deps.QuoteMetrics, deps.Logger))
	})

	return r
}

// pingerOrNil avoids packing a typed nil into the Pinger interface.
func pingerOrNil(client *pkgredis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
