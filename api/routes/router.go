package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilmsadmin/zbase-pricing/api/controllers"
	"github.com/ilmsadmin/zbase-pricing/api/middleware"
	"github.com/ilmsadmin/zbase-pricing/internal/customers"
	"github.com/ilmsadmin/zbase-pricing/internal/pricelists"
	"github.com/ilmsadmin/zbase-pricing/pkg/config"
	"github.com/ilmsadmin/zbase-pricing/pkg/logger"
	"github.com/ilmsadmin/zbase-pricing/pkg/metrics"
	"github.com/ilmsadmin/zbase-pricing/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config           *config.Config
	Logger           *logger.Logger
	PriceListService pricelists.Service
	CustomerService  customers.Service
	DBPinger         controllers.Pinger
	RedisClient      *redis.Client
	MetricsRegistry  *prometheus.Registry
	HTTPMetrics      *metrics.HTTPMetrics
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	var cache controllers.Pinger
	var idempotencyStore redis.IdempotencyStore
	if deps.RedisClient != nil {
		cache = deps.RedisClient
		idempotencyStore = deps.RedisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, controllers.ReadinessDeps(deps.DBPinger, cache)))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, deps.Logger))

		r.Route("/price-lists", func(r chi.Router) {
			r.Post("/", controllers.PriceListCreate(deps.PriceListService, deps.Logger))
			r.Get("/", controllers.PriceListList(deps.PriceListService, deps.Logger))

			// registered before {priceListId} so "for-customer" is not
			// swallowed by the id parameter
			r.Get("/for-customer/{customerId}", controllers.PriceListForCustomer(deps.PriceListService, deps.Logger))

			r.Route("/{priceListId}", func(r chi.Router) {
				r.Get("/", controllers.PriceListGet(deps.PriceListService, deps.Logger))
				r.Patch("/", controllers.PriceListUpdate(deps.PriceListService, deps.Logger))
				r.Delete("/", controllers.PriceListDelete(deps.PriceListService, deps.Logger))
				r.Post("/set-default", controllers.PriceListSetDefault(deps.PriceListService, deps.Logger))

				r.Route("/items", func(r chi.Router) {
					r.Post("/", controllers.PriceListItemAdd(deps.PriceListService, deps.Logger))
					r.Get("/", controllers.PriceListItemList(deps.PriceListService, deps.Logger))
					r.Patch("/{itemId}", controllers.PriceListItemUpdate(deps.PriceListService, deps.Logger))
					r.Delete("/{itemId}", controllers.PriceListItemRemove(deps.PriceListService, deps.Logger))
				})
			})
		})

		r.Route("/customer-groups", func(r chi.Router) {
			r.Get("/", controllers.CustomerGroupList(deps.CustomerService, deps.Logger))
			r.Get("/{groupId}", controllers.CustomerGroupGet(deps.CustomerService, deps.Logger))
		})
	})

	return r
}
