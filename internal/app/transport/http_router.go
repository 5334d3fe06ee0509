package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/globaltravelbg/package-feed-service/internal/app/config"
	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
	"github.com/globaltravelbg/package-feed-service/internal/app/endpoints"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/observability"
	httptransport "github.com/globaltravelbg/package-feed-service/internal/pkg/transport/http"
)

const responseCacheSeconds = 3600

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	registry *prometheus.Registry,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Method(http.MethodGet, "/metrics", observability.MetricsHandler(registry))

	router.Route("/api", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			httptransport.Metrics(),
			render.SetContentType(render.ContentTypeJSON),
		)

		// the package listing and detail are stable for hours; the
		// destination taxonomy is volatile and must not be cached
		router.Get("/packages", httptransport.MakeHandlerFunc(
			endpts.Catalog.PackageList,
			httptransport.NopRequest,
			httptransport.CacheableResponse(responseCacheSeconds),
		))

		router.Get("/packages/{id}", httptransport.MakeHandlerFunc(
			endpts.Catalog.PackageDetail,
			decodePackageDetailRequest,
			httptransport.CacheableResponse(responseCacheSeconds),
		))

		router.Get("/destinations", httptransport.MakeHandlerFunc(
			endpts.Catalog.Destinations,
			httptransport.NopRequest,
			httptransport.NoStoreResponse,
		))
	})

	return router
}

func decodePackageDetailRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := dto.PackageDetailRequest{ID: chi.URLParam(r, "id")}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}
