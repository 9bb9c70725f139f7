package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/config"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/itinerary-planner-service/internal/pkg/transport/http"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares are the shared clients the router's middleware chain needs.
type Middlewares struct {
	Tokens      httptransport.TokenValidator
	Revocations httptransport.RevocationChecker
	Limiter     httptransport.RateLimiter
	NewRelic    *newrelic.Application
}

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	mw Middlewares,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	authenticate := httptransport.Authenticate(mw.Tokens, mw.Revocations)
	rateLimit := func(name string) httptransport.MiddlewareFunc {
		if mw.Limiter == nil || cfg.RateLimit.PerMinute <= 0 {
			return func(next http.Handler) http.Handler { return next }
		}
		return httptransport.RateLimit(mw.Limiter, name, redis_rate.PerMinute(cfg.RateLimit.PerMinute))
	}
	maxSize := cfg.Upload.MaxSize

	router.Route("/api", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			httptransport.NewRelic(mw.NewRelic),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/auth", func(router chi.Router) {
			router.With(httptransport.MaxBodySize(maxSize+multipartOverhead)).
				Post("/register", httptransport.MakeHandlerFunc(
					endpts.AuthEndpoint.Register,
					decodeRegister(maxSize),
					httptransport.CreatedResponseWithBody,
				))

			router.With(rateLimit("login")).Post("/login", httptransport.MakeHandlerFunc(
				endpts.AuthEndpoint.Login,
				httptransport.DecodeRequest[dto.LoginRequest],
				httptransport.ResponseWithBody,
			))

			router.Group(func(router chi.Router) {
				router.Use(authenticate)

				router.Post("/logout", httptransport.MakeHandlerFunc(
					endpts.AuthEndpoint.Logout,
					decodeLogout,
					httptransport.NoContentResponse,
				))

				router.Get("/me", httptransport.MakeHandlerFunc(
					endpts.AuthEndpoint.CurrentUser,
					decodeCurrentUser,
					httptransport.ResponseWithBody,
				))
			})
		})

		router.Route("/itinerary", func(router chi.Router) {
			router.Use(authenticate)

			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.ItineraryEndpoint.Create,
				decodeCreateItinerary,
				httptransport.CreatedResponseWithBody,
			))

			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.ItineraryEndpoint.List,
				decodeCurrentUser,
				httptransport.ResponseWithBody,
			))

			router.Route("/{id}", func(router chi.Router) {
				router.Get("/", httptransport.MakeHandlerFunc(
					endpts.ItineraryEndpoint.Get,
					decodeItinerary,
					httptransport.ResponseWithBody,
				))

				router.Patch("/", httptransport.MakeHandlerFunc(
					endpts.ItineraryEndpoint.Update,
					decodeUpdateItinerary,
					httptransport.ResponseWithBody,
				))

				router.Delete("/", httptransport.MakeHandlerFunc(
					endpts.ItineraryEndpoint.Delete,
					decodeItinerary,
					httptransport.ResponseWithBody,
				))

				router.Get("/download", httptransport.MakeHandlerFunc(
					endpts.ItineraryEndpoint.Download,
					decodeItinerary,
					httptransport.FileResponse,
				))

				router.Post("/share", httptransport.MakeHandlerFunc(
					endpts.ItineraryEndpoint.Share,
					decodeShareItinerary,
					httptransport.AcceptedResponseWithBody,
				))
			})
		})

		router.Route("/document", func(router chi.Router) {
			router.Use(authenticate)

			uploadLimit := httptransport.MaxBodySize(maxSize + multipartOverhead)

			router.With(uploadLimit).Post("/upload", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.Upload,
				decodeUploadDocument(maxSize),
				httptransport.CreatedResponseWithBody,
			))

			router.With(uploadLimit).Put("/update", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.Update,
				decodeUploadDocument(maxSize),
				httptransport.ResponseWithBody,
			))

			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.List,
				decodeListDocuments,
				httptransport.ResponseWithBody,
			))

			router.Get("/check", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.Check,
				decodeCheckDocument,
				httptransport.ResponseWithBody,
			))

			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.Get,
				decodeDocument,
				httptransport.ResponseWithBody,
			))

			router.Get("/{id}/file", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.File,
				decodeDocument,
				httptransport.FileResponse,
			))

			router.Delete("/{id}", httptransport.MakeHandlerFunc(
				endpts.DocumentEndpoint.Delete,
				decodeDocument,
				httptransport.ResponseWithBody,
			))
		})

		router.With(rateLimit("travel")).Post("/travel/travel-details", httptransport.MakeHandlerFunc(
			endpts.TravelEndpoint.GetTravelDetails,
			httptransport.DecodeRequest[dto.TravelDetailsRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
