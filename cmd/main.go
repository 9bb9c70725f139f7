package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/config"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/endpoints"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/service"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/transport"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/auth"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/filestore"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/logger"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/messaging"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/pdf"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/storage"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/travel"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

// @title           Itinerary Planner Service API
// @version         0.0.1
// @description     itinerary-planner-service
// @host      localhost:5000
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

// dependencies are the long lived clients shared by every request.
type dependencies struct {
	mongo    *mongo.Client
	redis    *redis.Client
	mq       *messaging.RabbitMQ
	newRelic *newrelic.Application
	blobs    *filestore.Store
}

func (d *dependencies) close(ctx context.Context) {
	if d.mq != nil {
		d.mq.Close()
	}

	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close redis", slog.String("error", err.Error()))
		}
	}

	if d.mongo != nil {
		if err := d.mongo.Disconnect(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to disconnect mongodb", slog.String("error", err.Error()))
		}
	}

	if d.newRelic != nil {
		d.newRelic.Shutdown(shutdownTimeout)
	}
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	deps, err := initDependencies(ctx, &cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg, deps)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer closeCancel()

	deps.close(closeCtx)
	slog.InfoContext(ctx, "All service closed...")
}

func initDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	// init validator
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	// init new relic, optional
	if cfg.NewRelic.LicenseKey != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			slog.WarnContext(ctx, "failed to init new relic", slog.String("error", err.Error()))
		} else {
			deps.newRelic = app
		}
	}

	// init mongodb
	mongoClient, err := storage.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	deps.mongo = mongoClient

	// init redis
	deps.redis = redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	// init rabbitmq
	mq, err := messaging.NewRabbitMQ(ctx, cfg.AMQP.URL)
	if err != nil {
		deps.close(ctx)
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	deps.mq = mq

	if err := mq.DeclareTopicExchange(cfg.AMQP.ShareExchange); err != nil {
		deps.close(ctx)
		return nil, fmt.Errorf("declare share exchange: %w", err)
	}

	// init upload storage
	blobs, err := filestore.NewOS(cfg.Upload.Dir)
	if err != nil {
		deps.close(ctx)
		return nil, fmt.Errorf("init upload dir: %w", err)
	}
	deps.blobs = blobs

	return deps, nil
}

// startHTTPServer cancels ctx when the server cannot be built or fails to listen,
// so runApp stops waiting and releases dependencies.
func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config, deps *dependencies) {
	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	revocations := auth.NewRevocationStore(deps.redis)

	endpts, err := makeEndpoints(ctx, &cfg, deps, tokens, revocations)
	if err != nil {
		slog.ErrorContext(ctx, "failed to make endpoints", slog.String("error", err.Error()))
		cancel()

		return
	}

	router := transport.MakeHTTPRouter(&cfg, endpts, transport.Middlewares{
		Tokens:      tokens,
		Revocations: revocations,
		Limiter:     redis_rate.NewLimiter(deps.redis),
		NewRelic:    deps.newRelic,
	})
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))
	serveHTTP(ctx, cancel, server)
}

// serveHTTP runs server until ctx is done, then shuts it down.
func serveHTTP(ctx context.Context, cancel context.CancelFunc, server *http.Server) {
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, deps *dependencies,
	tokens *auth.TokenService, revocations *auth.RevocationStore) (endpoints.Endpoints, error) {
	db := deps.mongo.Database(cfg.Mongo.Database)

	// repositories
	users := storage.NewUserRepository(db)
	itineraries := storage.NewItineraryRepository(db)
	documents := storage.NewDocumentRepository(db)

	for _, repo := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{users, itineraries, documents} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return endpoints.Endpoints{}, fmt.Errorf("ensure indexes: %w", err)
		}
	}

	// travel estimator
	estimator := travel.NewEstimator(travel.NewDefaultResolver(cfg.Travel.Places...))

	// share publisher
	publisher := messaging.NewSharePublisher(deps.mq, cfg.AMQP.ShareExchange)

	// init service endpoint
	return endpoints.Endpoints{
		TravelEndpoint: endpoints.MakeTravelEndpoint(service.NewTravelService(estimator)),
		AuthEndpoint: endpoints.MakeAuthEndpoint(
			service.NewAuthService(users, tokens, revocations, deps.blobs)),
		ItineraryEndpoint: endpoints.MakeItineraryEndpoint(
			service.NewItineraryService(itineraries, users, pdf.NewRenderer(pdf.DefaultFooter), publisher)),
		DocumentEndpoint: endpoints.MakeDocumentEndpoint(
			service.NewDocumentService(documents, deps.blobs)),
	}, nil
}
