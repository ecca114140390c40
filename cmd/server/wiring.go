package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vcpipe/internal/credential/crossmint"
	"vcpipe/internal/credential/events"
	credentialhandler "vcpipe/internal/credential/handler"
	credentialmetrics "vcpipe/internal/credential/metrics"
	"vcpipe/internal/credential/ipfs"
	"vcpipe/internal/credential/models"
	"vcpipe/internal/credential/onchain"
	"vcpipe/internal/credential/presentation"
	"vcpipe/internal/credential/store"
	"vcpipe/internal/credential/tracer"
	"vcpipe/internal/credential/verification"
	jwttoken "vcpipe/internal/jwt_token"
	"vcpipe/internal/platform/config"
	"vcpipe/internal/platform/database"
	"vcpipe/internal/platform/health"
	"vcpipe/internal/platform/kafka"
	"vcpipe/internal/platform/kafka/producer"
	"vcpipe/internal/platform/metrics"
	"vcpipe/internal/platform/middleware"
	"vcpipe/internal/platform/redis"
	"vcpipe/migrations"
	"vcpipe/pkg/platform/circuit"
	authmw "vcpipe/pkg/platform/middleware/auth"
	"vcpipe/pkg/platform/middleware/metadata"
	"vcpipe/pkg/platform/middleware/requesttime"
	"vcpipe/pkg/platform/middleware/version"
)

// recordStore is what both the verification service and the handler need
// from the configured verification store.
type recordStore interface {
	verification.RecordSaver
	credentialhandler.RecordReader
}

type application struct {
	router  http.Handler
	closers []func() error
	log     *slog.Logger
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Error("failed to release resource", "error", err)
		}
	}
	a.closers = nil
}

func build(ctx context.Context, cfg config.Server, log *slog.Logger) (*application, error) {
	app := &application{log: log}
	healthHandler := health.New(cfg.Environment)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	credMetrics := credentialmetrics.NewWithRegistry(registry)
	httpMetrics := metrics.NewWithRegistry(registry)
	trc := tracer.NewOTel()

	files := ipfs.New(
		ipfs.WithGateways(cfg.IPFS.Gateways),
		ipfs.WithTimeout(cfg.IPFS.Timeout),
		ipfs.WithLogger(log),
		ipfs.WithMetrics(credMetrics),
		ipfs.WithTracer(trc),
	)

	rpcURLs := make(map[models.Chain]string, len(cfg.RPCURLs))
	for chain, url := range cfg.RPCURLs {
		rpcURLs[models.Chain(chain)] = url
	}
	nfts, err := onchain.NewNFTService(onchain.NewProviders(rpcURLs),
		onchain.WithLogger(log),
		onchain.WithMetrics(credMetrics),
	)
	if err != nil {
		return nil, fmt.Errorf("init nft service: %w", err)
	}

	api, err := crossmint.New(crossmint.Config{
		BaseURL: cfg.Crossmint.BaseURL,
		APIKey:  cfg.Crossmint.APIKey,
		Timeout: cfg.Crossmint.Timeout,
	},
		crossmint.WithLogger(log),
		crossmint.WithMetrics(credMetrics),
		crossmint.WithBreaker(circuit.New("crossmint")),
	)
	if err != nil {
		return nil, fmt.Errorf("init crossmint client: %w", err)
	}

	metadataReader := presentation.NewContractMetadataService(nfts, files)
	collections := presentation.NewCollectionService(metadataReader,
		presentation.WithCollectionLogger(log),
		presentation.WithCollectionMetrics(credMetrics),
		presentation.WithCollectionTracer(trc),
	)
	locators := presentation.NewLocatorService(nfts, files, metadataReader)
	retrieval := presentation.NewRetrievalService(
		presentation.NewRegistry(
			presentation.NewIPFSProcedure(files),
			presentation.NewCrossmintProcedure(api),
		),
		presentation.WithRetrievalLogger(log),
		presentation.WithRetrievalMetrics(credMetrics),
		presentation.WithRetrievalTracer(trc),
	)
	credentials := presentation.NewCredentialService(api, locators, retrieval)

	records, err := app.buildStore(ctx, cfg, healthHandler)
	if err != nil {
		app.close()
		return nil, err
	}

	verifierOpts := []verification.Option{
		verification.WithRecordSaver(records),
		verification.WithBatchLimit(cfg.BatchConcurrency),
		verification.WithRecordTimeout(cfg.RecordTimeout),
		verification.WithLogger(log),
		verification.WithMetrics(credMetrics),
		verification.WithTracer(trc),
	}
	if cfg.Kafka.Brokers != "" {
		prod, err := producer.New(cfg.Kafka, log)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("init kafka producer: %w", err)
		}
		app.closers = append(app.closers, prod.Close)
		healthHandler.RegisterCheck("kafka", kafka.NewHealthChecker(cfg.Kafka.Brokers).Check)
		healthHandler.RegisterCheck("kafka_producer", prod.Check)
		verifierOpts = append(verifierOpts, verification.WithEventPublisher(
			events.NewPublisher(prod, events.WithTopic(cfg.Kafka.Topic)),
		))
		log.Info("publishing verification events", "topic", cfg.Kafka.Topic)
	}
	verifier := verification.New(verification.NewSignatureVerifier(), nfts, verifierOpts...)

	h := credentialhandler.New(credentialhandler.Services{
		Collections: collections,
		Fetcher:     presentation.NFTFetcherFunc(api.ListWalletNFTs),
		Locators:    locators,
		Credentials: credentials,
		Verifier:    verifier,
		Records:     records,
	}, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(log, httpMetrics))
	r.Use(middleware.Recovery(log))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	r.Route("/v1", func(r chi.Router) {
		r.Use(version.ExtractVersion("v1"))
		if cfg.JWTSigningKey != "" {
			jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
			r.Use(authmw.RequireAuth(jwttoken.NewJWTServiceAdapter(jwtService), log))
		} else {
			log.Warn("API_JWT_SIGNING_KEY not set, credential endpoints are unauthenticated")
		}
		h.Register(r)
	})

	app.router = r
	return app, nil
}

// buildStore prefers Postgres, then Redis, then process memory.
func (a *application) buildStore(ctx context.Context, cfg config.Server, checks *health.Handler) (recordStore, error) {
	if cfg.Database.URL != "" {
		pool, err := database.New(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		checks.RegisterCheck("database", pool.Health)
		if cfg.Database.Migrate {
			if err := database.Migrate(ctx, pool.DB(), migrations.FS); err != nil {
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			a.log.Info("database migrations applied")
		}
		a.log.Info("verification records stored in postgres")
		return store.NewPostgresStore(pool.DB()), nil
	}

	if cfg.Redis.URL != "" {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		checks.RegisterCheck("redis", client.Health)
		a.log.Info("verification records stored in redis", "ttl", cfg.Redis.RecordTTL)
		return store.NewRedisStore(client, store.WithTTL(cfg.Redis.RecordTTL)), nil
	}

	a.log.Warn("no DATABASE_URL or REDIS_URL, verification records kept in memory")
	return store.NewInMemoryStore(), nil
}
