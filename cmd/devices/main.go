// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package main contains devices main function to start the devices service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/devices/api"
	devcache "github.com/oneclickio/oneclick/devices/cache"
	devevents "github.com/oneclickio/oneclick/devices/events"
	"github.com/oneclickio/oneclick/devices/invoker"
	"github.com/oneclickio/oneclick/devices/middleware"
	devpg "github.com/oneclickio/oneclick/devices/postgres"
	oclog "github.com/oneclickio/oneclick/logger"
	"github.com/oneclickio/oneclick/pkg/authn/authsvc"
	jaegerclient "github.com/oneclickio/oneclick/pkg/jaeger"
	pgclient "github.com/oneclickio/oneclick/pkg/postgres"
	"github.com/oneclickio/oneclick/pkg/prometheus"
	"github.com/oneclickio/oneclick/pkg/server"
	httpserver "github.com/oneclickio/oneclick/pkg/server/http"
	"github.com/oneclickio/oneclick/pkg/ulid"
	"github.com/oneclickio/oneclick/pkg/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "devices"
	envPrefixDB    = "OC_DEVICES_DB_"
	envPrefixHTTP  = "OC_DEVICES_HTTP_"
	envPrefixAuth  = "OC_AUTH_"
	defDB          = "devices"
	defSvcHTTPPort = "9030"
)

type config struct {
	LogLevel      string        `env:"OC_DEVICES_LOG_LEVEL"      envDefault:"info"`
	ESURL         string        `env:"OC_ES_URL"                 envDefault:"nats://localhost:4222"`
	CacheURL      string        `env:"OC_DEVICES_CACHE_URL"      envDefault:"redis://localhost:6379/0"`
	CacheKeyTTL   time.Duration `env:"OC_DEVICES_CACHE_KEY_TTL"  envDefault:"10m"`
	InvokeTimeout time.Duration `env:"OC_DEVICES_INVOKE_TIMEOUT" envDefault:"10s"`
	JaegerURL     url.URL       `env:"OC_JAEGER_URL"             envDefault:"http://localhost:4318/v1/traces"`
	InstanceID    string        `env:"OC_DEVICES_INSTANCE_ID"    envDefault:""`
	TraceRatio    float64       `env:"OC_JAEGER_TRACE_RATIO"     envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := oclog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer oclog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	db, err := pgclient.Setup(dbConfig, *devpg.Migration())
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	authCfg := authsvc.Config{}
	if err := env.ParseWithOptions(&authCfg, env.Options{Prefix: envPrefixAuth}); err != nil {
		logger.Error(fmt.Sprintf("failed to load auth client configuration : %s", err))
		exitCode = 1
		return
	}
	authn := authsvc.NewAuthentication(authCfg)

	cacheOpts, err := redis.ParseURL(cfg.CacheURL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse cache URL: %s", err))
		exitCode = 1
		return
	}
	cacheClient := redis.NewClient(cacheOpts)
	defer cacheClient.Close()

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	inv, err := invoker.New(cfg.ESURL, cfg.InvokeTimeout)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to method invoker broker: %s", err))
		exitCode = 1
		return
	}
	defer inv.Close()

	svc, err := newService(ctx, db, dbConfig, cacheClient, cfg, inv, logger, tracer)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		exitCode = 1
		return
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, authn, logger, svcName, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(ctx context.Context, db *sqlx.DB, dbConfig pgclient.Config, cacheClient *redis.Client, cfg config, inv devices.Invoker, logger *slog.Logger, tracer trace.Tracer) (devices.Service, error) {
	database := pgclient.NewDatabase(db, dbConfig, tracer)
	repo := devpg.NewRepository(database)
	cache := devcache.NewCache(cacheClient, cfg.CacheKeyTTL)
	idp := uuid.New()
	eidp := ulid.New()

	svc := devices.NewService(repo, cache, inv, idp, eidp)
	svc, err := devevents.NewEventStoreMiddleware(ctx, svc, cfg.ESURL)
	if err != nil {
		return nil, err
	}
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)

	return svc, nil
}
