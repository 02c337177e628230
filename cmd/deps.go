package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"tracker/internal/config"
	"tracker/internal/tracker"
	"tracker/pkg/carrier"
	"tracker/pkg/carrier/dhl"
	"tracker/pkg/carrier/dhlgm"
	"tracker/pkg/carrier/fedex"
	"tracker/pkg/carrier/ontrac"
	"tracker/pkg/carrier/ups"
	"tracker/pkg/carrier/upsmi"
	"tracker/pkg/carrier/usps"
	"tracker/pkg/credentials"
	"tracker/pkg/locality"
	"tracker/pkg/locality/geocoder"
	"tracker/pkg/logger"
	"tracker/pkg/timezone"
	"tracker/pkg/trackingnumber"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getCredentialCache builds the bearer token cache selected by configuration.
func getCredentialCache(ctx context.Context, cfg *config.Config) (credentials.Cache, func()) {
	options := credentials.Options{SafetyMargin: cfg.Credentials.SafetyMargin}
	if cfg.Credentials.Backend != "redis" {
		return credentials.NewMemory(options), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Credentials.Redis.Addr,
		Password: cfg.Credentials.Redis.Password,
		DB:       cfg.Credentials.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn(ctx, "redis is not reachable, tokens will be fetched on demand", zap.Error(err))
	}

	return credentials.NewRedis(client, cfg.Credentials.Redis.Prefix, options), func() {
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getResolver builds the locality resolver selected by configuration. The
// postgres gazetteer is opened only when a backend needs it.
func getResolver(ctx context.Context, cfg *config.Config, httpClient *http.Client) (*timezone.Resolver, func()) {
	var (
		g       timezone.Geocoder
		cleanup = func() {}
	)

	switch cfg.Locality.Backend {
	case "postgres":
		pgsql, closeStrg := getPostgres(ctx, cfg)
		g, cleanup = locality.NewGazetteer(pgsql), closeStrg
	case "geocoder":
		remote := geocoder.New(httpClient, geocoder.Options{
			BaseURL:           cfg.Locality.BaseURL,
			APIKey:            cfg.Locality.APIKey,
			RequestsPerSecond: cfg.Locality.RequestsPerSecond,
			Burst:             cfg.Locality.Burst,
		})
		g = remote
		if cfg.Locality.Cache {
			pgsql, closeStrg := getPostgres(ctx, cfg)
			g, cleanup = locality.NewCached(pgsql, remote), closeStrg
		}
	}

	return timezone.NewResolver(g, cfg.Tracking.LocalityConcurrency), cleanup
}

// getNormalizers creates a client for every enabled carrier API.
func getNormalizers(
	cfg *config.Config,
	httpClient *http.Client,
	cache credentials.Cache,
	resolver *timezone.Resolver) ([]carrier.Normalizer, error) {
	c := cfg.Carriers

	var out []carrier.Normalizer
	if c.UPS.Enabled {
		out = append(out, ups.New(httpClient, cache, resolver, ups.Options{
			BaseURL:      c.UPS.BaseURL,
			ClientID:     c.UPS.ClientID,
			ClientSecret: c.UPS.ClientSecret,
		}))
	}
	if c.UPSMI.Enabled {
		// Mail Innovations authenticates with the UPS OAuth client
		if c.UPS.ClientID == "" || c.UPS.ClientSecret == "" {
			return nil, errors.New("upsmi requires ups client credentials")
		}
		out = append(out, upsmi.New(httpClient, cache, resolver, upsmi.Options{
			BaseURL:      c.UPSMI.BaseURL,
			ClientID:     c.UPS.ClientID,
			ClientSecret: c.UPS.ClientSecret,
		}))
	}
	if c.FedEx.Enabled {
		out = append(out, fedex.New(httpClient, cache, fedex.Options{
			BaseURL:      c.FedEx.BaseURL,
			ClientID:     c.FedEx.ClientID,
			ClientSecret: c.FedEx.ClientSecret,
		}))
	}
	if c.USPS.Enabled {
		out = append(out, usps.New(httpClient, cache, resolver, usps.Options{
			BaseURL:      c.USPS.BaseURL,
			ClientID:     c.USPS.ClientID,
			ClientSecret: c.USPS.ClientSecret,
		}))
	}
	if c.USPSLegacy.Enabled {
		out = append(out, usps.NewLegacy(httpClient, resolver, usps.LegacyOptions{
			BaseURL:  c.USPSLegacy.BaseURL,
			UserID:   c.USPSLegacy.UserID,
			ClientIP: c.USPSLegacy.ClientIP,
		}))
	}
	if c.DHL.Enabled {
		out = append(out, dhl.New(httpClient, resolver, dhl.Options{
			BaseURL: c.DHL.BaseURL,
			APIKey:  c.DHL.APIKey,
		}))
	}
	if c.DHLGM.Enabled {
		out = append(out, dhlgm.New(httpClient, cache, resolver, dhlgm.Options{
			BaseURL:      c.DHLGM.BaseURL,
			ClientID:     c.DHLGM.ClientID,
			ClientSecret: c.DHLGM.ClientSecret,
		}))
	}
	if c.OnTrac.Enabled {
		out = append(out, ontrac.New(httpClient, resolver, ontrac.Options{
			BaseURL:  c.OnTrac.BaseURL,
			Account:  c.OnTrac.Account,
			Password: c.OnTrac.Password,
		}))
	}

	return out, nil
}

// getTracker wires carrier clients, credential cache and locality resolver
// into the fallback orchestrator. The returned cleanup releases connections.
func getTracker(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) (tracker.Tracker, func()) {
	httpClient := &http.Client{Transport: http.DefaultTransport}

	cache, closeCache := getCredentialCache(ctx, cfg)
	resolver, closeResolver := getResolver(ctx, cfg, httpClient)
	cleanup := func() {
		closeResolver()
		closeCache()
	}

	normalizers, err := getNormalizers(cfg, httpClient, cache, resolver)
	if err != nil {
		cleanup()
		logger.Fatal(ctx, "invalid carrier configuration", zap.Error(err))
	}
	if len(normalizers) == 0 {
		logger.Warn(ctx, "no carrier is enabled, every lookup will fail")
	}

	tr, err := tracker.New(ctx, tracker.Deps{
		Normalizers:    normalizers,
		Classifier:     trackingnumber.New(),
		MeterProvider:  mp,
		TracerProvider: otel.GetTracerProvider(),
	}, tracker.NewOptions(cfg))
	if err != nil {
		cleanup()
		logger.Fatal(ctx, "could not create tracker", zap.Error(fmt.Errorf("invalid tracking configuration: %w", err)))
	}

	return tr, cleanup
}
