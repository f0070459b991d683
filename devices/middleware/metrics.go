// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/authn"
)

var _ devices.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     devices.Service
}

// MetricsMiddleware instruments the devices service by tracking request
// count and latency.
func MetricsMiddleware(svc devices.Service, counter metrics.Counter, latency metrics.Histogram) devices.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) Add(ctx context.Context, session authn.Session, device devices.Device) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "add").Add(1)
		mm.latency.With("method", "add").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Add(ctx, session, device)
}

func (mm *metricsMiddleware) View(ctx context.Context, session authn.Session, id string) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view").Add(1)
		mm.latency.With("method", "view").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.View(ctx, session, id)
}

func (mm *metricsMiddleware) List(ctx context.Context, session authn.Session, pm devices.Page) (devices.DevicesPage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list").Add(1)
		mm.latency.With("method", "list").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.List(ctx, session, pm)
}

func (mm *metricsMiddleware) InitiateClaim(ctx context.Context, session authn.Session, id string) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "initiate_claim").Add(1)
		mm.latency.With("method", "initiate_claim").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.InitiateClaim(ctx, session, id)
}

func (mm *metricsMiddleware) FinalizeClaim(ctx context.Context, session authn.Session, id string, tags map[string]string) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "finalize_claim").Add(1)
		mm.latency.With("method", "finalize_claim").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.FinalizeClaim(ctx, session, id, tags)
}

func (mm *metricsMiddleware) ClaimByCode(ctx context.Context, session authn.Session, code string) ([]devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "claim_by_code").Add(1)
		mm.latency.With("method", "claim_by_code").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ClaimByCode(ctx, session, code)
}

func (mm *metricsMiddleware) Unclaim(ctx context.Context, session authn.Session, id string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "unclaim").Add(1)
		mm.latency.With("method", "unclaim").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Unclaim(ctx, session, id)
}

func (mm *metricsMiddleware) Methods(ctx context.Context, session authn.Session, id string) ([]devices.Method, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "methods").Add(1)
		mm.latency.With("method", "methods").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Methods(ctx, session, id)
}

func (mm *metricsMiddleware) InvokeMethod(ctx context.Context, session authn.Session, id string, inv devices.Invocation) (devices.InvocationResult, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "invoke_method").Add(1)
		mm.latency.With("method", "invoke_method").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.InvokeMethod(ctx, session, id, inv)
}

func (mm *metricsMiddleware) ListEvents(ctx context.Context, session authn.Session, id string, pm devices.Page) (devices.EventsPage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_events").Add(1)
		mm.latency.With("method", "list_events").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ListEvents(ctx, session, id, pm)
}

func (mm *metricsMiddleware) UpdateState(ctx context.Context, session authn.Session, id string, enabled bool) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "update_state").Add(1)
		mm.latency.With("method", "update_state").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.UpdateState(ctx, session, id, enabled)
}

func (mm *metricsMiddleware) Tag(ctx context.Context, session authn.Session, id string, tags map[string]string) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "tag").Add(1)
		mm.latency.With("method", "tag").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Tag(ctx, session, id, tags)
}

func (mm *metricsMiddleware) Untag(ctx context.Context, session authn.Session, id string, keys []string) (devices.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "untag").Add(1)
		mm.latency.With("method", "untag").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Untag(ctx, session, id, keys)
}
