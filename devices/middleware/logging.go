// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/authn"
)

var _ devices.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    devices.Service
}

// LoggingMiddleware adds logging facilities to the devices service.
func LoggingMiddleware(svc devices.Service, logger *slog.Logger) devices.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) Add(ctx context.Context, session authn.Session, device devices.Device) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("device",
				slog.String("id", d.ID),
				slog.String("type", device.Type),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Add device failed", args...)
			return
		}
		lm.logger.Info("Add device completed successfully", args...)
	}(time.Now())

	return lm.svc.Add(ctx, session, device)
}

func (lm *loggingMiddleware) View(ctx context.Context, session authn.Session, id string) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View device failed", args...)
			return
		}
		lm.logger.Info("View device completed successfully", args...)
	}(time.Now())

	return lm.svc.View(ctx, session, id)
}

func (lm *loggingMiddleware) List(ctx context.Context, session authn.Session, pm devices.Page) (page devices.DevicesPage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List devices failed", args...)
			return
		}
		lm.logger.Info("List devices completed successfully", args...)
	}(time.Now())

	return lm.svc.List(ctx, session, pm)
}

func (lm *loggingMiddleware) InitiateClaim(ctx context.Context, session authn.Session, id string) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Initiate device claim failed", args...)
			return
		}
		lm.logger.Info("Initiate device claim completed successfully", args...)
	}(time.Now())

	return lm.svc.InitiateClaim(ctx, session, id)
}

func (lm *loggingMiddleware) FinalizeClaim(ctx context.Context, session authn.Session, id string, tags map[string]string) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Finalize device claim failed", args...)
			return
		}
		lm.logger.Info("Finalize device claim completed successfully", args...)
	}(time.Now())

	return lm.svc.FinalizeClaim(ctx, session, id, tags)
}

func (lm *loggingMiddleware) ClaimByCode(ctx context.Context, session authn.Session, code string) (ds []devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("matched", len(ds)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Claim devices by claim code failed", args...)
			return
		}
		lm.logger.Info("Claim devices by claim code completed successfully", args...)
	}(time.Now())

	return lm.svc.ClaimByCode(ctx, session, code)
}

func (lm *loggingMiddleware) Unclaim(ctx context.Context, session authn.Session, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Unclaim device failed", args...)
			return
		}
		lm.logger.Info("Unclaim device completed successfully", args...)
	}(time.Now())

	return lm.svc.Unclaim(ctx, session, id)
}

func (lm *loggingMiddleware) Methods(ctx context.Context, session authn.Session, id string) (ms []devices.Method, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List device methods failed", args...)
			return
		}
		lm.logger.Info("List device methods completed successfully", args...)
	}(time.Now())

	return lm.svc.Methods(ctx, session, id)
}

func (lm *loggingMiddleware) InvokeMethod(ctx context.Context, session authn.Session, id string, inv devices.Invocation) (res devices.InvocationResult, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
			slog.String("method_name", inv.MethodName),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Invoke device method failed", args...)
			return
		}
		lm.logger.Info("Invoke device method completed successfully", args...)
	}(time.Now())

	return lm.svc.InvokeMethod(ctx, session, id, inv)
}

func (lm *loggingMiddleware) ListEvents(ctx context.Context, session authn.Session, id string, pm devices.Page) (page devices.EventsPage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List device events failed", args...)
			return
		}
		lm.logger.Info("List device events completed successfully", args...)
	}(time.Now())

	return lm.svc.ListEvents(ctx, session, id, pm)
}

func (lm *loggingMiddleware) UpdateState(ctx context.Context, session authn.Session, id string, enabled bool) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
			slog.Bool("enabled", enabled),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update device state failed", args...)
			return
		}
		lm.logger.Info("Update device state completed successfully", args...)
	}(time.Now())

	return lm.svc.UpdateState(ctx, session, id, enabled)
}

func (lm *loggingMiddleware) Tag(ctx context.Context, session authn.Session, id string, tags map[string]string) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
			slog.Int("tags", len(tags)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Tag device failed", args...)
			return
		}
		lm.logger.Info("Tag device completed successfully", args...)
	}(time.Now())

	return lm.svc.Tag(ctx, session, id, tags)
}

func (lm *loggingMiddleware) Untag(ctx context.Context, session authn.Session, id string, keys []string) (d devices.Device, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("device_id", id),
			slog.Int("keys", len(keys)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Untag device failed", args...)
			return
		}
		lm.logger.Info("Untag device completed successfully", args...)
	}(time.Now())

	return lm.svc.Untag(ctx, session, id, keys)
}
