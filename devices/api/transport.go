// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport implementation of the devices
// service API.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/oneclickio/oneclick"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/internal/api"
	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const keysKey = "keys"

// MakeHandler returns a HTTP API handler with health check and metrics.
func MakeHandler(svc devices.Service, authn authn.Authentication, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.AuthenticateMiddleware(authn))

		r.Route("/devices", func(r chi.Router) {
			r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
				addDeviceEndpoint(svc),
				decodeAddDeviceReq,
				api.EncodeResponse,
				opts...,
			), "add_device").ServeHTTP)

			r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
				listDevicesEndpoint(svc),
				decodeListDevicesReq,
				api.EncodeResponse,
				opts...,
			), "list_devices").ServeHTTP)

			r.Route("/{deviceID}", func(r chi.Router) {
				r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
					viewDeviceEndpoint(svc),
					decodeViewDeviceReq,
					api.EncodeResponse,
					opts...,
				), "view_device").ServeHTTP)

				r.Put("/initiate-claim", otelhttp.NewHandler(kithttp.NewServer(
					initiateClaimEndpoint(svc),
					decodeInitiateClaimReq,
					api.EncodeResponse,
					opts...,
				), "initiate_device_claim").ServeHTTP)

				r.Put("/finalize-claim", otelhttp.NewHandler(kithttp.NewServer(
					finalizeClaimEndpoint(svc),
					decodeFinalizeClaimReq,
					api.EncodeResponse,
					opts...,
				), "finalize_device_claim").ServeHTTP)

				r.Put("/unclaim", otelhttp.NewHandler(kithttp.NewServer(
					unclaimEndpoint(svc),
					decodeUnclaimReq,
					api.EncodeResponse,
					opts...,
				), "unclaim_device").ServeHTTP)

				r.Get("/methods", otelhttp.NewHandler(kithttp.NewServer(
					methodsEndpoint(svc),
					decodeMethodsReq,
					api.EncodeResponse,
					opts...,
				), "device_methods").ServeHTTP)

				r.Post("/methods", otelhttp.NewHandler(kithttp.NewServer(
					invokeMethodEndpoint(svc),
					decodeInvokeMethodReq,
					api.EncodeResponse,
					opts...,
				), "invoke_device_method").ServeHTTP)

				r.Get("/events", otelhttp.NewHandler(kithttp.NewServer(
					listEventsEndpoint(svc),
					decodeListEventsReq,
					api.EncodeResponse,
					opts...,
				), "list_device_events").ServeHTTP)

				r.Put("/state", otelhttp.NewHandler(kithttp.NewServer(
					updateStateEndpoint(svc),
					decodeUpdateStateReq,
					api.EncodeResponse,
					opts...,
				), "update_device_state").ServeHTTP)

				r.Put("/tags", otelhttp.NewHandler(kithttp.NewServer(
					tagEndpoint(svc),
					decodeTagReq,
					api.EncodeResponse,
					opts...,
				), "tag_device").ServeHTTP)

				r.Delete("/tags", otelhttp.NewHandler(kithttp.NewServer(
					untagEndpoint(svc),
					decodeUntagReq,
					api.EncodeResponse,
					opts...,
				), "untag_device").ServeHTTP)
			})
		})

		r.Put("/claims/{claimCode}", otelhttp.NewHandler(kithttp.NewServer(
			claimByCodeEndpoint(svc),
			decodeClaimByCodeReq,
			api.EncodeResponse,
			opts...,
		), "claim_devices_by_claim_code").ServeHTTP)
	})

	mux.Get("/health", oneclick.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeAddDeviceReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req addDeviceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeViewDeviceReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewDeviceReq{
		id: chi.URLParam(r, "deviceID"),
	}

	return req, nil
}

func decodeListDevicesReq(_ context.Context, r *http.Request) (interface{}, error) {
	page, err := decodePageQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	state, err := apiutil.ReadStringQuery(r, api.StateKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	if state != "" {
		cs, err := devices.ToClaimState(state)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		page.State = cs
		page.WithState = true
	}

	req := listDevicesReq{
		page: page,
	}

	return req, nil
}

func decodeInitiateClaimReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := initiateClaimReq{
		id: chi.URLParam(r, "deviceID"),
	}

	return req, nil
}

func decodeFinalizeClaimReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := finalizeClaimReq{
		id: chi.URLParam(r, "deviceID"),
	}
	if r.ContentLength > 0 {
		if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
			return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
	}

	return req, nil
}

func decodeClaimByCodeReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := claimByCodeReq{
		code: chi.URLParam(r, "claimCode"),
	}

	return req, nil
}

func decodeUnclaimReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := unclaimReq{
		id: chi.URLParam(r, "deviceID"),
	}

	return req, nil
}

func decodeMethodsReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := methodsReq{
		id: chi.URLParam(r, "deviceID"),
	}

	return req, nil
}

func decodeInvokeMethodReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := invokeMethodReq{
		id: chi.URLParam(r, "deviceID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req.invocation); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeListEventsReq(_ context.Context, r *http.Request) (interface{}, error) {
	page, err := decodePageQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listEventsReq{
		id:   chi.URLParam(r, "deviceID"),
		page: page,
	}

	return req, nil
}

func decodeUpdateStateReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := updateStateReq{
		id: chi.URLParam(r, "deviceID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeTagReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := tagReq{
		id: chi.URLParam(r, "deviceID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeUntagReq(_ context.Context, r *http.Request) (interface{}, error) {
	keys, err := apiutil.ReadStringQuery(r, keysKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := untagReq{
		id: chi.URLParam(r, "deviceID"),
	}
	if keys != "" {
		req.keys = strings.Split(keys, ",")
	}

	return req, nil
}

func decodePageQuery(r *http.Request) (devices.Page, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return devices.Page{}, err
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return devices.Page{}, err
	}
	devType, err := apiutil.ReadStringQuery(r, api.TypeKey, "")
	if err != nil {
		return devices.Page{}, err
	}
	from, err := apiutil.ReadNumQuery[int64](r, api.FromKey, 0)
	if err != nil {
		return devices.Page{}, err
	}
	to, err := apiutil.ReadNumQuery[int64](r, api.ToKey, 0)
	if err != nil {
		return devices.Page{}, err
	}
	var fromTime, toTime time.Time
	if from != 0 {
		fromTime = time.Unix(from, 0)
	}
	if to != 0 {
		toTime = time.Unix(to, 0)
	}
	dir, err := apiutil.ReadStringQuery(r, api.DirKey, api.AscDir)
	if err != nil {
		return devices.Page{}, err
	}

	page := devices.Page{
		Offset:    offset,
		Limit:     limit,
		Type:      devType,
		From:      fromTime,
		To:        toTime,
		Direction: dir,
	}

	enabled, err := apiutil.ReadStringQuery(r, api.EnabledKey, "")
	if err != nil {
		return devices.Page{}, err
	}
	if enabled != "" {
		val := enabled == "true"
		page.Enabled = &val
	}

	return page, nil
}
