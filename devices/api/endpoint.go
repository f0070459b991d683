// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/internal/api"
	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
)

func addDeviceEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(addDeviceReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device := devices.Device{
			Type:      req.Type,
			ClaimCode: req.ClaimCode,
			Tags:      req.Tags,
			Methods:   req.Methods,
		}
		saved, err := svc.Add(ctx, session, device)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: saved, created: true}, nil
	}
}

func viewDeviceEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewDeviceReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.View(ctx, session, req.id)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}

func listDevicesEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listDevicesReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		page, err := svc.List(ctx, session, req.page)
		if err != nil {
			return nil, err
		}

		return devicesPageRes{DevicesPage: page}, nil
	}
}

func initiateClaimEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(initiateClaimReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.InitiateClaim(ctx, session, req.id)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}

func finalizeClaimEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(finalizeClaimReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.FinalizeClaim(ctx, session, req.id, req.Tags)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}

func claimByCodeEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(claimByCodeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		claimed, err := svc.ClaimByCode(ctx, session, req.code)
		if err != nil {
			return nil, err
		}

		return claimedDevicesRes{Devices: claimed}, nil
	}
}

func unclaimEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(unclaimReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		if err := svc.Unclaim(ctx, session, req.id); err != nil {
			return nil, err
		}

		return unclaimRes{}, nil
	}
}

func methodsEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(methodsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		methods, err := svc.Methods(ctx, session, req.id)
		if err != nil {
			return nil, err
		}

		return methodsRes{Methods: methods}, nil
	}
}

func invokeMethodEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(invokeMethodReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		res, err := svc.InvokeMethod(ctx, session, req.id, req.invocation)
		if err != nil {
			return nil, err
		}

		return invokeMethodRes{Payload: res.Payload}, nil
	}
}

func listEventsEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listEventsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		page, err := svc.ListEvents(ctx, session, req.id, req.page)
		if err != nil {
			return nil, err
		}

		return eventsPageRes{EventsPage: page}, nil
	}
}

func updateStateEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateStateReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.UpdateState(ctx, session, req.id, *req.Enabled)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}

func tagEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(tagReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.Tag(ctx, session, req.id, req.Tags)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}

func untagEndpoint(svc devices.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(untagReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthentication
		}

		device, err := svc.Untag(ctx, session, req.id, req.keys)
		if err != nil {
			return nil, err
		}

		return deviceRes{Device: device}, nil
	}
}
