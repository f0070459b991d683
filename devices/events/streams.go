// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-sourcing decorator that streams
// successful device operations to the event store.
package events

import (
	"context"

	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/events"
	"github.com/oneclickio/oneclick/pkg/events/nats"
)

const streamID = "oneclick.devices"

var _ devices.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc devices.Service
}

// NewEventStoreMiddleware returns a service decorator that publishes an
// event for every successful operation.
func NewEventStoreMiddleware(ctx context.Context, svc devices.Service, url string) (devices.Service, error) {
	publisher, err := nats.NewPublisher(ctx, url, streamID)
	if err != nil {
		return nil, err
	}

	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}, nil
}

func (es *eventStore) Add(ctx context.Context, session authn.Session, device devices.Device) (devices.Device, error) {
	saved, err := es.svc.Add(ctx, session, device)
	if err != nil {
		return saved, err
	}

	event := deviceEvent{operation: deviceAdd, device: saved}
	if err := es.Publish(ctx, event); err != nil {
		return saved, err
	}

	return saved, nil
}

func (es *eventStore) View(ctx context.Context, session authn.Session, id string) (devices.Device, error) {
	device, err := es.svc.View(ctx, session, id)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceView, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}

func (es *eventStore) List(ctx context.Context, session authn.Session, pm devices.Page) (devices.DevicesPage, error) {
	page, err := es.svc.List(ctx, session, pm)
	if err != nil {
		return page, err
	}

	event := listEvent{operation: deviceList, total: page.Total, offset: page.Offset, limit: page.Limit}
	if err := es.Publish(ctx, event); err != nil {
		return page, err
	}

	return page, nil
}

func (es *eventStore) InitiateClaim(ctx context.Context, session authn.Session, id string) (devices.Device, error) {
	device, err := es.svc.InitiateClaim(ctx, session, id)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceInitiateClaim, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}

func (es *eventStore) FinalizeClaim(ctx context.Context, session authn.Session, id string, tags map[string]string) (devices.Device, error) {
	device, err := es.svc.FinalizeClaim(ctx, session, id, tags)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceFinalizeClaim, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}

func (es *eventStore) ClaimByCode(ctx context.Context, session authn.Session, code string) ([]devices.Device, error) {
	claimed, err := es.svc.ClaimByCode(ctx, session, code)
	if err != nil {
		return claimed, err
	}

	ids := make([]string, 0, len(claimed))
	for _, d := range claimed {
		ids = append(ids, d.ID)
	}
	event := claimByCodeEvent{code: code, ids: ids, owner: session.UserID}
	if err := es.Publish(ctx, event); err != nil {
		return claimed, err
	}

	return claimed, nil
}

func (es *eventStore) Unclaim(ctx context.Context, session authn.Session, id string) error {
	if err := es.svc.Unclaim(ctx, session, id); err != nil {
		return err
	}

	event := deviceEvent{operation: deviceUnclaim, device: devices.Device{ID: id}}

	return es.Publish(ctx, event)
}

func (es *eventStore) Methods(ctx context.Context, session authn.Session, id string) ([]devices.Method, error) {
	return es.svc.Methods(ctx, session, id)
}

func (es *eventStore) InvokeMethod(ctx context.Context, session authn.Session, id string, inv devices.Invocation) (devices.InvocationResult, error) {
	res, err := es.svc.InvokeMethod(ctx, session, id, inv)
	if err != nil {
		return res, err
	}

	event := invokeMethodEvent{deviceID: id, methodName: inv.MethodName}
	if err := es.Publish(ctx, event); err != nil {
		return res, err
	}

	return res, nil
}

func (es *eventStore) ListEvents(ctx context.Context, session authn.Session, id string, pm devices.Page) (devices.EventsPage, error) {
	return es.svc.ListEvents(ctx, session, id, pm)
}

func (es *eventStore) UpdateState(ctx context.Context, session authn.Session, id string, enabled bool) (devices.Device, error) {
	device, err := es.svc.UpdateState(ctx, session, id, enabled)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceUpdateState, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}

func (es *eventStore) Tag(ctx context.Context, session authn.Session, id string, tags map[string]string) (devices.Device, error) {
	device, err := es.svc.Tag(ctx, session, id, tags)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceTag, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}

func (es *eventStore) Untag(ctx context.Context, session authn.Session, id string, keys []string) (devices.Device, error) {
	device, err := es.svc.Untag(ctx, session, id, keys)
	if err != nil {
		return device, err
	}

	event := deviceEvent{operation: deviceUntag, device: device}
	if err := es.Publish(ctx, event); err != nil {
		return device, err
	}

	return device, nil
}
