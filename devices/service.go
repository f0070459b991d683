// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	"context"
	"time"

	"github.com/oneclickio/oneclick"
	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
)

// Claim codes are fixed-length alphanumeric strings printed on the
// device packaging.
const claimCodeLength = 12

// Event types recorded in the per-device event log.
const (
	eventClaimInitiated = "claim_initiated"
	eventClaimFinalized = "claim_finalized"
	eventClaimed        = "claimed"
	eventUnclaimed      = "unclaimed"
	eventStateUpdated   = "state_updated"
	eventMethodInvoked  = "method_invoked"
)

// Service specifies an API that must be fulfilled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) OneClick"
type Service interface {
	// Add registers a new unclaimed device.
	Add(ctx context.Context, session authn.Session, device Device) (Device, error)

	// View retrieves a device by its identifier.
	View(ctx context.Context, session authn.Session, id string) (Device, error)

	// List retrieves a page of devices matching the page filters.
	List(ctx context.Context, session authn.Session, pm Page) (DevicesPage, error)

	// InitiateClaim starts the claim process for an unclaimed device.
	InitiateClaim(ctx context.Context, session authn.Session, id string) (Device, error)

	// FinalizeClaim completes a previously initiated claim, binding the
	// device to the caller.
	FinalizeClaim(ctx context.Context, session authn.Session, id string, tags map[string]string) (Device, error)

	// ClaimByCode claims every device registered with the given claim
	// code on behalf of the caller.
	ClaimByCode(ctx context.Context, session authn.Session, code string) ([]Device, error)

	// Unclaim releases a claimed device, resetting its lifecycle.
	Unclaim(ctx context.Context, session authn.Session, id string) error

	// Methods lists the methods the device exposes.
	Methods(ctx context.Context, session authn.Session, id string) ([]Method, error)

	// InvokeMethod executes a device method and returns the device reply.
	InvokeMethod(ctx context.Context, session authn.Session, id string, inv Invocation) (InvocationResult, error)

	// ListEvents retrieves a page of events recorded for the device.
	ListEvents(ctx context.Context, session authn.Session, id string, pm Page) (EventsPage, error)

	// UpdateState enables or disables a device.
	UpdateState(ctx context.Context, session authn.Session, id string, enabled bool) (Device, error)

	// Tag adds or overwrites device tags.
	Tag(ctx context.Context, session authn.Session, id string, tags map[string]string) (Device, error)

	// Untag removes the given tag keys from the device.
	Untag(ctx context.Context, session authn.Session, id string, keys []string) (Device, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo            Repository
	cache           Cache
	invoker         Invoker
	idProvider      oneclick.IDProvider
	eventIDProvider oneclick.IDProvider
}

// NewService returns a new devices service implementation. Device IDs come
// from idp, event IDs from eidp so that events sort by creation time.
func NewService(repo Repository, cache Cache, invoker Invoker, idp, eidp oneclick.IDProvider) Service {
	return &service{
		repo:            repo,
		cache:           cache,
		invoker:         invoker,
		idProvider:      idp,
		eventIDProvider: eidp,
	}
}

func (svc *service) Add(ctx context.Context, session authn.Session, device Device) (Device, error) {
	if err := validateClaimCode(device.ClaimCode); err != nil {
		return Device{}, errors.Wrap(svcerr.ErrInvalidRequest, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}

	device.ID = id
	device.ClaimState = Unclaimed
	device.Owner = ""
	device.RemainingLife = 100
	device.CreatedAt = time.Now()

	saved, err := svc.repo.Save(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) View(ctx context.Context, session authn.Session, id string) (Device, error) {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}

	return device, nil
}

func (svc *service) List(ctx context.Context, session authn.Session, pm Page) (DevicesPage, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return DevicesPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) InitiateClaim(ctx context.Context, session authn.Session, id string) (Device, error) {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}
	if device.ClaimState != Unclaimed {
		return Device{}, svcerr.ErrPreconditionFailed
	}

	device.ClaimState = ClaimInitiated
	device.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	if err := svc.appendEvent(ctx, updated.ID, eventClaimInitiated, nil); err != nil {
		return Device{}, err
	}

	return updated, nil
}

func (svc *service) FinalizeClaim(ctx context.Context, session authn.Session, id string, tags map[string]string) (Device, error) {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}
	if device.ClaimState != ClaimInitiated {
		return Device{}, svcerr.ErrPreconditionFailed
	}

	device.ClaimState = Claimed
	device.Owner = session.UserID
	device.Enabled = true
	if len(tags) > 0 {
		if device.Tags == nil {
			device.Tags = map[string]string{}
		}
		for k, v := range tags {
			device.Tags[k] = v
		}
	}
	device.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	if err := svc.appendEvent(ctx, updated.ID, eventClaimFinalized, nil); err != nil {
		return Device{}, err
	}

	return updated, nil
}

func (svc *service) ClaimByCode(ctx context.Context, session authn.Session, code string) ([]Device, error) {
	if err := validateClaimCode(code); err != nil {
		return nil, errors.Wrap(svcerr.ErrInvalidRequest, err)
	}

	matched, err := svc.lookupByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, svcerr.ErrNotFound
	}

	// Validate the whole batch before touching any device so an
	// interrupted call can be retried: devices the caller already holds
	// count as done, a device held by anyone else fails the batch.
	claimed := make([]Device, 0, len(matched))
	pending := make([]Device, 0, len(matched))
	for _, device := range matched {
		if device.ClaimState == Claimed {
			if device.Owner == session.UserID {
				claimed = append(claimed, device)
				continue
			}

			return nil, svcerr.ErrConflict
		}
		pending = append(pending, device)
	}

	for _, device := range pending {
		device.ClaimState = Claimed
		device.Owner = session.UserID
		device.Enabled = true
		device.UpdatedAt = time.Now()

		updated, err := svc.repo.Update(ctx, device)
		if err != nil {
			return nil, errors.Wrap(svcerr.ErrUpdateEntity, err)
		}
		if err := svc.appendEvent(ctx, updated.ID, eventClaimed, nil); err != nil {
			return nil, err
		}

		claimed = append(claimed, updated)
	}

	// The code is spent once its devices are claimed.
	if err := svc.cache.Remove(ctx, code); err != nil {
		return nil, errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return claimed, nil
}

func (svc *service) Unclaim(ctx context.Context, session authn.Session, id string) error {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return err
	}
	if device.ClaimState == Unclaimed {
		return nil
	}

	device.ClaimState = Unclaimed
	device.Owner = ""
	device.Enabled = false
	device.UpdatedAt = time.Now()

	if _, err := svc.repo.Update(ctx, device); err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return svc.appendEvent(ctx, device.ID, eventUnclaimed, nil)
}

func (svc *service) Methods(ctx context.Context, session authn.Session, id string) ([]Method, error) {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return nil, err
	}

	return device.Methods, nil
}

func (svc *service) InvokeMethod(ctx context.Context, session authn.Session, id string, inv Invocation) (InvocationResult, error) {
	if inv.MethodName == "" {
		return InvocationResult{}, errors.Wrap(svcerr.ErrInvalidRequest, apiutil.ErrMissingMethodName)
	}

	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return InvocationResult{}, err
	}
	if device.ClaimState != Claimed || !device.Enabled {
		return InvocationResult{}, svcerr.ErrPreconditionFailed
	}

	found := false
	for _, m := range device.Methods {
		if m.Name == inv.MethodName {
			found = true
			break
		}
	}
	if !found {
		return InvocationResult{}, svcerr.ErrNotFound
	}

	res, err := svc.invoker.Invoke(ctx, device.ID, inv)
	if err != nil {
		return InvocationResult{}, errors.Wrap(svcerr.ErrInternalFailure, err)
	}

	payload := []byte(`{"method_name":"` + inv.MethodName + `"}`)
	if err := svc.appendEvent(ctx, device.ID, eventMethodInvoked, payload); err != nil {
		return InvocationResult{}, err
	}

	return res, nil
}

func (svc *service) ListEvents(ctx context.Context, session authn.Session, id string, pm Page) (EventsPage, error) {
	if !pm.From.IsZero() && !pm.To.IsZero() && pm.From.After(pm.To) {
		return EventsPage{}, errors.Wrap(svcerr.ErrInvalidRequest, apiutil.ErrInvalidTimeWindow)
	}

	if _, err := svc.retrieveOwned(ctx, session, id); err != nil {
		return EventsPage{}, err
	}

	page, err := svc.repo.RetrieveEvents(ctx, id, pm)
	if err != nil {
		return EventsPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	if pm.Offset > 0 && pm.Offset >= page.Total {
		return EventsPage{}, svcerr.ErrRangeNotSatisfiable
	}

	return page, nil
}

func (svc *service) UpdateState(ctx context.Context, session authn.Session, id string, enabled bool) (Device, error) {
	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}
	if device.ClaimState != Claimed {
		return Device{}, svcerr.ErrPreconditionFailed
	}

	device.Enabled = enabled
	device.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	if err := svc.appendEvent(ctx, updated.ID, eventStateUpdated, nil); err != nil {
		return Device{}, err
	}

	return updated, nil
}

func (svc *service) Tag(ctx context.Context, session authn.Session, id string, tags map[string]string) (Device, error) {
	if len(tags) == 0 {
		return Device{}, errors.Wrap(svcerr.ErrInvalidRequest, apiutil.ErrEmptyTagList)
	}

	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}

	if device.Tags == nil {
		device.Tags = map[string]string{}
	}
	for k, v := range tags {
		device.Tags[k] = v
	}
	device.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

func (svc *service) Untag(ctx context.Context, session authn.Session, id string, keys []string) (Device, error) {
	if len(keys) == 0 {
		return Device{}, errors.Wrap(svcerr.ErrInvalidRequest, apiutil.ErrEmptyTagList)
	}

	device, err := svc.retrieveOwned(ctx, session, id)
	if err != nil {
		return Device{}, err
	}

	for _, k := range keys {
		delete(device.Tags, k)
	}
	device.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, device)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

// retrieveOwned fetches a device and enforces that the caller is its
// owner. Unowned devices are visible to everyone.
func (svc *service) retrieveOwned(ctx context.Context, session authn.Session, id string) (Device, error) {
	device, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Device{}, errors.Wrap(svcerr.ErrNotFound, err)
	}
	if device.Owner != "" && device.Owner != session.UserID {
		return Device{}, svcerr.ErrForbidden
	}

	return device, nil
}

// lookupByCode resolves a claim code to devices, consulting the cache
// before the repository.
func (svc *service) lookupByCode(ctx context.Context, code string) ([]Device, error) {
	ids, err := svc.cache.IDs(ctx, code)
	if err == nil && len(ids) > 0 {
		devices := make([]Device, 0, len(ids))
		for _, id := range ids {
			device, err := svc.repo.RetrieveByID(ctx, id)
			if err != nil {
				return nil, errors.Wrap(svcerr.ErrNotFound, err)
			}
			devices = append(devices, device)
		}

		return devices, nil
	}

	devices, err := svc.repo.RetrieveByClaimCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	if len(devices) > 0 {
		ids := make([]string, 0, len(devices))
		for _, d := range devices {
			ids = append(ids, d.ID)
		}
		if err := svc.cache.Save(ctx, code, ids); err != nil {
			return nil, errors.Wrap(svcerr.ErrCreateEntity, err)
		}
	}

	return devices, nil
}

func (svc *service) appendEvent(ctx context.Context, deviceID, eventType string, payload []byte) error {
	id, err := svc.eventIDProvider.ID()
	if err != nil {
		return errors.Wrap(svcerr.ErrUniqueID, err)
	}

	event := Event{
		ID:         id,
		DeviceID:   deviceID,
		Type:       eventType,
		Payload:    payload,
		OccurredAt: time.Now(),
	}
	if err := svc.repo.SaveEvent(ctx, event); err != nil {
		return errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return nil
}

func validateClaimCode(code string) error {
	if code == "" {
		return apiutil.ErrMissingClaimCode
	}
	if len(code) != claimCodeLength {
		return apiutil.ErrInvalidClaimCode
	}
	for _, c := range code {
		isDigit := c >= '0' && c <= '9'
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		if !isDigit && !isUpper && !isLower {
			return apiutil.ErrInvalidClaimCode
		}
	}

	return nil
}
