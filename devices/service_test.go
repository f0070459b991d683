// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package devices_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/devices/mocks"
	"github.com/oneclickio/oneclick/internal/testsutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
	"github.com/oneclickio/oneclick/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const validClaimCode = "ABC123XYZ789"

var (
	idProvider = uuid.NewMock()
	session    = authn.Session{Token: "token", UserID: "user-1"}
)

func newService() (devices.Service, *mocks.Repository, *mocks.Cache, *mocks.Invoker) {
	repo := new(mocks.Repository)
	cache := new(mocks.Cache)
	invoker := new(mocks.Invoker)
	svc := devices.NewService(repo, cache, invoker, idProvider, idProvider)

	return svc, repo, cache, invoker
}

func TestAdd(t *testing.T) {
	svc, repo, _, _ := newService()

	cases := []struct {
		desc    string
		device  devices.Device
		saveErr error
		err     error
	}{
		{
			desc:   "add valid device",
			device: devices.Device{Type: "button", ClaimCode: validClaimCode},
			err:    nil,
		},
		{
			desc:   "add device with missing claim code",
			device: devices.Device{Type: "button"},
			err:    svcerr.ErrInvalidRequest,
		},
		{
			desc:   "add device with short claim code",
			device: devices.Device{Type: "button", ClaimCode: "ABC"},
			err:    svcerr.ErrInvalidRequest,
		},
		{
			desc:   "add device with non-alphanumeric claim code",
			device: devices.Device{Type: "button", ClaimCode: "ABC123-YZ789"},
			err:    svcerr.ErrInvalidRequest,
		},
		{
			desc:    "add device with failed save",
			device:  devices.Device{Type: "button", ClaimCode: validClaimCode},
			saveErr: svcerr.ErrCreateEntity,
			err:     svcerr.ErrCreateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("Save", context.Background(), mock.Anything).Return(tc.device, tc.saveErr)
			saved, err := svc.Add(context.Background(), session, tc.device)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.device.Type, saved.Type)
			}
			repoCall.Unset()
		})
	}
}

func TestView(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		device devices.Device
		getErr error
		err    error
	}{
		{
			desc:   "view unowned device",
			device: devices.Device{ID: id, Type: "button"},
			err:    nil,
		},
		{
			desc:   "view owned device as owner",
			device: devices.Device{ID: id, Owner: session.UserID},
			err:    nil,
		},
		{
			desc:   "view device owned by someone else",
			device: devices.Device{ID: id, Owner: "other-user"},
			err:    svcerr.ErrForbidden,
		},
		{
			desc:   "view missing device",
			getErr: svcerr.ErrNotFound,
			err:    svcerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, tc.getErr)
			device, err := svc.View(context.Background(), session, id)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.device, device)
			}
			repoCall.Unset()
		})
	}
}

func TestInitiateClaim(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		device devices.Device
		err    error
	}{
		{
			desc:   "initiate claim on unclaimed device",
			device: devices.Device{ID: id, ClaimState: devices.Unclaimed},
			err:    nil,
		},
		{
			desc:   "initiate claim on device with pending claim",
			device: devices.Device{ID: id, ClaimState: devices.ClaimInitiated},
			err:    svcerr.ErrPreconditionFailed,
		},
		{
			desc:   "initiate claim on claimed device",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Owner: session.UserID},
			err:    svcerr.ErrPreconditionFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			updated := tc.device
			updated.ClaimState = devices.ClaimInitiated
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(updated, nil)
			repoCall2 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)
			device, err := svc.InitiateClaim(context.Background(), session, id)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, devices.ClaimInitiated, device.ClaimState)
			}
			repoCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestFinalizeClaim(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		device devices.Device
		err    error
	}{
		{
			desc:   "finalize pending claim",
			device: devices.Device{ID: id, ClaimState: devices.ClaimInitiated},
			err:    nil,
		},
		{
			desc:   "finalize claim on unclaimed device",
			device: devices.Device{ID: id, ClaimState: devices.Unclaimed},
			err:    svcerr.ErrPreconditionFailed,
		},
		{
			desc:   "finalize claim on claimed device",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Owner: session.UserID},
			err:    svcerr.ErrPreconditionFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			updated := tc.device
			updated.ClaimState = devices.Claimed
			updated.Owner = session.UserID
			updated.Enabled = true
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(updated, nil)
			repoCall2 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)
			device, err := svc.FinalizeClaim(context.Background(), session, id, map[string]string{"room": "kitchen"})
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, devices.Claimed, device.ClaimState)
				assert.Equal(t, session.UserID, device.Owner)
			}
			repoCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestClaimByCode(t *testing.T) {
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc    string
		code    string
		cached  []string
		matched []devices.Device
		err     error
	}{
		{
			desc:    "claim devices with valid code",
			code:    validClaimCode,
			matched: []devices.Device{{ID: id, ClaimState: devices.Unclaimed, ClaimCode: validClaimCode}},
			err:     nil,
		},
		{
			desc: "claim devices with invalid code",
			code: "short",
			err:  svcerr.ErrInvalidRequest,
		},
		{
			desc:    "claim devices with unknown code",
			code:    "ZZZZZZZZZZZZ",
			matched: []devices.Device{},
			err:     svcerr.ErrNotFound,
		},
		{
			desc:    "claim devices with code claimed by someone else",
			code:    validClaimCode,
			matched: []devices.Device{{ID: id, ClaimState: devices.Claimed, Owner: "other", ClaimCode: validClaimCode}},
			err:     svcerr.ErrConflict,
		},
		{
			desc:    "claim devices with code already claimed by the caller",
			code:    validClaimCode,
			matched: []devices.Device{{ID: id, ClaimState: devices.Claimed, Owner: session.UserID, ClaimCode: validClaimCode}},
			err:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc, repo, cache, _ := newService()
			cacheCall := cache.On("IDs", context.Background(), tc.code).Return(tc.cached, svcerr.ErrNotFound)
			cacheCall1 := cache.On("Save", context.Background(), tc.code, mock.Anything).Return(nil)
			cacheCall2 := cache.On("Remove", context.Background(), tc.code).Return(nil)
			repoCall := repo.On("RetrieveByClaimCode", context.Background(), tc.code).Return(tc.matched, nil)
			var updated devices.Device
			if len(tc.matched) > 0 {
				updated = tc.matched[0]
				updated.ClaimState = devices.Claimed
				updated.Owner = session.UserID
			}
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(updated, nil)
			repoCall2 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)

			claimed, err := svc.ClaimByCode(context.Background(), session, tc.code)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Len(t, claimed, len(tc.matched))
				for _, d := range claimed {
					assert.Equal(t, devices.Claimed, d.ClaimState)
					assert.Equal(t, session.UserID, d.Owner)
				}
			}
			cacheCall.Unset()
			cacheCall1.Unset()
			cacheCall2.Unset()
			repoCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestClaimByCodeRetry(t *testing.T) {
	svc, repo, cache, _ := newService()
	idA := testsutil.GenerateUUID(t)
	idB := testsutil.GenerateUUID(t)
	deviceA := devices.Device{ID: idA, ClaimState: devices.Unclaimed, ClaimCode: validClaimCode}
	deviceB := devices.Device{ID: idB, ClaimState: devices.Unclaimed, ClaimCode: validClaimCode}
	updateErr := errors.New("update failed")

	claimedA := deviceA
	claimedA.ClaimState = devices.Claimed
	claimedA.Owner = session.UserID
	claimedA.Enabled = true
	claimedB := deviceB
	claimedB.ClaimState = devices.Claimed
	claimedB.Owner = session.UserID
	claimedB.Enabled = true

	matchID := func(id string) interface{} {
		return mock.MatchedBy(func(d devices.Device) bool { return d.ID == id })
	}

	cacheCall := cache.On("IDs", context.Background(), validClaimCode).Return([]string{}, svcerr.ErrNotFound)
	cacheCall1 := cache.On("Save", context.Background(), validClaimCode, mock.Anything).Return(nil)
	cacheCall2 := cache.On("Remove", context.Background(), validClaimCode).Return(nil)
	repoCall := repo.On("RetrieveByClaimCode", context.Background(), validClaimCode).Return([]devices.Device{deviceA, deviceB}, nil)
	repoCall1 := repo.On("Update", context.Background(), matchID(idA)).Return(claimedA, nil)
	repoCall2 := repo.On("Update", context.Background(), matchID(idB)).Return(devices.Device{}, updateErr)
	repoCall3 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)

	_, err := svc.ClaimByCode(context.Background(), session, validClaimCode)
	assert.True(t, errors.Contains(err, svcerr.ErrUpdateEntity), fmt.Sprintf("expected %v got %v", svcerr.ErrUpdateEntity, err))

	// The first device is persisted as claimed by the caller; a retry
	// must treat it as done and finish the rest of the batch.
	repoCall.Unset()
	repoCall2.Unset()
	repoCall = repo.On("RetrieveByClaimCode", context.Background(), validClaimCode).Return([]devices.Device{claimedA, deviceB}, nil)
	repoCall2 = repo.On("Update", context.Background(), matchID(idB)).Return(claimedB, nil)

	claimed, err := svc.ClaimByCode(context.Background(), session, validClaimCode)
	assert.NoError(t, err)
	assert.Len(t, claimed, 2)
	for _, d := range claimed {
		assert.Equal(t, devices.Claimed, d.ClaimState)
		assert.Equal(t, session.UserID, d.Owner)
	}

	cacheCall.Unset()
	cacheCall1.Unset()
	cacheCall2.Unset()
	repoCall.Unset()
	repoCall1.Unset()
	repoCall2.Unset()
	repoCall3.Unset()
}

func TestUnclaim(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		device devices.Device
		err    error
	}{
		{
			desc:   "unclaim claimed device",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Owner: session.UserID},
			err:    nil,
		},
		{
			desc:   "unclaim device with pending claim",
			device: devices.Device{ID: id, ClaimState: devices.ClaimInitiated},
			err:    nil,
		},
		{
			desc:   "unclaim unclaimed device",
			device: devices.Device{ID: id, ClaimState: devices.Unclaimed},
			err:    nil,
		},
		{
			desc:   "unclaim device owned by someone else",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Owner: "other-user"},
			err:    svcerr.ErrForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(devices.Device{}, nil)
			repoCall2 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)
			err := svc.Unclaim(context.Background(), session, id)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
			}
			repoCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestInvokeMethod(t *testing.T) {
	id := testsutil.GenerateUUID(t)
	methods := []devices.Method{{Name: "blink", Description: "blink the LED"}}

	cases := []struct {
		desc      string
		device    devices.Device
		inv       devices.Invocation
		invokeErr error
		err       error
	}{
		{
			desc:   "invoke method on claimed enabled device",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: true, Owner: session.UserID, Methods: methods},
			inv:    devices.Invocation{MethodName: "blink"},
			err:    nil,
		},
		{
			desc:   "invoke method with missing name",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: true, Owner: session.UserID, Methods: methods},
			inv:    devices.Invocation{},
			err:    svcerr.ErrInvalidRequest,
		},
		{
			desc:   "invoke method on disabled device",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: false, Owner: session.UserID, Methods: methods},
			inv:    devices.Invocation{MethodName: "blink"},
			err:    svcerr.ErrPreconditionFailed,
		},
		{
			desc:   "invoke method on unclaimed device",
			device: devices.Device{ID: id, ClaimState: devices.Unclaimed, Enabled: true, Methods: methods},
			inv:    devices.Invocation{MethodName: "blink"},
			err:    svcerr.ErrPreconditionFailed,
		},
		{
			desc:   "invoke unknown method",
			device: devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: true, Owner: session.UserID, Methods: methods},
			inv:    devices.Invocation{MethodName: "reboot"},
			err:    svcerr.ErrNotFound,
		},
		{
			desc:      "invoke method with failed dispatch",
			device:    devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: true, Owner: session.UserID, Methods: methods},
			inv:       devices.Invocation{MethodName: "blink"},
			invokeErr: svcerr.ErrInternalFailure,
			err:       svcerr.ErrInternalFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc, repo, _, invoker := newService()
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, nil)
			repoCall1 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)
			invokeCall := invoker.On("Invoke", mock.Anything, id, tc.inv).Return(devices.InvocationResult{}, tc.invokeErr)
			_, err := svc.InvokeMethod(context.Background(), session, id, tc.inv)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
			}
			repoCall.Unset()
			repoCall1.Unset()
			invokeCall.Unset()
		})
	}
}

func TestListEvents(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)
	device := devices.Device{ID: id, Owner: session.UserID}

	cases := []struct {
		desc string
		pm   devices.Page
		page devices.EventsPage
		err  error
	}{
		{
			desc: "list events",
			pm:   devices.Page{Limit: 10},
			page: devices.EventsPage{Total: 2, Limit: 10, Events: []devices.Event{{DeviceID: id}, {DeviceID: id}}},
			err:  nil,
		},
		{
			desc: "list events with offset beyond range",
			pm:   devices.Page{Offset: 10, Limit: 10},
			page: devices.EventsPage{Total: 2, Offset: 10, Limit: 10},
			err:  svcerr.ErrRangeNotSatisfiable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(device, nil)
			repoCall1 := repo.On("RetrieveEvents", context.Background(), id, tc.pm).Return(tc.page, nil)
			page, err := svc.ListEvents(context.Background(), session, id, tc.pm)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.page, page)
			}
			repoCall.Unset()
			repoCall1.Unset()
		})
	}
}

func TestUpdateState(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc    string
		device  devices.Device
		enabled bool
		err     error
	}{
		{
			desc:    "disable claimed device",
			device:  devices.Device{ID: id, ClaimState: devices.Claimed, Enabled: true, Owner: session.UserID},
			enabled: false,
			err:     nil,
		},
		{
			desc:    "enable unclaimed device",
			device:  devices.Device{ID: id, ClaimState: devices.Unclaimed},
			enabled: true,
			err:     svcerr.ErrPreconditionFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			updated := tc.device
			updated.Enabled = tc.enabled
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(tc.device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(updated, nil)
			repoCall2 := repo.On("SaveEvent", context.Background(), mock.Anything).Return(nil)
			device, err := svc.UpdateState(context.Background(), session, id, tc.enabled)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.enabled, device.Enabled)
			}
			repoCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestTag(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)
	device := devices.Device{ID: id, Owner: session.UserID, Tags: map[string]string{"room": "kitchen"}}

	cases := []struct {
		desc string
		tags map[string]string
		err  error
	}{
		{
			desc: "tag device",
			tags: map[string]string{"floor": "2"},
			err:  nil,
		},
		{
			desc: "tag device with empty tag list",
			tags: map[string]string{},
			err:  svcerr.ErrInvalidRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(device, nil)
			_, err := svc.Tag(context.Background(), session, id, tc.tags)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
			}
			repoCall.Unset()
			repoCall1.Unset()
		})
	}
}

func TestUntag(t *testing.T) {
	svc, repo, _, _ := newService()
	id := testsutil.GenerateUUID(t)
	device := devices.Device{ID: id, Owner: session.UserID, Tags: map[string]string{"room": "kitchen"}}

	cases := []struct {
		desc string
		keys []string
		err  error
	}{
		{
			desc: "untag device",
			keys: []string{"room"},
			err:  nil,
		},
		{
			desc: "untag device with empty key list",
			keys: []string{},
			err:  svcerr.ErrInvalidRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), id).Return(device, nil)
			repoCall1 := repo.On("Update", context.Background(), mock.Anything).Return(device, nil)
			_, err := svc.Untag(context.Background(), session, id, tc.keys)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
			}
			repoCall.Unset()
			repoCall1.Unset()
		})
	}
}
