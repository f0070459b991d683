// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oneclickio/oneclick/devices"
	devapi "github.com/oneclickio/oneclick/devices/api"
	"github.com/oneclickio/oneclick/devices/mocks"
	"github.com/oneclickio/oneclick/internal/testsutil"
	"github.com/oneclickio/oneclick/logger"
	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	authnmocks "github.com/oneclickio/oneclick/pkg/authn/mocks"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	validToken     = "valid"
	invalidToken   = "invalid"
	contentType    = "application/json"
	validClaimCode = "ABC123XYZ789"
	instanceID     = "5de9b29a-feb9-11ed-be56-0242ac120002"
	userID         = "d4ebb847-5d0e-4e46-bdd9-b6aceaaa3a22"
)

type testRequest struct {
	client      *http.Client
	method      string
	url         string
	contentType string
	token       string
	body        io.Reader
}

func (tr testRequest) make() (*http.Response, error) {
	req, err := http.NewRequest(tr.method, tr.url, tr.body)
	if err != nil {
		return nil, err
	}

	if tr.token != "" {
		req.Header.Set("Authorization", apiutil.BearerPrefix+tr.token)
	}
	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}

	return tr.client.Do(req)
}

func newDevicesServer(t *testing.T) (*httptest.Server, *mocks.Service, *authnmocks.Authentication) {
	svc := new(mocks.Service)
	authenticator := new(authnmocks.Authentication)
	mux := devapi.MakeHandler(svc, authenticator, logger.NewMock(), "devices", instanceID)

	return httptest.NewServer(mux), svc, authenticator
}

func mockAuthn(authenticator *authnmocks.Authentication) *mock.Call {
	return authenticator.On("Authenticate", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, token string) (authn.Session, error) {
			if token != validToken {
				return authn.Session{}, svcerr.ErrAuthentication
			}
			return authn.Session{Token: token, UserID: userID}, nil
		},
	)
}

func TestAddDevice(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	cases := []struct {
		desc        string
		body        string
		contentType string
		token       string
		svcErr      error
		status      int
	}{
		{
			desc:        "add valid device",
			body:        fmt.Sprintf(`{"type":"button","claim_code":"%s"}`, validClaimCode),
			contentType: contentType,
			token:       validToken,
			status:      http.StatusCreated,
		},
		{
			desc:        "add device with invalid token",
			body:        fmt.Sprintf(`{"type":"button","claim_code":"%s"}`, validClaimCode),
			contentType: contentType,
			token:       invalidToken,
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "add device with missing token",
			body:        fmt.Sprintf(`{"type":"button","claim_code":"%s"}`, validClaimCode),
			contentType: contentType,
			token:       "",
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "add device with missing claim code",
			body:        `{"type":"button"}`,
			contentType: contentType,
			token:       validToken,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "add device with invalid claim code",
			body:        `{"type":"button","claim_code":"short"}`,
			contentType: contentType,
			token:       validToken,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "add device with invalid content type",
			body:        fmt.Sprintf(`{"type":"button","claim_code":"%s"}`, validClaimCode),
			contentType: "text/plain",
			token:       validToken,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "add device with malformed body",
			body:        `{`,
			contentType: contentType,
			token:       validToken,
			status:      http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("Add", mock.Anything, mock.Anything, mock.Anything).Return(devices.Device{ID: testsutil.GenerateUUID(t)}, tc.svcErr)
			req := testRequest{
				client:      ts.Client(),
				method:      http.MethodPost,
				url:         ts.URL + "/devices",
				contentType: tc.contentType,
				token:       tc.token,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestViewDevice(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		id     string
		token  string
		svcErr error
		status int
	}{
		{
			desc:   "view existing device",
			id:     id,
			token:  validToken,
			status: http.StatusOK,
		},
		{
			desc:   "view device with invalid token",
			id:     id,
			token:  invalidToken,
			status: http.StatusUnauthorized,
		},
		{
			desc:   "view device with malformed id",
			id:     "not-a-uuid",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "view missing device",
			id:     testsutil.GenerateUUID(t),
			token:  validToken,
			svcErr: svcerr.ErrNotFound,
			status: http.StatusNotFound,
		},
		{
			desc:   "view device owned by someone else",
			id:     id,
			token:  validToken,
			svcErr: svcerr.ErrForbidden,
			status: http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("View", mock.Anything, mock.Anything, tc.id).Return(devices.Device{ID: tc.id}, tc.svcErr)
			req := testRequest{
				client: ts.Client(),
				method: http.MethodGet,
				url:    ts.URL + "/devices/" + tc.id,
				token:  tc.token,
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestListDevices(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	cases := []struct {
		desc   string
		query  string
		token  string
		svcErr error
		status int
	}{
		{
			desc:   "list devices",
			token:  validToken,
			status: http.StatusOK,
		},
		{
			desc:   "list devices with filters",
			query:  "?offset=0&limit=10&type=button&state=claimed&enabled=true",
			token:  validToken,
			status: http.StatusOK,
		},
		{
			desc:   "list devices with excessive limit",
			query:  "?limit=200",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "list devices with invalid state",
			query:  "?state=bogus",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "list devices with invalid direction",
			query:  "?dir=sideways",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "list devices with invalid token",
			token:  invalidToken,
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("List", mock.Anything, mock.Anything, mock.Anything).Return(devices.DevicesPage{}, tc.svcErr)
			req := testRequest{
				client: ts.Client(),
				method: http.MethodGet,
				url:    ts.URL + "/devices" + tc.query,
				token:  tc.token,
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestClaimLifecycle(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		method string
		url    string
		body   string
		svcOp  string
		svcErr error
		status int
	}{
		{
			desc:   "initiate claim",
			method: http.MethodPut,
			url:    "/devices/" + id + "/initiate-claim",
			svcOp:  "InitiateClaim",
			status: http.StatusOK,
		},
		{
			desc:   "initiate claim on claimed device",
			method: http.MethodPut,
			url:    "/devices/" + id + "/initiate-claim",
			svcOp:  "InitiateClaim",
			svcErr: svcerr.ErrPreconditionFailed,
			status: http.StatusPreconditionFailed,
		},
		{
			desc:   "finalize claim without pending claim",
			method: http.MethodPut,
			url:    "/devices/" + id + "/finalize-claim",
			svcOp:  "FinalizeClaim",
			svcErr: svcerr.ErrPreconditionFailed,
			status: http.StatusPreconditionFailed,
		},
		{
			desc:   "claim by unknown code",
			method: http.MethodPut,
			url:    "/claims/" + validClaimCode,
			svcOp:  "ClaimByCode",
			svcErr: svcerr.ErrNotFound,
			status: http.StatusNotFound,
		},
		{
			desc:   "claim by invalid code",
			method: http.MethodPut,
			url:    "/claims/short",
			svcOp:  "ClaimByCode",
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			var svcCall *mock.Call
			switch tc.svcOp {
			case "InitiateClaim":
				svcCall = svc.On("InitiateClaim", mock.Anything, mock.Anything, id).Return(devices.Device{ID: id}, tc.svcErr)
			case "FinalizeClaim":
				svcCall = svc.On("FinalizeClaim", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.Device{ID: id}, tc.svcErr)
			case "ClaimByCode":
				svcCall = svc.On("ClaimByCode", mock.Anything, mock.Anything, mock.Anything).Return([]devices.Device{}, tc.svcErr)
			}
			req := testRequest{
				client: ts.Client(),
				method: tc.method,
				url:    ts.URL + tc.url,
				token:  validToken,
				body:   strings.NewReader(tc.body),
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestInvokeMethod(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		body   string
		svcErr error
		status int
	}{
		{
			desc:   "invoke method",
			body:   `{"method_name":"blink"}`,
			status: http.StatusOK,
		},
		{
			desc:   "invoke method without name",
			body:   `{}`,
			status: http.StatusBadRequest,
		},
		{
			desc:   "invoke method on disabled device",
			body:   `{"method_name":"blink"}`,
			svcErr: svcerr.ErrPreconditionFailed,
			status: http.StatusPreconditionFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("InvokeMethod", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.InvocationResult{}, tc.svcErr)
			req := testRequest{
				client:      ts.Client(),
				method:      http.MethodPost,
				url:         ts.URL + "/devices/" + id + "/methods",
				contentType: contentType,
				token:       validToken,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestListEvents(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		query  string
		svcErr error
		status int
	}{
		{
			desc:   "list events",
			status: http.StatusOK,
		},
		{
			desc:   "list events with time window",
			query:  "?from=1700000000&to=1700003600",
			status: http.StatusOK,
		},
		{
			desc:   "list events with inverted time window",
			query:  "?from=1700003600&to=1700000000",
			status: http.StatusBadRequest,
		},
		{
			desc:   "list events with time window beyond year 2038",
			query:  "?from=2200000000&to=2200003600",
			status: http.StatusOK,
		},
		{
			desc:   "list events with offset beyond range",
			query:  "?offset=100",
			svcErr: svcerr.ErrRangeNotSatisfiable,
			status: http.StatusRequestedRangeNotSatisfiable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("ListEvents", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.EventsPage{}, tc.svcErr)
			req := testRequest{
				client: ts.Client(),
				method: http.MethodGet,
				url:    ts.URL + "/devices/" + id + "/events" + tc.query,
				token:  validToken,
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestUpdateState(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc   string
		body   string
		svcErr error
		status int
	}{
		{
			desc:   "disable device",
			body:   `{"enabled":false}`,
			status: http.StatusOK,
		},
		{
			desc:   "update state without enabled field",
			body:   `{}`,
			status: http.StatusBadRequest,
		},
		{
			desc:   "update state of unclaimed device",
			body:   `{"enabled":true}`,
			svcErr: svcerr.ErrPreconditionFailed,
			status: http.StatusPreconditionFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			svcCall := svc.On("UpdateState", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.Device{ID: id}, tc.svcErr)
			req := testRequest{
				client:      ts.Client(),
				method:      http.MethodPut,
				url:         ts.URL + "/devices/" + id + "/state",
				contentType: contentType,
				token:       validToken,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			svcCall.Unset()
		})
	}
}

func TestTagging(t *testing.T) {
	ts, svc, authenticator := newDevicesServer(t)
	defer ts.Close()

	id := testsutil.GenerateUUID(t)

	cases := []struct {
		desc        string
		method      string
		url         string
		body        string
		contentType string
		status      int
	}{
		{
			desc:        "tag device",
			method:      http.MethodPut,
			url:         "/devices/" + id + "/tags",
			body:        `{"tags":{"room":"kitchen"}}`,
			contentType: contentType,
			status:      http.StatusOK,
		},
		{
			desc:        "tag device with empty tags",
			method:      http.MethodPut,
			url:         "/devices/" + id + "/tags",
			body:        `{"tags":{}}`,
			contentType: contentType,
			status:      http.StatusBadRequest,
		},
		{
			desc:   "untag device",
			method: http.MethodDelete,
			url:    "/devices/" + id + "/tags?keys=room",
			status: http.StatusOK,
		},
		{
			desc:   "untag device without keys",
			method: http.MethodDelete,
			url:    "/devices/" + id + "/tags",
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := mockAuthn(authenticator)
			tagCall := svc.On("Tag", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.Device{ID: id}, nil)
			untagCall := svc.On("Untag", mock.Anything, mock.Anything, id, mock.Anything).Return(devices.Device{ID: id}, nil)
			req := testRequest{
				client:      ts.Client(),
				method:      tc.method,
				url:         ts.URL + tc.url,
				contentType: tc.contentType,
				token:       validToken,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			assert.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("expected %d got %d", tc.status, res.StatusCode))
			authCall.Unset()
			tagCall.Unset()
			untagCall.Unset()
		})
	}
}
