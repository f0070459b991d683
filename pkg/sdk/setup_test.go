// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"context"
	"net/http/httptest"
	"testing"

	devapi "github.com/oneclickio/oneclick/devices/api"
	"github.com/oneclickio/oneclick/devices/mocks"
	"github.com/oneclickio/oneclick/logger"
	"github.com/oneclickio/oneclick/pkg/authn"
	authnmocks "github.com/oneclickio/oneclick/pkg/authn/mocks"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
	"github.com/stretchr/testify/mock"
)

const (
	validToken     = "valid"
	invalidToken   = "invalid"
	validClaimCode = "ABC123XYZ789"
	instanceID     = "5de9b29a-feb9-11ed-be56-0242ac120002"
	userID         = "d4ebb847-5d0e-4e46-bdd9-b6aceaaa3a22"
)

func setupDevices(t *testing.T) (*httptest.Server, *mocks.Service, *authnmocks.Authentication) {
	t.Helper()
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
