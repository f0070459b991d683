// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package authsvc_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn/authsvc"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
	"github.com/stretchr/testify/assert"
)

const (
	validToken = "valid"
	userID     = "d4ebb847-5d0e-4e46-bdd9-b6aceaaa3a22"
)

func newIdentityServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != apiutil.BearerPrefix+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"user_id":%q}`, userID)
	}))
}

func TestAuthenticate(t *testing.T) {
	ts := newIdentityServer()
	defer ts.Close()

	auth := authsvc.NewAuthentication(authsvc.Config{URL: ts.URL, Timeout: time.Second})

	cases := []struct {
		desc  string
		token string
		err   error
	}{
		{
			desc:  "authenticate with valid token",
			token: validToken,
			err:   nil,
		},
		{
			desc:  "authenticate with invalid token",
			token: "invalid",
			err:   svcerr.ErrAuthentication,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			session, err := auth.Authenticate(context.Background(), tc.token)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, session.UserID)
				assert.Equal(t, tc.token, session.Token)
			}
		})
	}
}

func TestAuthenticateTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer ts.Close()

	auth := authsvc.NewAuthentication(authsvc.Config{URL: ts.URL, Timeout: 50 * time.Millisecond})

	_, err := auth.Authenticate(context.Background(), validToken)
	assert.True(t, errors.Contains(err, svcerr.ErrAuthentication), fmt.Sprintf("expected %v got %v", svcerr.ErrAuthentication, err))
}
