// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package authsvc provides an HTTP client for the token introspection
// endpoint of the auth service.
package authsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/authn"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
)

const identifyEndpoint = "/identify"

// Config holds the auth service client configuration.
type Config struct {
	URL     string        `env:"URL"     envDefault:"http://localhost:8189"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

var _ authn.Authentication = (*authentication)(nil)

type authentication struct {
	url    string
	client *http.Client
}

// NewAuthentication returns an Authentication implementation backed by
// the auth service identify endpoint.
func NewAuthentication(cfg Config) authn.Authentication {
	return &authentication{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *authentication) Authenticate(ctx context.Context, token string) (authn.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url+identifyEndpoint, nil)
	if err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, err)
	}
	req.Header.Set("Authorization", apiutil.BearerPrefix+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return authn.Session{}, svcerr.ErrAuthentication
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, err)
	}

	return authn.Session{Token: token, UserID: body.UserID}, nil
}
