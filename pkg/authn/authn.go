// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package authn

import "context"

// Session holds the identity resolved from a request token.
type Session struct {
	Token  string
	UserID string
}

// Authentication resolves access tokens into sessions.
//
//go:generate mockery --name Authentication --output=./mocks --filename authn.go --quiet --note "Copyright (c) OneClick"
type Authentication interface {
	Authenticate(ctx context.Context, token string) (Session, error)
}
