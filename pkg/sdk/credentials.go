// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oneclickio/oneclick/pkg/errors"
)

// Environment variables consumed by WebIdentityProvider. They follow the
// convention used for workload identity in Kubernetes deployments: the
// token file is projected into the pod and the role is bound to the
// service account.
const (
	EnvWebIdentityTokenFile = "ONECLICK_WEB_IDENTITY_TOKEN_FILE"
	EnvRoleARN              = "ONECLICK_ROLE_ARN"
	EnvRoleSessionName      = "ONECLICK_ROLE_SESSION_NAME"
)

var (
	// ErrMissingTokenFile indicates that the web identity token file path
	// is not configured.
	ErrMissingTokenFile = errors.New("web identity token file not set")

	// ErrMissingRoleARN indicates that the role to assume is not configured.
	ErrMissingRoleARN = errors.New("role ARN not set")
)

// WebIdentityProvider resolves an access token from a web identity token
// file. The token is re-read on every call so rotated tokens are picked
// up without restarting the client.
type WebIdentityProvider struct {
	TokenFile       string
	RoleARN         string
	RoleSessionName string
}

// NewWebIdentityProvider returns a provider configured explicitly. An
// empty session name gets a generated one.
func NewWebIdentityProvider(tokenFile, roleARN, sessionName string) WebIdentityProvider {
	if sessionName == "" {
		sessionName = createSessionName()
	}

	return WebIdentityProvider{
		TokenFile:       tokenFile,
		RoleARN:         roleARN,
		RoleSessionName: sessionName,
	}
}

// WebIdentityProviderFromEnv builds a provider from the environment:
//
//   - ONECLICK_WEB_IDENTITY_TOKEN_FILE path to the web identity token file.
//   - ONECLICK_ROLE_ARN role to assume.
//   - ONECLICK_ROLE_SESSION_NAME (optional) name applied to the session.
func WebIdentityProviderFromEnv() WebIdentityProvider {
	return NewWebIdentityProvider(
		os.Getenv(EnvWebIdentityTokenFile),
		os.Getenv(EnvRoleARN),
		os.Getenv(EnvRoleSessionName),
	)
}

// Token reads and returns the current web identity token.
func (p WebIdentityProvider) Token() (string, errors.SDKError) {
	if p.TokenFile == "" {
		return "", errors.NewSDKError(ErrMissingTokenFile)
	}
	if p.RoleARN == "" {
		return "", errors.NewSDKError(ErrMissingRoleARN)
	}

	data, err := os.ReadFile(p.TokenFile)
	if err != nil {
		return "", errors.NewSDKError(err)
	}

	return strings.TrimSpace(string(data)), nil
}

func createSessionName() string {
	return fmt.Sprintf("oneclick-sdk-%d", time.Now().UnixNano())
}
