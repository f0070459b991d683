// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package cli

import ocsdk "github.com/oneclickio/oneclick/pkg/sdk"

// authToken returns the token argument when supplied. Without one it
// falls back to the web identity token file configured in the
// environment, so deployments with projected credentials can omit the
// token argument.
func authToken(args []string, idx int) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}

	token, err := ocsdk.WebIdentityProviderFromEnv().Token()
	if err != nil {
		return "", err
	}

	return token, nil
}
