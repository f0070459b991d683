// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package cli

import ocsdk "github.com/oneclickio/oneclick/pkg/sdk"

// Keep SDK handle in global var.
var sdk ocsdk.SDK

// SetSDK sets supplied SDK.
func SetSDK(s ocsdk.SDK) {
	sdk = s
}
