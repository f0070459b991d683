// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package apiutil_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/stretchr/testify/assert"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		desc   string
		header string
		token  string
	}{
		{
			desc:   "valid bearer token",
			header: "Bearer token",
			token:  "token",
		},
		{
			desc:   "missing prefix",
			header: "token",
			token:  "",
		},
		{
			desc:   "empty header",
			header: "",
			token:  "",
		},
	}

	for _, tc := range cases {
		r, _ := http.NewRequest(http.MethodGet, "http://localhost", nil)
		r.Header.Set("Authorization", tc.header)
		token := apiutil.ExtractBearerToken(r)
		assert.Equal(t, tc.token, token, fmt.Sprintf("%s: expected %q got %q", tc.desc, tc.token, token))
	}
}
