// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package devices_test

import (
	"testing"

	"github.com/oneclickio/oneclick/devices"
	"github.com/stretchr/testify/assert"
)

func TestClaimStateString(t *testing.T) {
	cases := []struct {
		desc  string
		state devices.ClaimState
		want  string
	}{
		{"unclaimed", devices.Unclaimed, "unclaimed"},
		{"claim initiated", devices.ClaimInitiated, "claim_initiated"},
		{"claimed", devices.Claimed, "claimed"},
		{"unknown", devices.ClaimState(5), "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.state.String())
		})
	}
}

func TestToClaimState(t *testing.T) {
	cases := []struct {
		desc  string
		value string
		want  devices.ClaimState
		err   bool
	}{
		{"unclaimed", "unclaimed", devices.Unclaimed, false},
		{"claim initiated", "claim_initiated", devices.ClaimInitiated, false},
		{"claimed", "claimed", devices.Claimed, false},
		{"mixed case", "Claimed", devices.Claimed, false},
		{"invalid", "active", devices.ClaimState(-1), true},
		{"empty", "", devices.ClaimState(-1), true},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			state, err := devices.ToClaimState(tc.value)
			assert.Equal(t, tc.want, state)
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClaimStateMarshalJSON(t *testing.T) {
	data, err := devices.Claimed.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"claimed"`, string(data))
}

func TestClaimStateUnmarshalJSON(t *testing.T) {
	var state devices.ClaimState
	err := state.UnmarshalJSON([]byte(`"claim_initiated"`))
	assert.NoError(t, err)
	assert.Equal(t, devices.ClaimInitiated, state)

	err = state.UnmarshalJSON([]byte(`"bogus"`))
	assert.Error(t, err)
}
