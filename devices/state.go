// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	"encoding/json"
	"strings"

	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/errors"
)

const (
	// Unclaimed device is registered but has no owner and cannot
	// invoke methods.
	Unclaimed ClaimState = iota
	// ClaimInitiated device has a pending claim that has to be
	// finalized before the device becomes usable.
	ClaimInitiated
	// Claimed device is bound to an owner and can invoke methods
	// while enabled.
	Claimed
)

const (
	unclaimed      = "unclaimed"
	claimInitiated = "claim_initiated"
	claimed        = "claimed"
)

// ClaimState represents the position of a device in its claim lifecycle.
// Transitions are one-way: Unclaimed -> ClaimInitiated -> Claimed, with
// Unclaim resetting the device back to Unclaimed.
type ClaimState int

// String converts claim state to string literal.
func (cs ClaimState) String() string {
	switch cs {
	case Unclaimed:
		return unclaimed
	case ClaimInitiated:
		return claimInitiated
	case Claimed:
		return claimed
	default:
		return "unknown"
	}
}

// ToClaimState converts string value to a valid claim state.
func ToClaimState(status string) (ClaimState, error) {
	switch strings.ToLower(status) {
	case unclaimed:
		return Unclaimed, nil
	case claimInitiated:
		return ClaimInitiated, nil
	case claimed:
		return Claimed, nil
	}

	return ClaimState(-1), apiutil.ErrInvalidQueryParams
}

// MarshalJSON marshals claim state to its string representation.
func (cs ClaimState) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.String())
}

// UnmarshalJSON deserializes JSON string to a claim state.
func (cs *ClaimState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	val, err := ToClaimState(str)
	if err != nil {
		return errors.Wrap(apiutil.ErrValidation, err)
	}
	*cs = val

	return nil
}
