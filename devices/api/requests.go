// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/internal/api"
	"github.com/oneclickio/oneclick/pkg/apiutil"
)

type addDeviceReq struct {
	Type      string            `json:"type"`
	ClaimCode string            `json:"claim_code"`
	Tags      map[string]string `json:"tags,omitempty"`
	Methods   []devices.Method  `json:"methods,omitempty"`
}

func (req addDeviceReq) validate() error {
	if req.Type == "" {
		return apiutil.ErrValidation
	}
	if req.ClaimCode == "" {
		return apiutil.ErrMissingClaimCode
	}
	if len(req.ClaimCode) != api.ClaimCodeSize {
		return apiutil.ErrInvalidClaimCode
	}

	return nil
}

type viewDeviceReq struct {
	id string
}

func (req viewDeviceReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type listDevicesReq struct {
	page devices.Page
}

func (req listDevicesReq) validate() error {
	if req.page.Limit > api.MaxLimitSize || req.page.Limit < 1 {
		return apiutil.ErrLimitSize
	}
	if req.page.Direction != "" && req.page.Direction != api.AscDir && req.page.Direction != api.DescDir {
		return apiutil.ErrInvalidDirection
	}

	return nil
}

type initiateClaimReq struct {
	id string
}

func (req initiateClaimReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type finalizeClaimReq struct {
	id   string
	Tags map[string]string `json:"tags,omitempty"`
}

func (req finalizeClaimReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type claimByCodeReq struct {
	code string
}

func (req claimByCodeReq) validate() error {
	if req.code == "" {
		return apiutil.ErrMissingClaimCode
	}
	if len(req.code) != api.ClaimCodeSize {
		return apiutil.ErrInvalidClaimCode
	}

	return nil
}

type unclaimReq struct {
	id string
}

func (req unclaimReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type methodsReq struct {
	id string
}

func (req methodsReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type invokeMethodReq struct {
	id         string
	invocation devices.Invocation
}

func (req invokeMethodReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if req.invocation.MethodName == "" {
		return apiutil.ErrMissingMethodName
	}

	return nil
}

type listEventsReq struct {
	id   string
	page devices.Page
}

func (req listEventsReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if req.page.Limit > api.MaxLimitSize || req.page.Limit < 1 {
		return apiutil.ErrLimitSize
	}
	if !req.page.From.IsZero() && !req.page.To.IsZero() && req.page.From.After(req.page.To) {
		return apiutil.ErrInvalidTimeWindow
	}

	return nil
}

type updateStateReq struct {
	id      string
	Enabled *bool `json:"enabled"`
}

func (req updateStateReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if req.Enabled == nil {
		return apiutil.ErrValidation
	}

	return nil
}

type tagReq struct {
	id   string
	Tags map[string]string `json:"tags"`
}

func (req tagReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if len(req.Tags) == 0 {
		return apiutil.ErrEmptyTagList
	}

	return nil
}

type untagReq struct {
	id   string
	keys []string
}

func (req untagReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if len(req.keys) == 0 {
		return apiutil.ErrEmptyTagList
	}

	return nil
}
