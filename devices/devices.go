// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package devices contains the domain concept definitions needed to
// support the device claiming and control service.
package devices

import (
	"context"
	"encoding/json"
	"time"
)

// Device represents a single-function connected device together with
// its claim lifecycle metadata.
type Device struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	ClaimCode     string            `json:"claim_code,omitempty"`
	ClaimState    ClaimState        `json:"claim_state"`
	Enabled       bool              `json:"enabled"`
	Owner         string            `json:"owner,omitempty"`
	RemainingLife float64           `json:"remaining_life"`
	Tags          map[string]string `json:"tags,omitempty"`
	Methods       []Method          `json:"methods,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at,omitempty"`
}

// Method describes a single invokable action exposed by a device.
type Method struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Invocation is a request to execute a device method.
type Invocation struct {
	MethodName string          `json:"method_name"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// InvocationResult carries the device response to a method invocation.
type InvocationResult struct {
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Event is a single record in the append-only per-device event log.
type Event struct {
	ID         string          `json:"id"`
	DeviceID   string          `json:"device_id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Page contains the page-related metadata used to retrieve lists of
// devices and events.
type Page struct {
	Offset    uint64     `json:"offset"`
	Limit     uint64     `json:"limit"`
	Type      string     `json:"type,omitempty"`
	State     ClaimState `json:"state,omitempty"`
	WithState bool       `json:"-"`
	Enabled   *bool      `json:"enabled,omitempty"`
	From      time.Time  `json:"from,omitempty"`
	To        time.Time  `json:"to,omitempty"`
	Direction string     `json:"direction,omitempty"`
}

// DevicesPage contains a page of devices.
type DevicesPage struct {
	Total   uint64   `json:"total"`
	Offset  uint64   `json:"offset"`
	Limit   uint64   `json:"limit"`
	Devices []Device `json:"devices"`
}

// EventsPage contains a page of device events.
type EventsPage struct {
	Total  uint64  `json:"total"`
	Offset uint64  `json:"offset"`
	Limit  uint64  `json:"limit"`
	Events []Event `json:"events"`
}

// Repository specifies the device persistence API.
//
//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) OneClick"
type Repository interface {
	// Save persists a new device. A non-nil error is returned to
	// indicate an operation failure.
	Save(ctx context.Context, device Device) (Device, error)

	// RetrieveByID retrieves a device by its unique identifier.
	RetrieveByID(ctx context.Context, id string) (Device, error)

	// RetrieveByClaimCode retrieves all devices registered with the
	// given claim code.
	RetrieveByClaimCode(ctx context.Context, code string) ([]Device, error)

	// RetrieveAll retrieves a page of devices matching the page filters.
	RetrieveAll(ctx context.Context, pm Page) (DevicesPage, error)

	// Update updates the mutable device fields.
	Update(ctx context.Context, device Device) (Device, error)

	// SaveEvent appends an event to the device event log.
	SaveEvent(ctx context.Context, event Event) error

	// RetrieveEvents retrieves a page of events for the given device.
	RetrieveEvents(ctx context.Context, deviceID string, pm Page) (EventsPage, error)
}

// Cache caches claim-code resolutions to avoid repeated lookups on the
// hot claim path.
//
//go:generate mockery --name Cache --output=./mocks --filename cache.go --quiet --note "Copyright (c) OneClick"
type Cache interface {
	// Save stores the device IDs resolved for a claim code.
	Save(ctx context.Context, code string, ids []string) error

	// IDs returns the cached device IDs for a claim code.
	IDs(ctx context.Context, code string) ([]string, error)

	// Remove evicts a claim code entry.
	Remove(ctx context.Context, code string) error
}

// Invoker dispatches method invocations to physical devices and waits
// for their responses.
//
//go:generate mockery --name Invoker --output=./mocks --filename invoker.go --quiet --note "Copyright (c) OneClick"
type Invoker interface {
	// Invoke sends the invocation to the device and returns its reply.
	Invoke(ctx context.Context, deviceID string, inv Invocation) (InvocationResult, error)

	// Close releases the transport resources held by the invoker.
	Close() error
}
