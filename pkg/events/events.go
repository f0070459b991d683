// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-sourcing API used to stream
// device operation events to interested consumers.
package events

import (
	"context"
	"time"
)

const (
	// UnpublishedEventsCheckInterval is the period between attempts to
	// re-publish events buffered during a broker outage.
	UnpublishedEventsCheckInterval        = 1 * time.Minute
	MaxUnpublishedEvents           uint64 = 1e4
)

// Event represents an event.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]interface{}, error)
}

// Publisher specifies events publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}
