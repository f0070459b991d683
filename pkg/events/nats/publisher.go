// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oneclickio/oneclick/pkg/events"
)

const maxReconnects = -1

var jsStreamConfig = jetstream.StreamConfig{
	Name:              "events",
	Description:       "oneclick stream for exchanging device operation events",
	Subjects:          []string{"events.>"},
	Retention:         jetstream.LimitsPolicy,
	MaxMsgsPerSubject: 1e9,
	MaxAge:            time.Hour * 24,
	MaxMsgSize:        1024 * 1024,
	Discard:           jetstream.DiscardOld,
	Storage:           jetstream.FileStorage,
}

var _ events.Publisher = (*pubEventStore)(nil)

type record struct {
	subject string
	payload []byte
}

type pubEventStore struct {
	conn              *nats.Conn
	js                jetstream.JetStream
	stream            string
	mu                sync.Mutex
	unpublishedEvents chan record
}

// NewPublisher returns a JetStream-backed event publisher. Events that
// cannot be delivered while the broker is down are buffered and flushed
// once the connection recovers.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	conn, err := nats.Connect(url, nats.MaxReconnects(maxReconnects))
	if err != nil {
		return nil, err
	}
	js, err := jetstream.New(conn)
	if err != nil {
		return nil, err
	}
	if _, err := js.CreateStream(ctx, jsStreamConfig); err != nil {
		return nil, err
	}

	es := &pubEventStore{
		conn:              conn,
		js:                js,
		stream:            stream,
		unpublishedEvents: make(chan record, events.MaxUnpublishedEvents),
	}

	go es.flushUnpublished(ctx)

	return es, nil
}

func (es *pubEventStore) Publish(ctx context.Context, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	values["occurred_at"] = time.Now().UnixNano()

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	subject := jsStreamConfig.Name + "." + es.stream
	rec := record{subject: subject, payload: data}

	if !es.conn.IsConnected() {
		es.mu.Lock()
		defer es.mu.Unlock()

		// If the channel is full (rarely happens), drop the events.
		if len(es.unpublishedEvents) == int(events.MaxUnpublishedEvents) {
			return nil
		}
		es.unpublishedEvents <- rec

		return nil
	}

	_, err = es.js.Publish(ctx, rec.subject, rec.payload)

	return err
}

// flushUnpublished periodically checks the connection and publishes the
// events that were buffered due to a connection error.
func (es *pubEventStore) flushUnpublished(ctx context.Context) {
	defer close(es.unpublishedEvents)

	ticker := time.NewTicker(events.UnpublishedEventsCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !es.conn.IsConnected() {
				continue
			}
			es.mu.Lock()
			for i := len(es.unpublishedEvents) - 1; i >= 0; i-- {
				rec := <-es.unpublishedEvents
				if _, err := es.js.Publish(ctx, rec.subject, rec.payload); err != nil {
					es.unpublishedEvents <- rec

					break
				}
			}
			es.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (es *pubEventStore) Close() error {
	es.conn.Close()

	return nil
}
