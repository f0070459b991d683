// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package invoker dispatches device method invocations over NATS
// request/reply. Each device listens on its own subject and answers
// with the method result.
package invoker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/errors"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
)

const (
	subjectPrefix = "devices"
	maxReconnects = -1
)

var _ devices.Invoker = (*natsInvoker)(nil)

type natsInvoker struct {
	conn    *nats.Conn
	timeout time.Duration
}

// New returns a NATS-backed device method invoker.
func New(url string, timeout time.Duration) (devices.Invoker, error) {
	conn, err := nats.Connect(url, nats.MaxReconnects(maxReconnects))
	if err != nil {
		return nil, err
	}

	return &natsInvoker{
		conn:    conn,
		timeout: timeout,
	}, nil
}

func (in *natsInvoker) Invoke(ctx context.Context, deviceID string, inv devices.Invocation) (devices.InvocationResult, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return devices.InvocationResult{}, errors.Wrap(svcerr.ErrInvalidRequest, err)
	}

	ctx, cancel := context.WithTimeout(ctx, in.timeout)
	defer cancel()

	subject := subjectPrefix + "." + deviceID + ".invoke"
	msg, err := in.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		return devices.InvocationResult{}, errors.Wrap(svcerr.ErrInternalFailure, err)
	}

	var res devices.InvocationResult
	if err := json.Unmarshal(msg.Data, &res); err != nil {
		return devices.InvocationResult{}, errors.Wrap(svcerr.ErrInternalFailure, err)
	}

	return res, nil
}

func (in *natsInvoker) Close() error {
	in.conn.Close()

	return nil
}
