// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package cache contains the claim-code cache implementation backed by
// Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/errors"
	repoerr "github.com/oneclickio/oneclick/pkg/errors/repository"
)

const keyPrefix = "claim_code"

var _ devices.Cache = (*claimCache)(nil)

type claimCache struct {
	client      *redis.Client
	keyDuration time.Duration
}

// NewCache returns a Redis claim-code cache implementation.
func NewCache(client *redis.Client, duration time.Duration) devices.Cache {
	return &claimCache{
		client:      client,
		keyDuration: duration,
	}
}

func (cc *claimCache) Save(ctx context.Context, code string, ids []string) error {
	if code == "" || len(ids) == 0 {
		return errors.Wrap(repoerr.ErrCreateEntity, errors.New("claim code or device ids are empty"))
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	if err := cc.client.Set(ctx, keyPrefix+":"+code, data, cc.keyDuration).Err(); err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (cc *claimCache) IDs(ctx context.Context, code string) ([]string, error) {
	data, err := cc.client.Get(ctx, keyPrefix+":"+code).Bytes()
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrNotFound, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	return ids, nil
}

func (cc *claimCache) Remove(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	if err := cc.client.Del(ctx, keyPrefix+":"+code).Err(); err != nil {
		return errors.Wrap(repoerr.ErrRemoveEntity, err)
	}

	return nil
}
