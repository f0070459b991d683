// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/oneclickio/oneclick/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		err   bool
	}{
		{
			desc:  "debug level",
			level: "debug",
			err:   false,
		},
		{
			desc:  "info level",
			level: "info",
			err:   false,
		},
		{
			desc:  "warn level",
			level: "warn",
			err:   false,
		},
		{
			desc:  "error level",
			level: "error",
			err:   false,
		},
		{
			desc:  "invalid level",
			level: "verbose",
			err:   true,
		},
	}

	for _, tc := range cases {
		_, err := logger.New(&bytes.Buffer{}, tc.level)
		assert.Equal(t, tc.err, err != nil, fmt.Sprintf("%s: unexpected error state: %v", tc.desc, err))
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn")
	require.Nil(t, err)

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept", "key", "value")
	var rec map[string]interface{}
	require.Nil(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "value", rec["key"])
}
