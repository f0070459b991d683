// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"fmt"
	"testing"

	"github.com/oneclickio/oneclick/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		msg  string
	}{
		{
			desc: "level 0 wrapped error",
			err:  err0,
			msg:  "0",
		},
		{
			desc: "level 1 wrapped error",
			err:  wrap(1),
			msg:  message(1),
		},
		{
			desc: "level 2 wrapped error",
			err:  wrap(2),
			msg:  message(2),
		},
	}

	for _, tc := range cases {
		errMsg := tc.err.Error()
		assert.Equal(t, tc.msg, errMsg, fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.msg, errMsg))
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil contains non-nil",
			container: nil,
			contained: err0,
			contains:  false,
		},
		{
			desc:      "non-nil contains nil",
			container: err0,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "non-nil contains itself",
			container: err0,
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapped contains wrapper",
			container: errors.Wrap(err1, err0),
			contained: err1,
			contains:  true,
		},
		{
			desc:      "wrapped contains wrapped",
			container: errors.Wrap(err1, err0),
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapped does not contain unrelated",
			container: errors.Wrap(err1, err0),
			contained: err2,
			contains:  false,
		},
	}

	for _, tc := range cases {
		contains := errors.Contains(tc.container, tc.contained)
		assert.Equal(t, tc.contains, contains, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.contains, contains))
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		desc    string
		wrapper error
		wrapped error
		msg     string
	}{
		{
			desc:    "wrap error with error",
			wrapper: err1,
			wrapped: err0,
			msg:     "1 : 0",
		},
		{
			desc:    "wrap nil with error",
			wrapper: err1,
			wrapped: nil,
			msg:     "1",
		},
		{
			desc:    "wrap error with nil",
			wrapper: nil,
			wrapped: err0,
			msg:     "",
		},
	}

	for _, tc := range cases {
		err := errors.Wrap(tc.wrapper, tc.wrapped)
		if tc.wrapper == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: expected nil got %v\n", tc.desc, err))
			continue
		}
		assert.Equal(t, tc.msg, err.Error(), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.msg, err.Error()))
	}
}

func TestUnwrap(t *testing.T) {
	wrapped := errors.Wrap(err1, err0)
	wrapper, err := errors.Unwrap(wrapped)
	assert.Equal(t, err1.Error(), wrapper.Error())
	assert.Equal(t, err0.Error(), err.Error())

	wrapper, err = errors.Unwrap(err0)
	assert.Nil(t, wrapper)
	assert.Equal(t, err0.Error(), err.Error())
}

func wrap(level int) error {
	if level == 0 {
		return err0
	}
	return errors.Wrap(errors.New(fmt.Sprintf("%d", level)), wrap(level-1))
}

func message(level int) string {
	if level == 0 {
		return "0"
	}
	return fmt.Sprintf("%d : %s", level, message(level-1))
}
