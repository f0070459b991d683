// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/oneclickio/oneclick/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrBearerToken indicates missing or invalid bearer user token.
	ErrBearerToken = errors.New("missing or invalid bearer user token")

	// ErrMissingID indicates missing device ID.
	ErrMissingID = errors.New("missing device id")

	// ErrInvalidIDFormat indicates an invalid ID format.
	ErrInvalidIDFormat = errors.New("invalid id format provided")

	// ErrMissingClaimCode indicates missing device claim code.
	ErrMissingClaimCode = errors.New("missing claim code")

	// ErrInvalidClaimCode indicates a claim code of invalid format.
	ErrInvalidClaimCode = errors.New("invalid claim code format")

	// ErrMissingMethodName indicates missing device method name.
	ErrMissingMethodName = errors.New("missing device method name")

	// ErrEmptyTagList indicates that tag data is empty.
	ErrEmptyTagList = errors.New("empty tag list provided")

	// ErrLimitSize indicates an invalid limit.
	ErrLimitSize = errors.New("invalid limit size")

	// ErrOffsetSize indicates an invalid offset.
	ErrOffsetSize = errors.New("invalid offset size")

	// ErrInvalidDirection indicates an invalid list direction.
	ErrInvalidDirection = errors.New("invalid list direction provided")

	// ErrInvalidTimeWindow indicates an event window where from is not before to.
	ErrInvalidTimeWindow = errors.New("invalid event time window")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
