// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/oneclickio/oneclick/pkg/errors"

// Wrapper for Service errors. The set mirrors the exception taxonomy the
// devices API reports to its clients.
var (
	// ErrAuthentication indicates failure occurred while authenticating the entity.
	ErrAuthentication = errors.New("authentication error")

	// ErrForbidden indicates the caller has no right to access the resource.
	ErrForbidden = errors.New("access to the resource is forbidden")

	// ErrInvalidRequest indicates a malformed or unparsable request.
	ErrInvalidRequest = errors.New("request is not valid")

	// ErrInternalFailure indicates an unexpected error on the service side.
	ErrInternalFailure = errors.New("unexpected internal failure")

	// ErrPreconditionFailed indicates that the resource is not in the state
	// required by the operation.
	ErrPreconditionFailed = errors.New("resource state precondition failed")

	// ErrRangeNotSatisfiable indicates a requested range outside the resource bounds.
	ErrRangeNotSatisfiable = errors.New("requested range cannot be satisfied")

	// ErrConflict indicates that the resource already exists or is claimed elsewhere.
	ErrConflict = errors.New("resource already exists")

	// ErrNotFound indicates a non-existent resource request.
	ErrNotFound = errors.New("resource not found")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.New("failed to create entity in the db")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = errors.New("failed to remove entity")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.New("view entity failed")

	// ErrUpdateEntity indicates error in updating entity or entities.
	ErrUpdateEntity = errors.New("update entity failed")

	// ErrUniqueID indicates an error in generating a unique ID.
	ErrUniqueID = errors.New("failed to generate unique identifier")
)
