// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/oneclickio/oneclick"
	"github.com/oneclickio/oneclick/pkg/apiutil"
	"github.com/oneclickio/oneclick/pkg/errors"
	repoerr "github.com/oneclickio/oneclick/pkg/errors/repository"
	svcerr "github.com/oneclickio/oneclick/pkg/errors/service"
)

const (
	OffsetKey     = "offset"
	LimitKey      = "limit"
	TypeKey       = "type"
	StateKey      = "state"
	EnabledKey    = "enabled"
	FromKey       = "from"
	ToKey         = "to"
	DirKey        = "dir"
	AscDir        = "asc"
	DescDir       = "desc"
	DefOffset     = 0
	DefLimit      = 10
	MaxLimitSize  = 100
	ClaimCodeSize = 12

	// ContentType represents JSON content type.
	ContentType = "application/json"
)

// ValidateUUID validates UUID format.
func ValidateUUID(extID string) (err error) {
	id, err := uuid.FromString(extID)
	if id.String() != extID || err != nil {
		return apiutil.ErrInvalidIDFormat
	}

	return nil
}

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(oneclick.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, svcerr.ErrForbidden):
		err = unwrap(err)
		w.WriteHeader(http.StatusForbidden)

	case errors.Contains(err, svcerr.ErrAuthentication),
		errors.Contains(err, apiutil.ErrBearerToken):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnauthorized)

	case errors.Contains(err, svcerr.ErrInvalidRequest),
		errors.Contains(err, apiutil.ErrMissingID),
		errors.Contains(err, apiutil.ErrInvalidIDFormat),
		errors.Contains(err, apiutil.ErrMissingClaimCode),
		errors.Contains(err, apiutil.ErrInvalidClaimCode),
		errors.Contains(err, apiutil.ErrMissingMethodName),
		errors.Contains(err, apiutil.ErrEmptyTagList),
		errors.Contains(err, apiutil.ErrLimitSize),
		errors.Contains(err, apiutil.ErrOffsetSize),
		errors.Contains(err, apiutil.ErrInvalidDirection),
		errors.Contains(err, apiutil.ErrInvalidTimeWindow),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, apiutil.ErrValidation),
		errors.Contains(err, repoerr.ErrMalformedEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, svcerr.ErrPreconditionFailed):
		err = unwrap(err)
		w.WriteHeader(http.StatusPreconditionFailed)

	case errors.Contains(err, svcerr.ErrRangeNotSatisfiable):
		err = unwrap(err)
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)

	case errors.Contains(err, svcerr.ErrNotFound),
		errors.Contains(err, repoerr.ErrNotFound):
		err = unwrap(err)
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, svcerr.ErrConflict),
		errors.Contains(err, repoerr.ErrConflict):
		err = unwrap(err)
		w.WriteHeader(http.StatusConflict)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, svcerr.ErrCreateEntity),
		errors.Contains(err, svcerr.ErrUpdateEntity),
		errors.Contains(err, svcerr.ErrRemoveEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnprocessableEntity)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
