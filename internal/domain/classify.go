package domain

import (
	"errors"
	"net/http"
)

// Classification is the client-visible outcome of a failure.
// An empty Message means the response carries no body.
type Classification struct {
	Status  int
	Message string
}

// Classify maps a failure raised anywhere in the request pipeline to its
// stable status and message. ok is false for failures that have no mapping;
// those are process-level faults and must not be shown to clients.
func Classify(err error) (c Classification, ok bool) {
	if err == nil {
		return Classification{}, false
	}

	var httpErr HTTPError

	switch {
	case errors.Is(err, ErrMalformedID):
		return Classification{Status: http.StatusBadRequest, Message: ErrMalformedID.Error()}, true
	// Typed errors carry their own status. Checked before the codec sentinels:
	// the resolver's message wins over the error it wraps.
	case errors.As(err, &httpErr):
		return Classification{Status: httpErr.StatusCode(), Message: httpErr.Error()}, true
	case errors.Is(err, ErrTokenExpired):
		return Classification{Status: http.StatusUnauthorized, Message: MsgTokenExpired}, true
	case errors.Is(err, ErrTokenInvalid):
		return Classification{Status: http.StatusUnauthorized, Message: MsgTokenInvalid}, true
	case errors.Is(err, ErrNotFound):
		return Classification{Status: http.StatusNotFound}, true
	default:
		return Classification{}, false
	}
}
