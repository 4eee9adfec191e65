package record

import "errors"

// Package errors for record.
var (
	// ErrCommandListLive is returned by Finish when the previously
	// compiled command list has not been released via Reset.
	ErrCommandListLive = errors.New("record: compiled command list still live")

	// ErrNotDeferred is returned by the registry when the "deferred"
	// strategy is requested with a context that cannot record deferred.
	ErrNotDeferred = errors.New("record: context does not support deferred recording")
)
