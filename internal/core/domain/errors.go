package domain

import "errors"

var (
	// ErrInvalidInput marks a calculation that cannot run on the given
	// inputs, e.g. a non-positive budget or CPC. It is never defaulted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIndustry is returned when a media plan is requested for an
	// industry that has no benchmark row.
	ErrUnknownIndustry = errors.New("unknown industry")

	// ErrUnresolvedLookup marks a collaborator that could not produce a
	// value. Proposal assembly recovers from it with unknown fields; content
	// generation cannot.
	ErrUnresolvedLookup = errors.New("unresolved lookup")
)
