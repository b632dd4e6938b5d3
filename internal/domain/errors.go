package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the camp service. The HTTP layer maps each one to a status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrMonikerTaken = errors.New("moniker already in use")
	ErrNoChanges    = errors.New("no changes persisted")
	ErrCampHasTalks = errors.New("camp still has talks")
	ErrInvalidInput = errors.New("invalid input")
)

// ErrEndBeforeStart is the ErrInvalidInput case of a camp ending before it starts.
var ErrEndBeforeStart = fmt.Errorf("%w: end_date before start_date", ErrInvalidInput)
