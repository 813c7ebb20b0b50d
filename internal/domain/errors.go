package domain

import "errors"

var (
	ErrUnknownNotation       = errors.New("unknown notation")
	ErrInvalidDisplayOptions = errors.New("invalid display options")
)
