package note

import (
	"errors"
)

// Sentinel errors shared by every package of the module
var (
	ErrArgument = errors.New("invalid argument")
	ErrParse    = errors.New("cannot parse")
)
