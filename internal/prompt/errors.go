package prompt

import (
	"errors"
	"fmt"
)

// ChannelError reports that the terminal streams failed.
type ChannelError struct {
	Op  string // "read", "write" or "flush"
	Err error
}

func (e *ChannelError) Error() string { return fmt.Sprintf("prompt: %s: %v", e.Op, e.Err) }

func (e *ChannelError) Unwrap() error { return e.Err }

// ParseError reports input that is not a value of the requested type.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string { return fmt.Sprintf("prompt: parse %q: %v", e.Input, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// IsFatal reports whether err means the terminal can no longer be used.
func IsFatal(err error) bool {
	var cerr *ChannelError
	return errors.As(err, &cerr)
}
