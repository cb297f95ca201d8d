package patterns

import (
	"errors"
	"fmt"
)

var (
	// ErrInputUnavailable indicates the corpus could not be opened or read.
	ErrInputUnavailable = errors.New("patterns: input unavailable")

	// ErrLineDecode indicates a line could not be interpreted under the
	// expected domain.
	ErrLineDecode = errors.New("patterns: line decode error")

	// ErrOutOfDomain indicates a byte outside the configured alphabet domain.
	ErrOutOfDomain = errors.New("patterns: byte outside domain")
)

// DomainError reports the first out-of-domain byte found in a corpus.
// It matches both ErrLineDecode and ErrOutOfDomain with errors.Is.
type DomainError struct {
	Domain Domain
	Line   int // 1-based
	Column int // 1-based byte offset within the line
	Byte   byte
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("patterns: line %d column %d: byte 0x%02x outside %s domain",
		e.Line, e.Column, e.Byte, e.Domain)
}

func (e *DomainError) Unwrap() []error {
	return []error{ErrLineDecode, ErrOutOfDomain}
}
