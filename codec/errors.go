package codec

import (
	"fmt"

	"github.com/KatrinaE/fixie-sub000/errors"
)

// MalformedTokenError reports a delimiter-separated chunk that is not a
// well-formed tag=value pair: no '=' sign, or a tag that does not parse as a
// non-negative integer. Chunk carries the raw offending bytes.
type MalformedTokenError struct {
	Chunk string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("%v: %q", errors.ErrMalformedToken, e.Chunk)
}

func (e *MalformedTokenError) Unwrap() error { return errors.ErrMalformedToken }

// MissingFieldError reports the absence of a required header field after
// tokenizing, before resolution proceeds.
type MissingFieldError struct {
	Tag uint32
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: tag %d", errors.ErrMissingRequiredField, e.Tag)
}

func (e *MissingFieldError) Unwrap() error { return errors.ErrMissingRequiredField }

// GroupCountMismatchError reports a repeating group whose accumulated entry
// count disagrees with the count its count tag declared. This is a decode
// error, never a silent truncation or pad.
type GroupCountMismatchError struct {
	CountTag uint32
	Expected int
	Actual   int
}

func (e *GroupCountMismatchError) Error() string {
	return fmt.Sprintf("%v: tag %d declared %d entries, found %d",
		errors.ErrGroupCountMismatch, e.CountTag, e.Expected, e.Actual)
}

func (e *GroupCountMismatchError) Unwrap() error { return errors.ErrGroupCountMismatch }

// InvalidGroupCountError reports a group count tag whose value does not
// parse as a non-negative integer.
type InvalidGroupCountError struct {
	CountTag uint32
	Value    string
}

func (e *InvalidGroupCountError) Error() string {
	return fmt.Sprintf("%v: tag %d value %q", errors.ErrInvalidGroupCount, e.CountTag, e.Value)
}

func (e *InvalidGroupCountError) Unwrap() error { return errors.ErrInvalidGroupCount }

// AmbiguousNestedGroupError reports a nested group count tag that appeared
// outside its declared parent field: the group's specification subordinates
// it to ParentTag, but the entry under construction carries no such field.
type AmbiguousNestedGroupError struct {
	CountTag  uint32
	ParentTag uint32
}

func (e *AmbiguousNestedGroupError) Error() string {
	return fmt.Sprintf("%v: tag %d requires preceding parent field %d",
		errors.ErrAmbiguousNestedGroup, e.CountTag, e.ParentTag)
}

func (e *AmbiguousNestedGroupError) Unwrap() error { return errors.ErrAmbiguousNestedGroup }
