/* Copyright (c) 2021 David Bulkow */

package timespec

import "fmt"

// ParseError describes why a time specification was rejected. Exactly
// one of the predicate methods reports true.
type ParseError struct {
	msg   string
	input string
	field string
	value int
	token string

	unrecognized bool
	invalidField bool
	unknownUnit  bool
	badNumber    bool
}

func (e *ParseError) Error() string            { return e.msg }
func (e *ParseError) UnrecognizedFormat() bool { return e.unrecognized }
func (e *ParseError) InvalidField() bool       { return e.invalidField }
func (e *ParseError) UnrecognizedUnit() bool   { return e.unknownUnit }
func (e *ParseError) MalformedNumber() bool    { return e.badNumber }

// Input returns the specification that was rejected, with surrounding
// whitespace already trimmed.
func (e *ParseError) Input() string { return e.input }

// Field names the out of range field for InvalidField errors.
func (e *ParseError) Field() string { return e.field }

// Value is the rejected value for InvalidField errors.
func (e *ParseError) Value() int { return e.value }

// Token is the offending token for UnrecognizedUnit and
// MalformedNumber errors.
func (e *ParseError) Token() string { return e.token }

func unrecognized(input string) *ParseError {
	return &ParseError{
		msg:          fmt.Sprintf("unrecognized time specification %q", input),
		input:        input,
		unrecognized: true,
	}
}

func invalidField(input, field string, value int) *ParseError {
	return &ParseError{
		msg:          fmt.Sprintf("%s out of range: %d", field, value),
		input:        input,
		field:        field,
		value:        value,
		invalidField: true,
	}
}

func unknownUnit(input, token string) *ParseError {
	return &ParseError{
		msg:         fmt.Sprintf("unknown time unit %q", token),
		input:       input,
		token:       token,
		unknownUnit: true,
	}
}

func malformedNumber(input, token string) *ParseError {
	return &ParseError{
		msg:       fmt.Sprintf("malformed number %q", token),
		input:     input,
		token:     token,
		badNumber: true,
	}
}
