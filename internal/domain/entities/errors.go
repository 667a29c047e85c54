package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Detail errors below unwrap to one of these.
var (
	ErrUnrecognizedPattern = errors.New("unrecognized noun pattern")
	ErrUnrecognizedGender  = errors.New("unrecognized gender")
	ErrStemTooShort        = errors.New("genitive too short for stem")
	ErrTooManyFields       = errors.New("too many fields")
	ErrMissingField        = errors.New("missing field")
)

// PatternError reports a nominative/genitive pair that no classification rule matches.
type PatternError struct {
	Nominative string
	Genitive   string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("[%s, %s] is not a recognised noun type", e.Nominative, e.Genitive)
}

func (e *PatternError) Unwrap() error { return ErrUnrecognizedPattern }

// GenderError reports a gender marker that is not one of ὁ, ἡ, το, οἱ, αἱ, τα.
type GenderError struct {
	Token string
}

func (e *GenderError) Error() string {
	return fmt.Sprintf("'%s' is not recognised as one of ὁ, ἡ, το", e.Token)
}

func (e *GenderError) Unwrap() error { return ErrUnrecognizedGender }

// StemError reports a genitive with fewer characters than the stem rule removes.
type StemError struct {
	Genitive string
	Required int
}

func (e *StemError) Error() string {
	return fmt.Sprintf("genitive %q is shorter than the %d characters to remove", e.Genitive, e.Required)
}

func (e *StemError) Unwrap() error { return ErrStemTooShort }

// FieldCountError reports an inline input with the wrong number of comma-separated parts.
type FieldCountError struct {
	Got  int
	Want int
}

func (e *FieldCountError) Error() string {
	if e.Got > e.Want {
		return fmt.Sprintf("too many parts supplied (%d, want %d); did you mean to include an outfile?", e.Got, e.Want)
	}
	return fmt.Sprintf("too few parts supplied (%d, want %d): expected nominative, genitive, article", e.Got, e.Want)
}

func (e *FieldCountError) Unwrap() error {
	if e.Got > e.Want {
		return ErrTooManyFields
	}
	return ErrMissingField
}
