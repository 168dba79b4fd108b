package nlp

import "errors"

// Parse failures. Every error aborts the parse with no partial result;
// callers test the kind with errors.Is.
var (
	ErrAmbiguousZone       = errors.New("nlp: input contains more than one time zone, only one is supported")
	ErrAmbiguousCountry    = errors.New("nlp: input contains more than one country, only one is supported")
	ErrInvalidInput        = errors.New("nlp: invalid date/time expression")
	ErrMultipleExpressions = errors.New("nlp: input contains more than one date/time expression, only one is supported")
	ErrNoDateTimeFound     = errors.New("nlp: no date/time expression found in input")
)
