// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category; detail (line numbers, counts) is
// added by wrapping with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrTitleNotAllowed  = errors.New("cannot have a title (level-1 heading) in new content")
	ErrTooManySubtitles = errors.New("cannot have more than one subtitle (level-2 heading) in new content")
	ErrSubtitleInCode   = errors.New("cannot have a subtitle (level-2 heading) line inside a code block in new content")
	ErrContentTooLarge  = errors.New("content too large")
)
