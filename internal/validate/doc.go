// Package validate provides input validation for new log entries.
//
// Validation happens before an entry touches the document. It is structural
// only: an entry may not introduce a second document title and may open at
// most one day section. Whether a day heading matches today's date is not
// checked here; the merge engine decides placement.
//
// # Validation Functions
//
// Entry checks the heading structure of an entry.
// Content checks the entry size against the configured limit.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe error checking:
//
//	if errors.Is(err, validate.ErrTitleNotAllowed) {
//	    // entry contains a level-1 heading
//	}
package validate
