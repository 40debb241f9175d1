// content.go implements entry size validation.
//
// Separated from entry.go because size is the only non-structural check.
// The limit guards the document against an editor buffer that accidentally
// captured a huge paste or a binary file.

package validate

import "fmt"

// Content validates entry size.
//
// Validation rules:
//   - Max length enforced if maxLen > 0 (0 means no limit)
func Content(content string, maxLen int64) error {
	if maxLen > 0 && int64(len(content)) > maxLen {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrContentTooLarge, len(content), maxLen)
	}
	return nil
}
