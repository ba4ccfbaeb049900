package pdf

import "fmt"

// ValidationError indicates malformed caller input, detected before any file I/O.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input parameters - %s", e.Reason)
}

// NotFoundError indicates the requested file path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File '%s' does not exist", e.Path)
}

// CodecError indicates the underlying document is unreadable or a specific
// page failed to yield content. Page is 1-indexed and zero when the failure
// is not tied to a single page.
type CodecError struct {
	Path string
	Page int
	Err  error
}

func (e *CodecError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("failed to read page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("failed to read PDF: %v", e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// RangeError indicates the requested page range exceeds the document length.
type RangeError struct {
	Requested int
	Available int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Requested page %d exceeds the document length (%d pages)", e.Requested, e.Available)
}

// WriteError indicates the sub-document could not be serialized.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write new PDF '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
