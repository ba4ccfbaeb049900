package pdf

import "strings"

// ValidateSplitRequest checks caller-supplied arguments before any file I/O
// happens. Rules are applied in order and the first violation wins; a nil
// return means the request is well formed. The function is pure: it touches
// neither the filesystem nor the request.
func ValidateSplitRequest(req PDFSplitPagesRequest) error {
	if strings.TrimSpace(req.FilePath) == "" {
		return &ValidationError{Reason: "file_path cannot be empty or whitespace only"}
	}
	if req.StartPage < 1 {
		return &ValidationError{Reason: "start_page must be at least 1"}
	}
	if req.EndPage < 1 {
		return &ValidationError{Reason: "end_page must be at least 1"}
	}
	if req.EndPage < req.StartPage {
		return &ValidationError{Reason: "end_page must be greater than or equal to start_page"}
	}
	return nil
}
