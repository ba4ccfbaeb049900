package pdf

import (
	"fmt"

	"github.com/dvaldman/mcp-pdf-split/internal/pdf/security"
)

// Service runs the page range extraction pipeline: validate, open, resolve,
// aggregate, optionally write. One call is one pipeline run; nothing is
// cached or shared between calls except the filesystem itself.
type Service struct {
	maxFileSize   int64
	opener        *Opener
	splitter      *Splitter
	writer        *Writer
	pathValidator *security.PathValidator
}

// NewService creates a new PDF split service. restrictedDirectory limits file
// access when non-empty; an empty string allows any path.
func NewService(maxFileSize int64, restrictedDirectory string) (*Service, error) {
	pathValidator, err := security.NewPathValidator(restrictedDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		opener:        NewOpener(maxFileSize),
		splitter:      NewSplitter(),
		writer:        NewWriter(),
		pathValidator: pathValidator,
	}, nil
}

// PDFSplitPages extracts the requested page range and returns the per-page
// text, optionally saving the range as a new PDF next to the input. The
// operation is all-or-nothing: a failure at any stage, including the optional
// save, discards everything already computed.
func (s *Service) PDFSplitPages(req PDFSplitPagesRequest) (*PDFSplitPagesResult, error) {
	if err := ValidateSplitRequest(req); err != nil {
		return nil, err
	}

	if err := s.pathValidator.ValidatePath(req.FilePath); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	doc, err := s.opener.Open(req.FilePath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages, err := s.splitter.ExtractPages(doc, req.StartPage, req.EndPage)
	if err != nil {
		return nil, err
	}

	result := &PDFSplitPagesResult{
		FilePath:   req.FilePath,
		Pages:      pages,
		TotalPages: doc.PageCount(),
	}

	if req.SavePDF {
		outputPath, err := s.writer.WriteRange(req.FilePath, req.StartPage, req.EndPage)
		if err != nil {
			return nil, err
		}
		result.OutputPath = outputPath
	}

	return result, nil
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// ValidateConfiguration validates the service configuration
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}

	if s.maxFileSize > 1024*1024*1024 { // 1GB limit
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}

	return nil
}
