package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is a handle to an open PDF, scoped to a single request. Callers
// must Close it on every exit path.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Path returns the filesystem path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Close releases the underlying file descriptor.
func (d *Document) Close() error {
	return d.file.Close()
}

// Opener resolves filesystem paths to readable Document handles
type Opener struct {
	maxFileSize int64
}

// NewOpener creates a new document opener with the specified constraints
func NewOpener(maxFileSize int64) *Opener {
	return &Opener{
		maxFileSize: maxFileSize,
	}
}

// Open checks that the path exists and points at a usable PDF, then opens it.
// A missing file is reported as NotFoundError before the parser is ever
// involved; everything the parser rejects becomes a CodecError.
func (o *Opener) Open(path string) (*Document, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, &CodecError{Path: path, Err: fmt.Errorf("cannot access file: %w", err)}
	}

	if err := o.validateFileInfo(path, fileInfo); err != nil {
		return nil, &CodecError{Path: path, Err: err}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &CodecError{Path: path, Err: err}
	}

	return &Document{
		path:   path,
		file:   f,
		reader: reader,
	}, nil
}

// validateFileInfo performs basic file-shape checks before opening the parser
func (o *Opener) validateFileInfo(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}

	if o.maxFileSize > 0 && fileInfo.Size() > o.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), o.maxFileSize)
	}

	return nil
}
