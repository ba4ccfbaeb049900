package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Writer serializes a page range of an existing PDF to a new file
type Writer struct{}

// NewWriter creates a new sub-document writer
func NewWriter() *Writer {
	return &Writer{}
}

// DerivedPath builds the output path for a saved page range: the input's
// directory and stem with a "_pgs_{start}-{end}" infix before the original
// suffix. An existing file at that path is overwritten silently.
func (w *Writer) DerivedPath(inputPath string, startPage, endPage int) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	name := fmt.Sprintf("%s_pgs_%d-%d%s", stem, startPage, endPage, ext)
	return filepath.Join(filepath.Dir(inputPath), name)
}

// WriteRange copies the pages [startPage, endPage] of the input document into
// a new PDF at the derived path and returns that path. The copy is
// structural: page content streams, resources and annotations survive intact,
// not just the extractable text.
func (w *Writer) WriteRange(inputPath string, startPage, endPage int) (string, error) {
	outputPath := w.DerivedPath(inputPath, startPage, endPage)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	selection := []string{fmt.Sprintf("%d-%d", startPage, endPage)}
	if err := api.TrimFile(inputPath, outputPath, selection, conf); err != nil {
		return "", &WriteError{Path: outputPath, Err: err}
	}

	return outputPath, nil
}
