package pdf

// pageRange is a resolved, 0-indexed inclusive span of pages.
type pageRange struct {
	first int
	last  int
}

// resolveRange maps a 1-indexed inclusive page range onto the parser's page
// space. Out-of-range is always an error, never silently clamped. startPage
// and endPage are assumed validated (startPage >= 1, endPage >= startPage).
func resolveRange(startPage, endPage, pageCount int) (pageRange, error) {
	if endPage > pageCount {
		return pageRange{}, &RangeError{Requested: endPage, Available: pageCount}
	}
	return pageRange{first: startPage - 1, last: endPage - 1}, nil
}

// Splitter walks a resolved page range and aggregates per-page text
type Splitter struct{}

// NewSplitter creates a new page range splitter
func NewSplitter() *Splitter {
	return &Splitter{}
}

// ExtractPages reads the text of every page in [startPage, endPage] in
// ascending order. Text extraction is best-effort per page: an image-only
// page yields an empty string and is not an error. A page the parser cannot
// process at all aborts the whole extraction; no partial result is returned.
func (s *Splitter) ExtractPages(doc *Document, startPage, endPage int) ([]PageText, error) {
	r, err := resolveRange(startPage, endPage, doc.PageCount())
	if err != nil {
		return nil, err
	}

	pages := make([]PageText, 0, r.last-r.first+1)
	for i := r.first; i <= r.last; i++ {
		pageNum := i + 1
		page := doc.reader.Page(pageNum)
		if page.V.IsNull() {
			// Pages without a content dictionary extract as empty text
			pages = append(pages, PageText{PageNumber: pageNum})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &CodecError{Path: doc.path, Page: pageNum, Err: err}
		}

		pages = append(pages, PageText{PageNumber: pageNum, Text: text})
	}

	return pages, nil
}
