package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// writeTestPDF writes a minimal multi-page PDF to path, one text line per
// page. The file carries a correct xref table so both the text parser and the
// structural writer accept it. Page texts must not contain characters that
// need escaping inside a PDF string literal.
func writeTestPDF(t *testing.T, path string, pageTexts []string) {
	t.Helper()

	var buf bytes.Buffer
	offsets := make(map[int]int)
	n := len(pageTexts)

	// Object layout: 1 catalog, 2 page tree, then a page/content pair per
	// page, then the shared font object
	fontObj := 3 + 2*n

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))

	for i, text := range pageTexts {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1

		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontObj, contentNum))

		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		offsets[contentNum] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream)
	}

	writeObj(fontObj, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xrefOffset := buf.Len()
	total := fontObj + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", total)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < total; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefOffset)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test PDF %s: %v", path, err)
	}
}

// pageLabels builds n generated page texts "TestPage1", "TestPage2", ... used
// by tests that only care about page count, not content.
func pageLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("TestPage%d", i+1)
	}
	return labels
}
