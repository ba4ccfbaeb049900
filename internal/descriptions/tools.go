package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	PDFSplitPagesDescription = `Extract a contiguous page range from a PDF file and return its text, optionally saving the range as a new PDF.

**When to use:** Need the content of specific pages from a long document, or want to carve a section of a PDF out into its own file.

**Why it's useful:** Avoids feeding an entire document to a model when only a chapter, appendix, or single page matters. The optional save keeps the original page content (images, fonts, layout) intact, not just the extracted text.

**Examples:**
• Read one section: "Get pages 12-18 of handbook.pdf to summarize the vacation policy"
• Split out an appendix: "Extract pages 40-55 of thesis.pdf and save them as a separate PDF"
• Check a single page: "What does page 3 of invoice-2024-001.pdf say?" (defaults extract page 1 only, so pass start_page=3, end_page=3)

**Common workflows:**
1. Long Document Analysis: Split range → Read text → Summarize or answer questions
2. Document Carving: Split range with save_pdf=true → Share or archive the new file
3. Iterative Reading: Extract a few pages at a time to stay within context limits

**Best practices:** Pages are 1-indexed and the range is inclusive. Requesting a page past the end of the document is an error, never a silent truncation. Image-only pages return empty text.`

	PDFServerInfoDescription = `Get server information, available tools, and usage guidance.

**When to use:** First contact with the server, or when unsure which parameters a tool takes.

**Why it's useful:** Returns the tool catalog with parameter documentation plus server limits such as the maximum file size.

**Best practices:** Call once at the start of a session to learn the server's capabilities.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"pdf_split_pages": PDFSplitPagesDescription,
	"pdf_server_info": PDFServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
