package pdf

import (
	"fmt"

	"github.com/dvaldman/mcp-pdf-split/internal/descriptions"
)

// PDFServerInfo returns server information and usage guidance
func (s *Service) PDFServerInfo(_ PDFServerInfoRequest, serverName, version string) (*PDFServerInfoResult, error) {
	availableTools := []ToolInfo{
		{
			Name:        "pdf_split_pages",
			Description: descriptions.GetToolDescription("pdf_split_pages"),
			Usage: "Use this tool to extract a contiguous page range from a PDF and get its text back. " +
				"Set save_pdf to true to also write the selected pages as a new PDF next to the input file.",
			Parameters: "file_path (required): Full absolute path to the PDF file, " +
				"start_page (optional, default 1): First page of the range (1-indexed), " +
				"end_page (optional, default 1): Last page of the range (1-indexed, inclusive), " +
				"save_pdf (optional, default false): Whether to save the extracted pages as a new PDF",
		},
		{
			Name:        "pdf_server_info",
			Description: descriptions.GetToolDescription("pdf_server_info"),
			Usage:       "Use this tool to discover the available tools and their parameters.",
			Parameters:  "none",
		},
	}

	usageGuidance := `PDF Split MCP Server Usage Guide:

1. EXTRACT TEXT FROM A PAGE RANGE:
   - Call 'pdf_split_pages' with file_path, start_page and end_page
   - Pages are 1-indexed and the range is inclusive; the default range is page 1 only
   - The response contains one "--- Page N ---" record per page

2. SAVE THE RANGE AS A NEW PDF:
   - Set save_pdf to true
   - The new file is written next to the input as <name>_pgs_<start>-<end>.pdf
   - An existing file at that path is overwritten

IMPORTANT NOTES:
- Always use absolute file paths
- The server can handle files up to ` + fmt.Sprintf("%d", s.maxFileSize/(1024*1024)) + `MB
- Requesting a page beyond the end of the document is an error, not a truncation
- Image-only pages extract as empty text; no OCR is performed
- Encrypted or password-protected PDFs are not supported`

	result := &PDFServerInfoResult{
		ServerName:     serverName,
		Version:        version,
		MaxFileSize:    s.maxFileSize,
		AvailableTools: availableTools,
		UsageGuidance:  usageGuidance,
	}

	if s.pathValidator.IsRestricted() {
		result.DefaultDirectory = s.pathValidator.GetRestrictedDirectory()
	}

	return result, nil
}
