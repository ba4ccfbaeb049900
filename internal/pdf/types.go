package pdf

// Request Types

// PDFSplitPagesRequest represents a request to extract a page range from a PDF file
type PDFSplitPagesRequest struct {
	FilePath  string `json:"file_path"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
	SavePDF   bool   `json:"save_pdf"`
}

// PDFServerInfoRequest represents a request to get server information and capabilities
type PDFServerInfoRequest struct {
	// No parameters needed for server info
}

// Response Types

// PageText represents the text extracted from a single page
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// PDFSplitPagesResult represents the result of a page range extraction
type PDFSplitPagesResult struct {
	FilePath   string     `json:"file_path"`
	Pages      []PageText `json:"pages"`
	TotalPages int        `json:"total_pages"`
	OutputPath string     `json:"output_path,omitempty"` // set when save_pdf was requested
}

// PDFServerInfoResult represents server information and usage guidance
type PDFServerInfoResult struct {
	ServerName       string     `json:"server_name"`
	Version          string     `json:"version"`
	DefaultDirectory string     `json:"default_directory,omitempty"`
	MaxFileSize      int64      `json:"max_file_size"`
	AvailableTools   []ToolInfo `json:"available_tools"`
	UsageGuidance    string     `json:"usage_guidance"`
}

// ToolInfo represents information about an available tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}
