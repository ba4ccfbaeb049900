package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dvaldman/mcp-pdf-split/internal/config"
	"github.com/dvaldman/mcp-pdf-split/internal/pdf"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register PDF split pages tool
	pdfSplitPagesTool := mcp.NewTool(
		"pdf_split_pages",
		mcp.WithDescription("Open and split a PDF file by page range (start_page, end_page), returning the text of the selected pages"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file to split"),
		),
		mcp.WithNumber("start_page",
			mcp.DefaultNumber(1),
			mcp.Description("The start page number (1-indexed)"),
		),
		mcp.WithNumber("end_page",
			mcp.DefaultNumber(1),
			mcp.Description("The end page number (1-indexed, inclusive)"),
		),
		mcp.WithBoolean("save_pdf",
			mcp.DefaultBool(false),
			mcp.Description("Whether to save the extracted pages as a new PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfSplitPagesTool, s.handlePDFSplitPages)

	// Register PDF server info tool
	pdfServerInfoTool := mcp.NewTool(
		"pdf_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(pdfServerInfoTool, s.handlePDFServerInfo)
}

// Handler functions
func (s *Server) handlePDFSplitPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid input parameters - %v", err)), nil
	}

	args := request.GetArguments()
	req := pdf.PDFSplitPagesRequest{
		FilePath:  filePath,
		StartPage: intArgument(args, "start_page", 1),
		EndPage:   intArgument(args, "end_page", 1),
		SavePDF:   boolArgument(args, "save_pdf", false),
	}

	result, err := s.pdfService.PDFSplitPages(req)
	if err != nil {
		return mcp.NewToolResultError(formatSplitError(req.FilePath, err)), nil
	}

	return mcp.NewToolResultText(s.formatPDFSplitPagesResult(result)), nil
}

func (s *Server) handlePDFServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := pdf.PDFServerInfoRequest{}
	result, err := s.pdfService.PDFServerInfo(req, s.config.ServerName, s.config.Version)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	return mcp.NewToolResultText(s.formatPDFServerInfoResult(result)), nil
}

// Argument helpers

// intArgument reads an integer argument, tolerating the float64 values JSON
// decoding produces
func intArgument(args map[string]any, key string, defaultValue int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultValue
	}
}

// boolArgument reads a boolean argument with a default
func boolArgument(args map[string]any, key string, defaultValue bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return defaultValue
}

// formatSplitError converts a pipeline failure into the single descriptive
// error string the tool returns. Every failure string starts with "Error";
// no pipeline error ever crosses the MCP boundary as a fault.
func formatSplitError(filePath string, err error) string {
	var validationErr *pdf.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Error: Invalid input parameters - %s", validationErr.Reason)
	}

	var notFoundErr *pdf.NotFoundError
	if errors.As(err, &notFoundErr) {
		return fmt.Sprintf("Error: File '%s' does not exist", notFoundErr.Path)
	}

	return fmt.Sprintf("Error reading PDF '%s': %v", filePath, err)
}

// Formatting methods
func (s *Server) formatPDFSplitPagesResult(result *pdf.PDFSplitPagesResult) string {
	records := make([]string, 0, len(result.Pages))
	for _, page := range result.Pages {
		records = append(records, fmt.Sprintf("--- Page %d ---\n%s", page.PageNumber, page.Text))
	}

	text := "Content from new PDF:\n\n" + strings.Join(records, "\n")
	if result.OutputPath != "" {
		text += fmt.Sprintf("\n\nCreated new PDF: %s", result.OutputPath)
	}

	return text
}

func (s *Server) formatPDFServerInfoResult(result *pdf.PDFServerInfoResult) string {
	text := fmt.Sprintf("%s v%s - Server Information\n", result.ServerName, result.Version)
	if result.DefaultDirectory != "" {
		text += fmt.Sprintf("Restricted Directory: %s\n", result.DefaultDirectory)
	}
	text += fmt.Sprintf("Max File Size: %d MB\n", result.MaxFileSize/(1024*1024))

	text += "\nAvailable Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF split MCP server in stdio mode")
		if s.config.PDFDirectory != "" {
			log.Printf("Restricted to directory: %s", s.config.PDFDirectory)
		}
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
