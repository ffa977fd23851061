// Package lsp serves parse diagnostics over the language server protocol.
// Each open document is parsed on open and on every change; structured
// parse errors publish as diagnostics at the offending offset.
package lsp

import (
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/XimeraProject/math-convert/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "math-convert"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	text    *parser.Parser
	latex   *parser.Parser
}

func NewServer(version string, opts ...parser.Option) *Server {
	ls := &Server{
		version: version,
		text:    parser.NewTextParser(opts...),
		latex:   parser.NewLaTeXParser(opts...),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentDidClose:  ls.textDocumentDidClose,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear diagnostics for closed documents.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// parserFor picks the notation by file extension: .tex and .latex documents
// parse as LaTeX, everything else as text.
func (ls *Server) parserFor(uri string) *parser.Parser {
	switch strings.ToLower(filepath.Ext(uri)) {
	case ".tex", ".latex":
		return ls.latex
	}
	return ls.text
}

// publish parses every non-blank line of the document and reports one
// diagnostic per failing line.
func (ls *Server) publish(ctx *glsp.Context, uri string, content string) {
	p := ls.parserFor(uri)
	diagnostics := []protocol.Diagnostic{}

	for lineNo, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		_, err := p.Convert(line)
		if err == nil {
			continue
		}
		diagnostics = append(diagnostics, diagnosticFor(uint32(lineNo), line, err))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFor(line uint32, text string, err error) protocol.Diagnostic {
	start := uint32(0)
	if perr, ok := err.(parser.Error); ok {
		start = utf16Column(text, perr.Offset())
	}
	end := start + 1
	if end > utf16Column(text, len(text)) {
		end = utf16Column(text, len(text))
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

// utf16Column converts a byte offset in text to a UTF-16 code-unit column,
// the unit the protocol measures positions in.
func utf16Column(text string, offset int) uint32 {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return uint32(len(utf16.Encode([]rune(text[:offset]))))
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
