package workspace

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/glasslab/gstr/catalog"
	"github.com/glasslab/gstr/format"
)

const lsName = "gstr"

type LSPServer struct {
	workspace *Workspace
	watcher   *FileWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentHover:      ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	triggerChars := []string{"_", "&", "-", "#"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if cat, err := catalog.LoadDefault(); err == nil {
		ls.workspace.SetCatalog(cat)
	}
	ls.workspace.ScanAll()
	for _, path := range ls.workspace.Paths() {
		ls.publishDiagnostics(ctx, path)
	}
	ls.watcher = NewFileWatcher(ls.workspace)
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, path)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, path)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.workspace.ScanFile(path)
	}
	ls.publishDiagnostics(ctx, path)
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, path string) {
	diags := ls.workspace.Diagnostics(path)

	items := make([]protocol.Diagnostic, 0, len(diags))
	source := lsName
	for _, d := range diags {
		line := protocol.UInteger(d.Line - 1)
		items = append(items, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line, Character: protocol.UInteger(d.Length)},
			},
			Severity: severityPtr(d.Severity),
			Source:   &source,
			Message:  d.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: items,
	})
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	col := int(params.Position.Character)

	completions := ls.workspace.CompletionsAtPoint(path, line, col)
	if len(completions) == 0 {
		return nil, nil
	}

	var items []protocol.CompletionItem
	for _, c := range completions {
		kind := toProtocolKind(c.Kind)
		detail := c.Detail
		insertText := c.InsertText
		insertFormat := protocol.InsertTextFormatPlainText

		items = append(items, protocol.CompletionItem{
			Label:            c.Label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insertText,
			InsertTextFormat: &insertFormat,
		})
	}

	return items, nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	entry := ls.workspace.EntryAt(path, int(params.Position.Line)+1)
	if entry == nil || entry.Err != nil {
		return nil, nil
	}

	var report bytes.Buffer
	if err := format.NewTextEncoder(&report).Encode(entry.Buildup); err != nil {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.Write(report.Bytes())
	sb.WriteString("```")
	if cat := ls.workspace.Catalog(); cat != nil {
		for _, r := range cat.Resolve(entry.Buildup) {
			if r.Known {
				sb.WriteString("\n\nIGDB ")
				sb.WriteString(r.Code)
				sb.WriteString(": ")
				sb.WriteString(r.Product.Name)
				if r.Product.Manufacturer != "" {
					sb.WriteString(" (")
					sb.WriteString(r.Product.Manufacturer)
					sb.WriteString(")")
				}
			}
		}
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
	}, nil
}

func toProtocolKind(kind CompletionKind) protocol.CompletionItemKind {
	switch kind {
	case CompletionKindPane, CompletionKindInterlayer, CompletionKindGasGap:
		return protocol.CompletionItemKindValue
	case CompletionKindMarker:
		return protocol.CompletionItemKindKeyword
	case CompletionKindCode:
		return protocol.CompletionItemKindReference
	default:
		return protocol.CompletionItemKindText
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return protocol.DocumentUri("file://" + abs)
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func severityPtr(s Severity) *protocol.DiagnosticSeverity {
	v := protocol.DiagnosticSeverityError
	switch s {
	case SeverityWarning:
		v = protocol.DiagnosticSeverityWarning
	case SeverityInfo:
		v = protocol.DiagnosticSeverityInformation
	}
	return &v
}
