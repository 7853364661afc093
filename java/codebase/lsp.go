package codebase

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/jspan/java"
	"github.com/dhamidi/jspan/java/extract"
	"github.com/dhamidi/jspan/java/source"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "jspan"

var lspLog = commonlog.GetLogger("jspan.lsp")

type LSPServer struct {
	codebase *Codebase
	watcher  *Watcher
	opts     Options
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string, opts Options) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentFoldingRange:   ls.textDocumentFoldingRange,
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

	// Documents being edited are rarely valid Java, keep whatever parses.
	opts := ls.opts
	opts.Extract.Lenient = true
	ls.codebase = New(rootDir, opts)

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

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(context.Background()); err != nil {
		lspLog.Errorf("scan %s: %s", ls.codebase.RootDir(), err)
	}

	watcher, err := NewWatcher(ls.codebase)
	if err != nil {
		lspLog.Errorf("%s", err)
		return nil
	}
	ls.watcher = watcher
	ls.watcher.Start()
	lspLog.Infof("watching %s", ls.codebase.RootDir())
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		err := ls.watcher.Stop()
		ls.watcher = nil
		return err
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
	ls.update(path, []byte(params.TextDocument.Text))
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
			ls.update(path, []byte(textChange.Text))
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
		ls.update(path, []byte(*params.Text))
	} else if err := ls.codebase.ScanFile(path); err != nil {
		lspLog.Debugf("rescan %s: %s", path, err)
	}
	return nil
}

func (ls *LSPServer) update(path string, content []byte) {
	if err := ls.codebase.UpdateFile(path, content); err != nil {
		lspLog.Debugf("update %s: %s", path, err)
	}
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}
	return DocumentSymbols(file), nil
}

func (ls *LSPServer) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}
	return FoldingRanges(file), nil
}

// DocumentSymbols returns one symbol per type declaration of file, with the
// methods declared directly in it as children.
func DocumentSymbols(file *FileInfo) []protocol.DocumentSymbol {
	src := source.New(file.Path, file.Content)

	symbols := make([]protocol.DocumentSymbol, 0, len(file.Classes))
	owners := make([]*java.ClassModel, 0, len(file.Classes))
	for _, c := range file.Classes {
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           c.Name,
			Kind:           classSymbolKind(c.Kind),
			Range:          lineRange(src, c.StartLine, c.EndLine),
			SelectionRange: lineRange(src, c.StartLine, c.StartLine),
		})
		owners = append(owners, c)
	}

	var orphans []protocol.DocumentSymbol
	for _, span := range file.Spans {
		sym := methodSymbol(src, span)
		if i := innermostOwner(owners, span); i >= 0 {
			symbols[i].Children = append(symbols[i].Children, sym)
		} else {
			orphans = append(orphans, sym)
		}
	}
	return append(symbols, orphans...)
}

func methodSymbol(src *source.File, span extract.Span) protocol.DocumentSymbol {
	kind := protocol.SymbolKindMethod
	if span.Method.Kind == extract.MethodKindConstructor {
		kind = protocol.SymbolKindConstructor
	}
	return protocol.DocumentSymbol{
		Name:           span.Method.Name,
		Kind:           kind,
		Range:          lineRange(src, span.StartLine, span.EndLine),
		SelectionRange: lineRange(src, span.StartLine, span.StartLine),
	}
}

// innermostOwner returns the index of the smallest class named like the
// span's class whose lines contain the span start, or -1.
func innermostOwner(classes []*java.ClassModel, span extract.Span) int {
	best := -1
	for i, c := range classes {
		if c.Name != span.Method.Class || span.StartLine < c.StartLine || span.StartLine > c.EndLine {
			continue
		}
		if best < 0 || c.EndLine-c.StartLine < classes[best].EndLine-classes[best].StartLine {
			best = i
		}
	}
	return best
}

func classSymbolKind(kind java.ClassKind) protocol.SymbolKind {
	switch kind {
	case java.ClassKindInterface, java.ClassKindAnnotation:
		return protocol.SymbolKindInterface
	case java.ClassKindEnum:
		return protocol.SymbolKindEnum
	case java.ClassKindRecord:
		return protocol.SymbolKindStruct
	default:
		return protocol.SymbolKindClass
	}
}

// FoldingRanges returns a range for every method spanning several lines.
func FoldingRanges(file *FileInfo) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	for _, span := range file.Spans {
		if span.EndLine <= span.StartLine {
			continue
		}
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: protocol.UInteger(span.StartLine - 1),
			EndLine:   protocol.UInteger(span.EndLine - 1),
		})
	}
	return ranges
}

// lineRange covers the 1-based lines start..end, up to the end of the last
// line. Characters are counted in UTF-16 code units.
func lineRange(src *source.File, start, end int) protocol.Range {
	last := strings.TrimSuffix(src.Line(end), "\r")
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(start - 1)},
		End: protocol.Position{
			Line:      protocol.UInteger(end - 1),
			Character: protocol.UInteger(len(utf16.Encode([]rune(last)))),
		},
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

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
