// Package codebase keeps the parsed state of every Java file below a root
// directory and serves it to the language server.
package codebase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dhamidi/jspan/java"
	"github.com/dhamidi/jspan/java/extract"
	"github.com/dhamidi/jspan/java/parser"
	"github.com/dhamidi/jspan/java/source"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("jspan.codebase")

type Options struct {
	Includes  []string
	Excludes  []string
	Gitignore bool
	Workers   int
	Extract   extract.Options

	// Progress is called after every scanned file, possibly from several
	// goroutines at once.
	Progress func(done, total int, path string)
}

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	opts    Options
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path     string
	Content  []byte
	Spans    []extract.Span
	Classes  []*java.ClassModel
	Calls    []java.Call
	ParseErr error
}

// New creates an empty codebase. The root is made absolute so that paths
// from scans, watch events and editor URIs agree.
func New(rootDir string, opts Options) *Codebase {
	if abs, err := filepath.Abs(rootDir); err == nil {
		rootDir = abs
	}
	return &Codebase{
		rootDir: rootDir,
		opts:    opts,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Walker() *Walker {
	return NewWalker(c.rootDir, c.opts)
}

// ScanAll parses every selected file below the root in parallel. A file
// that fails to parse is kept with its error and does not stop the scan.
func (c *Codebase) ScanAll(ctx context.Context) error {
	paths, err := c.Walker().Walk()
	if err != nil {
		return fmt.Errorf("walk %s: %w", c.rootDir, err)
	}
	log.Infof("scanning %d files below %s", len(paths), c.rootDir)

	workers := c.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*FileInfo, len(paths))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.readAndAnalyze(path)
			if c.opts.Progress != nil {
				c.opts.Progress(int(done.Add(1)), len(paths), path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, info := range results {
		if info.ParseErr != nil {
			log.Warningf("skipping %s: %s", info.Path, info.ParseErr)
		}
		c.files[info.Path] = info
	}
	return nil
}

func (c *Codebase) readAndAnalyze(path string) *FileInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return &FileInfo{Path: path, ParseErr: err}
	}
	return analyze(path, content, c.opts.Extract)
}

func analyze(path string, content []byte, opts extract.Options) *FileInfo {
	info := &FileInfo{Path: path, Content: content}

	popts := []parser.Option{parser.WithFile(path)}
	if opts.Lenient {
		popts = append(popts, parser.Lenient())
	}
	tree, err := parser.Parse(content, popts...)
	if err != nil {
		info.ParseErr = err
		return info
	}
	defer tree.Close()

	info.Spans, info.ParseErr = extract.ExtractAll(source.New(path, content), tree, opts)
	info.Classes = java.ClassModelsFromTree(tree)
	info.Calls = java.CallsFromTree(tree)
	return info
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile replaces the state of path with content. The returned error
// is the parse error of the new content, which is also kept on the file.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	info := analyze(path, content, c.opts.Extract)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return info.ParseErr
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

// RemoveDir drops every file below dir and returns how many were known.
func (c *Codebase) RemoveDir(dir string) int {
	prefix := filepath.Clean(dir) + string(filepath.Separator)
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for path := range c.files {
		if strings.HasPrefix(path, prefix) {
			delete(c.files, path)
			removed++
		}
	}
	return removed
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns all known files sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

func (c *Codebase) AllClasses() []*java.ClassModel {
	var all []*java.ClassModel
	for _, f := range c.Files() {
		all = append(all, f.Classes...)
	}
	return all
}

func (c *Codebase) AllCalls() []java.Call {
	var all []java.Call
	for _, f := range c.Files() {
		all = append(all, f.Calls...)
	}
	return all
}

// Errors returns the parse errors of all files, sorted by path.
func (c *Codebase) Errors() []error {
	var errs []error
	for _, f := range c.Files() {
		if f.ParseErr != nil {
			errs = append(errs, f.ParseErr)
		}
	}
	return errs
}
