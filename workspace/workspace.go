// Package workspace keeps the parsed state of every schedule file under a
// root directory, for the language server and the web UI.
package workspace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glasslab/gstr/catalog"
	"github.com/glasslab/gstr/glass"
	"github.com/glasslab/gstr/glass/token"
	"github.com/glasslab/gstr/schedule"
)

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	entries []*schedule.Entry
	cat     *catalog.Catalog
}

type FileInfo struct {
	Path     string
	Content  []byte
	Schedule *schedule.Schedule
	ParseErr error
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// SetCatalog attaches a product catalog used to flag unknown IGDB codes.
func (w *Workspace) SetCatalog(c *catalog.Catalog) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cat = c
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == schedule.Ext {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

func (w *Workspace) UpdateFile(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.updateFileLocked(path, content)
}

func (w *Workspace) updateFileLocked(path string, content []byte) error {
	sched, err := schedule.Parse(bytes.NewReader(content))
	if sched != nil {
		sched.Path = path
	}

	w.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Schedule: sched,
		ParseErr: err,
	}

	w.rebuildEntriesLocked()
	return nil
}

func (w *Workspace) rebuildEntriesLocked() {
	var all []*schedule.Entry
	for _, f := range w.files {
		if f.Schedule != nil {
			all = append(all, f.Schedule.Entries...)
		}
	}
	w.entries = all
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
	w.rebuildEntriesLocked()
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the scanned file paths in map order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	return paths
}

func (w *Workspace) AllEntries() []*schedule.Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entries
}

func (w *Workspace) FindMark(mark string) *schedule.Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, e := range w.entries {
		if e.Mark == mark {
			return e
		}
	}
	return nil
}

// EntryAt returns the schedule entry on the given 1-based line of a file.
func (w *Workspace) EntryAt(path string, line int) *schedule.Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f := w.files[path]
	if f == nil || f.Schedule == nil {
		return nil
	}
	for _, e := range f.Schedule.Entries {
		if e.Line == line {
			return e
		}
	}
	return nil
}

// Catalog returns the attached product catalog, or nil.
func (w *Workspace) Catalog() *catalog.Catalog {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cat
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// Diagnostic is one finding in a schedule file, addressed by 1-based line.
type Diagnostic struct {
	Line     int
	Length   int
	Message  string
	Severity Severity
}

// Diagnostics reports the findings for one file: parse failures as errors,
// off-catalog thicknesses as warnings, and IGDB codes missing from the
// product catalog as info when a catalog is attached. A file that cannot
// be read at all yields a single error on line 1.
func (w *Workspace) Diagnostics(path string) []Diagnostic {
	w.mu.RLock()
	defer w.mu.RUnlock()

	f := w.files[path]
	if f == nil {
		return nil
	}
	if f.Schedule == nil {
		if f.ParseErr == nil {
			return nil
		}
		first, _, _ := strings.Cut(string(f.Content), "\n")
		return []Diagnostic{{
			Line:     1,
			Length:   len(strings.TrimRight(first, "\r")),
			Message:  f.ParseErr.Error(),
			Severity: SeverityError,
		}}
	}
	lines := strings.Split(string(f.Content), "\n")

	var diags []Diagnostic
	for _, e := range f.Schedule.Entries {
		length := 0
		if e.Line-1 < len(lines) {
			length = len(strings.TrimRight(lines[e.Line-1], "\r"))
		}
		if e.Err != nil {
			diags = append(diags, Diagnostic{
				Line:     e.Line,
				Length:   length,
				Message:  e.Err.Error(),
				Severity: SeverityError,
			})
			continue
		}
		for _, msg := range lintBuildup(e.Buildup) {
			diags = append(diags, Diagnostic{
				Line:     e.Line,
				Length:   length,
				Message:  msg,
				Severity: SeverityWarning,
			})
		}
		if w.cat != nil && w.cat.Len() > 0 {
			for _, r := range w.cat.Resolve(e.Buildup) {
				if !r.Known {
					diags = append(diags, Diagnostic{
						Line:     e.Line,
						Length:   length,
						Message:  fmt.Sprintf("IGDB code %s is not in the product catalog", r.Code),
						Severity: SeverityInfo,
					})
				}
			}
		}
	}
	return diags
}

// lintBuildup flags thicknesses outside the stock sets. They parse fine,
// but are usually typos on a schedule.
func lintBuildup(b glass.Buildup) []string {
	var msgs []string
	glass.Walk(b, func(l glass.Layer) {
		switch v := l.(type) {
		case *glass.Mono:
			if t, ok := v.Thickness(); ok && !glass.StandardThickness(t, glass.PaneThicknesses) {
				msgs = append(msgs, fmt.Sprintf("pane thickness %s mm is not a stock size", token.FormatNumber(t)))
			}
		case *glass.Interlayer:
			if t, ok := v.Thickness(); ok && !glass.StandardThickness(t, glass.InterlayerThicknesses) {
				msgs = append(msgs, fmt.Sprintf("interlayer thickness %s mm is not a stock gauge", token.FormatNumber(t)))
			}
		case *glass.GasGap:
			if t, ok := v.Thickness(); ok && !glass.StandardThickness(t, glass.GasGapThicknesses) {
				msgs = append(msgs, fmt.Sprintf("gas gap %s mm is not a stock spacer", token.FormatNumber(t)))
			}
		}
	})
	return msgs
}
