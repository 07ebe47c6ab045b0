// Package schedule reads glazing schedules: plain-text files listing one
// buildup per line, each optionally preceded by a position mark.
//
//	// north elevation
//	W-101 6A_12AIR_6A&0.76PVB&6A-W3000H4000SUPPORT4
//	W-102 #20(6A)_12AIR_6A
//
// Blank lines and lines starting with "//" are skipped. A "#" does not open
// a comment, since it opens an identifier wrapper in gstr notation.
package schedule

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glasslab/gstr/glass"
)

// Ext is the file extension of glazing schedule files.
const Ext = ".gstr"

// Entry is one schedule line. Lines that fail to parse are kept with Err
// set, so a single bad buildup does not hide the rest of the file.
type Entry struct {
	Mark    string // position mark, "" when the line has none
	Raw     string // the gstr text as written
	Line    int    // 1-based line number in the file
	Buildup glass.Buildup
	Err     error
}

// Schedule is a parsed schedule file.
type Schedule struct {
	Path    string
	Entries []*Entry
}

// Parse reads a schedule. A line with whitespace holds a mark followed by
// the gstr text; a line without is gstr text alone. The returned error
// covers reading only, never a bad buildup.
func Parse(r io.Reader) (*Schedule, error) {
	sched := &Schedule{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		entry := &Entry{Line: line, Raw: text}
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			entry.Mark = text[:i]
			entry.Raw = strings.TrimSpace(text[i+1:])
		}
		entry.Buildup, entry.Err = glass.Parse(entry.Raw)
		sched.Entries = append(sched.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return sched, nil
}

// ParseFile reads the schedule at path.
func ParseFile(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule: %w", err)
	}
	defer f.Close()

	sched, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sched.Path = path
	return sched, nil
}

// Buildups returns the buildups of every entry that parsed.
func (s *Schedule) Buildups() []glass.Buildup {
	var out []glass.Buildup
	for _, e := range s.Entries {
		if e.Err == nil {
			out = append(out, e.Buildup)
		}
	}
	return out
}

// Errs returns the parse failures, annotated with their line numbers.
func (s *Schedule) Errs() []error {
	var out []error
	for _, e := range s.Entries {
		if e.Err != nil {
			out = append(out, fmt.Errorf("line %d: %w", e.Line, e.Err))
		}
	}
	return out
}

// Format rewrites schedule text with every buildup in canonical notation.
// Comments, blank lines, and position marks stay; surrounding whitespace
// goes. The first line that does not parse fails the whole format.
func Format(src []byte) ([]byte, error) {
	var out strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(src))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			out.WriteString(text)
			out.WriteString("\n")
			continue
		}
		mark := ""
		raw := text
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			mark = text[:i]
			raw = strings.TrimSpace(text[i+1:])
		}
		b, err := glass.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if mark != "" {
			out.WriteString(mark)
			out.WriteString(" ")
		}
		out.WriteString(b.GStr())
		out.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return []byte(out.String()), nil
}

// Entry returns the entry with the given position mark, or nil.
func (s *Schedule) Entry(mark string) *Entry {
	for _, e := range s.Entries {
		if e.Mark == mark {
			return e
		}
	}
	return nil
}

// Discover returns all schedule files under root, recursively.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, Ext) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan schedules in %s: %w", root, err)
	}
	return files, nil
}
