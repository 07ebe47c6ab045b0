package workspace

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glasslab/gstr/catalog"
)

func TestUpdateFileAndLookup(t *testing.T) {
	content := `// north elevation
W-101 6A_12AIR_6A
W-102 6A&0.76PVB&6A-W1000H2000
`

	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/north.gstr"
	w.UpdateFile(path, []byte(content))

	f := w.GetFile(path)
	if f == nil {
		t.Fatal("GetFile returned nil")
	}
	if f.Schedule == nil {
		t.Fatal("Schedule is nil")
	}
	if len(f.Schedule.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(f.Schedule.Entries))
	}

	if got := len(w.AllEntries()); got != 2 {
		t.Errorf("AllEntries = %d, want 2", got)
	}

	e := w.FindMark("W-101")
	if e == nil {
		t.Fatal("FindMark(W-101) returned nil")
	}
	if e.Line != 2 {
		t.Errorf("Line = %d, want 2", e.Line)
	}
	if e.Err != nil {
		t.Errorf("Err = %v, want nil", e.Err)
	}
	if w.FindMark("W-999") != nil {
		t.Error("FindMark(W-999) should return nil")
	}

	at := w.EntryAt(path, 3)
	if at == nil {
		t.Fatal("EntryAt(3) returned nil")
	}
	if at.Mark != "W-102" {
		t.Errorf("Mark = %q, want %q", at.Mark, "W-102")
	}
	if w.EntryAt(path, 1) != nil {
		t.Error("EntryAt(1) should return nil for a comment line")
	}
	if w.EntryAt("/tmp/ws_test/missing.gstr", 2) != nil {
		t.Error("EntryAt on unknown path should return nil")
	}
}

func TestUpdateFileReplacesEntries(t *testing.T) {
	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/plan.gstr"

	w.UpdateFile(path, []byte("W-101 6A\nW-102 8T\n"))
	if got := len(w.AllEntries()); got != 2 {
		t.Fatalf("AllEntries = %d, want 2", got)
	}

	w.UpdateFile(path, []byte("W-103 10HS\n"))
	if got := len(w.AllEntries()); got != 1 {
		t.Errorf("AllEntries after update = %d, want 1", got)
	}
	if w.FindMark("W-101") != nil {
		t.Error("W-101 should be gone after the file was replaced")
	}
	if w.FindMark("W-103") == nil {
		t.Error("W-103 should be present after the update")
	}
}

func TestRemoveFile(t *testing.T) {
	w := New("/tmp/ws_test")
	w.UpdateFile("/tmp/ws_test/a.gstr", []byte("W-1 6A\n"))
	w.UpdateFile("/tmp/ws_test/b.gstr", []byte("W-2 8T\n"))

	w.RemoveFile("/tmp/ws_test/a.gstr")

	if w.GetFile("/tmp/ws_test/a.gstr") != nil {
		t.Error("GetFile should return nil after RemoveFile")
	}
	if w.FindMark("W-1") != nil {
		t.Error("W-1 should be gone after RemoveFile")
	}
	if w.FindMark("W-2") == nil {
		t.Error("W-2 should survive removal of the other file")
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("north.gstr", "W-101 6A_12AIR_6A\n")
	write("towers/east.gstr", "W-201 8T\nW-202 10HS\n")
	write("notes.txt", "not a schedule\n")

	w := New(dir)
	if err := w.ScanAll(); err != nil {
		t.Fatalf("ScanAll: %v", err)
	}

	if got := len(w.Paths()); got != 2 {
		t.Errorf("Paths = %d, want 2", got)
	}
	if got := len(w.AllEntries()); got != 3 {
		t.Errorf("AllEntries = %d, want 3", got)
	}
	if w.FindMark("W-202") == nil {
		t.Error("FindMark(W-202) returned nil after ScanAll")
	}
}

func TestDiagnosticsParseError(t *testing.T) {
	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/bad.gstr"
	w.UpdateFile(path, []byte("W-200 6Q\n"))

	diags := w.Diagnostics(path)
	if len(diags) != 1 {
		t.Fatalf("Diagnostics = %d, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want SeverityError", d.Severity)
	}
	if d.Line != 1 {
		t.Errorf("Line = %d, want 1", d.Line)
	}
	if d.Length != len("W-200 6Q") {
		t.Errorf("Length = %d, want %d", d.Length, len("W-200 6Q"))
	}
	if !strings.Contains(d.Message, "descriptor") {
		t.Errorf("Message = %q, want a descriptor error", d.Message)
	}
}

// A line past the scanner's token limit fails the whole read, leaving the
// file with no schedule at all. That state must surface as an error
// diagnostic instead of looking clean.
func TestDiagnosticsUnreadableFile(t *testing.T) {
	content := "W-1 " + strings.Repeat("6A&0.76PVB&", 8000) + "6A"

	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/big.gstr"
	w.UpdateFile(path, []byte(content))

	f := w.GetFile(path)
	if f == nil {
		t.Fatal("GetFile returned nil")
	}
	if f.Schedule != nil {
		t.Fatalf("Schedule = %v, want nil for an unreadable file", f.Schedule)
	}
	if !errors.Is(f.ParseErr, bufio.ErrTooLong) {
		t.Fatalf("ParseErr = %v, want bufio.ErrTooLong", f.ParseErr)
	}

	diags := w.Diagnostics(path)
	if len(diags) != 1 {
		t.Fatalf("Diagnostics = %d, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want SeverityError", d.Severity)
	}
	if d.Line != 1 {
		t.Errorf("Line = %d, want 1", d.Line)
	}
	if d.Length != len(content) {
		t.Errorf("Length = %d, want %d", d.Length, len(content))
	}
	if !strings.Contains(d.Message, "read schedule") {
		t.Errorf("Message = %q, want a read failure", d.Message)
	}
}

func TestDiagnosticsStockWarnings(t *testing.T) {
	content := `W-300 7A
W-301 6A&0.5PVB&6A
W-302 6A_16AIR_6A
`
	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/odd.gstr"
	w.UpdateFile(path, []byte(content))

	diags := w.Diagnostics(path)
	if len(diags) != 3 {
		t.Fatalf("Diagnostics = %d, want 3", len(diags))
	}

	want := []struct {
		line    int
		message string
	}{
		{1, "pane thickness 7 mm is not a stock size"},
		{2, "interlayer thickness 0.5 mm is not a stock gauge"},
		{3, "gas gap 16 mm is not a stock spacer"},
	}
	for i, d := range diags {
		if d.Severity != SeverityWarning {
			t.Errorf("diag %d: Severity = %v, want SeverityWarning", i, d.Severity)
		}
		if d.Line != want[i].line {
			t.Errorf("diag %d: Line = %d, want %d", i, d.Line, want[i].line)
		}
		if d.Message != want[i].message {
			t.Errorf("diag %d: Message = %q, want %q", i, d.Message, want[i].message)
		}
	}
}

func TestDiagnosticsUnknownCode(t *testing.T) {
	cat, err := catalog.Load(strings.NewReader(`products:
  - code: "20"
    name: Clear float glass
`))
	if err != nil {
		t.Fatalf("Load catalog: %v", err)
	}

	w := New("/tmp/ws_test")
	w.SetCatalog(cat)
	path := "/tmp/ws_test/coded.gstr"
	w.UpdateFile(path, []byte("W-400 #20(6A)\nW-401 #99(6A)\n"))

	diags := w.Diagnostics(path)
	if len(diags) != 1 {
		t.Fatalf("Diagnostics = %d, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != SeverityInfo {
		t.Errorf("Severity = %v, want SeverityInfo", d.Severity)
	}
	if d.Line != 2 {
		t.Errorf("Line = %d, want 2", d.Line)
	}
	if want := "IGDB code 99 is not in the product catalog"; d.Message != want {
		t.Errorf("Message = %q, want %q", d.Message, want)
	}
}

func TestDiagnosticsCleanFile(t *testing.T) {
	w := New("/tmp/ws_test")
	path := "/tmp/ws_test/clean.gstr"
	w.UpdateFile(path, []byte("W-500 6A_12AIR_6A&0.76PVB&6A-W3000H4000SUPPORT4\n"))

	if diags := w.Diagnostics(path); len(diags) != 0 {
		t.Errorf("Diagnostics = %d, want 0: %v", len(diags), diags)
	}
	if diags := w.Diagnostics("/tmp/ws_test/missing.gstr"); diags != nil {
		t.Errorf("Diagnostics for unknown path = %v, want nil", diags)
	}
}
