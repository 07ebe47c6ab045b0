package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glasslab/gstr/catalog"
)

func TestRunCheckValidSchedules(t *testing.T) {
	t.Setenv(catalog.EnvCatalog, "")
	dir := t.TempDir()
	write(t, filepath.Join(dir, "north.gstr"), "W-101 6A_12AIR_6A\nW-102 6A&0.76PVB&6A\n")

	if err := runCheck(dir, ""); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
}

func TestRunCheckInvalidEntry(t *testing.T) {
	t.Setenv(catalog.EnvCatalog, "")
	dir := t.TempDir()
	write(t, filepath.Join(dir, "bad.gstr"), "W-200 6Q\n")

	err := runCheck(dir, "")
	if err == nil {
		t.Fatal("runCheck: no error for a bad descriptor")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("runCheck error = %q, want an invalid-entry count", err)
	}
}

// A schedule whose only line exceeds the scanner's token limit cannot be
// read at all. The check must report it as invalid, not crash on the
// missing schedule.
func TestRunCheckUnreadableSchedule(t *testing.T) {
	t.Setenv(catalog.EnvCatalog, "")
	dir := t.TempDir()
	line := "W-1 " + strings.Repeat("6A&0.76PVB&", 8000) + "6A"
	write(t, filepath.Join(dir, "big.gstr"), line)

	err := runCheck(dir, "")
	if err == nil {
		t.Fatal("runCheck: no error for an unreadable schedule")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("runCheck error = %q, want an invalid-entry count", err)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
