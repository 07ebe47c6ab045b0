package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glasslab/gstr/schedule"
)

// FileWatcher keeps a workspace in sync with the filesystem by polling
// modification times.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

func (fw *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(fw.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			// Skip hidden directories, but never the walk root: a root of
			// "." names the working directory, not a hidden one.
			if path != fw.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != schedule.Ext {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			fw.workspace.ScanFile(path)
		}
		return nil
	})

	for path := range fw.modTimes {
		if !currentFiles[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
		}
	}
}
