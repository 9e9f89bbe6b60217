package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestCertWatcherFiltersEmptyFiles(t *testing.T) {
	cw, err := NewCertWatcher([]string{"server.crt", "", "server.key"}, 0, func() {}, nil)
	if err != nil {
		t.Fatalf("NewCertWatcher failed: %v", err)
	}

	files := cw.WatchedFiles()
	if len(files) != 2 {
		t.Fatalf("expected 2 watched files, got %d: %v", len(files), files)
	}
	if cw.debounceDelay != time.Second {
		t.Errorf("zero debounce delay should default to 1s, got %v", cw.debounceDelay)
	}
}

func TestCertWatcherHasFileChanged(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "server.crt")
	if err := os.WriteFile(certFile, []byte("cert-v1"), 0o600); err != nil {
		t.Fatalf("failed to write cert file: %v", err)
	}

	cw, err := NewCertWatcher([]string{certFile}, time.Second, func() {}, nil)
	if err != nil {
		t.Fatalf("NewCertWatcher failed: %v", err)
	}

	// First check records the mod time and reports a change
	if !cw.hasFileChanged(certFile) {
		t.Error("first check should report the file as changed")
	}
	if cw.hasFileChanged(certFile) {
		t.Error("unchanged file should not report a change")
	}

	// Bump the mod time past the recorded one
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(certFile, future, future); err != nil {
		t.Fatalf("failed to update mod time: %v", err)
	}
	if !cw.hasFileChanged(certFile) {
		t.Error("modified file should report a change")
	}

	// Deletion counts as a change exactly once
	if err := os.Remove(certFile); err != nil {
		t.Fatalf("failed to remove cert file: %v", err)
	}
	if !cw.hasFileChanged(certFile) {
		t.Error("deleted file should report a change")
	}
	if cw.hasFileChanged(certFile) {
		t.Error("already-deleted file should not report again")
	}
}

func TestCertWatcherShouldProcessEvent(t *testing.T) {
	cw, err := NewCertWatcher([]string{"/etc/tls/server.crt"}, time.Second, func() {}, nil)
	if err != nil {
		t.Fatalf("NewCertWatcher failed: %v", err)
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "write to watched file",
			event: fsnotify.Event{Name: "/etc/tls/server.crt", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "atomic rename with matching base name",
			event: fsnotify.Event{Name: "/tmp/staging/server.crt", Op: fsnotify.Rename},
			want:  true,
		},
		{
			name:  "create in watched directory",
			event: fsnotify.Event{Name: "/etc/tls/server.crt", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "chmod is ignored",
			event: fsnotify.Event{Name: "/etc/tls/server.crt", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "unrelated file is ignored",
			event: fsnotify.Event{Name: "/etc/tls/other.pem", Op: fsnotify.Write},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cw.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
