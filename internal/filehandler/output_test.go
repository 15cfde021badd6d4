package filehandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knguyenphu-toffee/base-image-editor/internal/variation"
)

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".png"},
		{"", ".png"},
	}

	for _, tt := range tests {
		if got := ExtensionForMIME(tt.mime); got != tt.want {
			t.Errorf("ExtensionForMIME(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestPurgeOutputsMissingDirectory(t *testing.T) {
	removed, err := PurgeOutputs(filepath.Join(t.TempDir(), "never-created"), variation.Neutral(), "selfie-")
	if err != nil {
		t.Fatalf("missing output directory should not be an error, got: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}

func TestPurgeOutputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "selfie-baseimage1.png", []byte{1})
	writeFile(t, dir, "selfie-baseimage2.jpg", []byte{2})
	writeFile(t, dir, "selfie-cryingbaseimage1.png", []byte{3})
	writeFile(t, dir, "selfie-snapchatgoofy.png", []byte{4})
	writeFile(t, dir, "notes.txt", []byte("keep me"))

	removed, err := PurgeOutputs(dir, variation.Neutral(), "selfie-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	remaining := map[string]bool{}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		remaining[e.Name()] = true
	}

	for _, gone := range []string{"selfie-baseimage1.png", "selfie-baseimage2.jpg"} {
		if remaining[gone] {
			t.Errorf("stale output %s was not removed", gone)
		}
	}
	for _, kept := range []string{"selfie-cryingbaseimage1.png", "selfie-snapchatgoofy.png", "notes.txt"} {
		if !remaining[kept] {
			t.Errorf("unrelated file %s was removed", kept)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	data := []byte("png-bytes")

	path, err := WriteOutput(dir, "selfie-baseimage1.png", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != filepath.Join(dir, "selfie-baseimage1.png") {
		t.Errorf("WriteOutput returned path %q", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back output: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("output contents = %q, want %q", got, data)
	}
}
