package filehandler

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestFindBaseImageMissingDirectory(t *testing.T) {
	_, err := FindBaseImage(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("expected error for missing input directory")
	}
}

func TestFindBaseImageEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", []byte("not an image"))

	_, err := FindBaseImage(dir)
	if err == nil {
		t.Error("expected error when no recognized image exists")
	}
}

func TestFindBaseImage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "selfie-01.jpg", []byte{0xff, 0xd8, 0xff})

	base, err := FindBaseImage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if base.Stem != "selfie-01" {
		t.Errorf("Stem = %q, want %q", base.Stem, "selfie-01")
	}
	if base.Ext != ".jpg" {
		t.Errorf("Ext = %q, want %q", base.Ext, ".jpg")
	}
	if base.MIMEType != "image/jpeg" {
		t.Errorf("MIMEType = %q, want %q", base.MIMEType, "image/jpeg")
	}
	if base.Size != 3 {
		t.Errorf("Size = %d, want 3", base.Size)
	}
}

func TestFindBaseImageFirstSortedWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-second.png", []byte{1})
	writeFile(t, dir, "a-first.png", []byte{2})
	writeFile(t, dir, "readme.md", []byte("skip"))

	base, err := FindBaseImage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Stem != "a-first" {
		t.Errorf("Stem = %q, want first sorted candidate %q", base.Stem, "a-first")
	}
}

func TestFindBaseImageSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "aaa.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "photo.png", []byte{1})

	base, err := FindBaseImage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Stem != "photo" {
		t.Errorf("Stem = %q, want %q", base.Stem, "photo")
	}
}

func TestBaseImageRead(t *testing.T) {
	dir := t.TempDir()
	want := []byte("image-bytes")
	writeFile(t, dir, "pic-1.png", want)

	base, err := FindBaseImage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := base.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestGetMIMEType(t *testing.T) {
	tests := []struct {
		ext     string
		want    string
		wantErr bool
	}{
		{".png", "image/png", false},
		{".jpg", "image/jpeg", false},
		{".JPEG", "image/jpeg", false},
		{".webp", "image/webp", false},
		{".bmp", "image/bmp", false},
		{".gif", "", true},
		{".txt", "", true},
	}

	for _, tt := range tests {
		got, err := GetMIMEType(tt.ext)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetMIMEType(%q) expected error", tt.ext)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetMIMEType(%q) error: %v", tt.ext, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetMIMEType(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}
