package bootstrap

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestUploadDir_Ensure_CreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewUploadDir(fs, "/app/uploads")

	if err := dir.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	info, err := fs.Stat("/app/uploads")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("upload path is not a directory")
	}
}

func TestUploadDir_Ensure_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewUploadDir(fs, "/app/uploads")

	for i := 0; i < 3; i++ {
		if err := dir.Ensure(); err != nil {
			t.Fatalf("Ensure() run %d error = %v", i+1, err)
		}
	}
}

func TestUploadDir_Ensure_PathConflict(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/app/uploads", []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	dir := NewUploadDir(fs, "/app/uploads")

	err := dir.Ensure()
	if !errors.Is(err, ErrPathConflict) {
		t.Fatalf("Ensure() error = %v, want ErrPathConflict", err)
	}

	// The conflicting file must be left exactly as it was.
	data, readErr := afero.ReadFile(fs, "/app/uploads")
	if readErr != nil || string(data) != "not a dir" {
		t.Errorf("conflicting file modified: %q, %v", data, readErr)
	}

	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatal("Ensure() error does not carry the path")
	}
	if dirErr.Path != "/app/uploads" {
		t.Errorf("DirectoryError.Path = %q, want /app/uploads", dirErr.Path)
	}
}

func TestUploadDir_CheckWritable_RemovesProbe(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewUploadDir(fs, "/app/uploads")
	if err := dir.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	if err := dir.CheckWritable(); err != nil {
		t.Fatalf("CheckWritable() error = %v", err)
	}

	entries, err := afero.ReadDir(fs, "/app/uploads")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("probe artifact left behind: %v", entries[0].Name())
	}
}

func TestUploadDir_CheckWritable_ReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/app/uploads", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	fs := afero.NewReadOnlyFs(base)
	dir := NewUploadDir(fs, "/app/uploads")

	err := dir.CheckWritable()
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("CheckWritable() error = %v, want ErrPermissionDenied", err)
	}

	entries, readErr := afero.ReadDir(base, "/app/uploads")
	if readErr != nil {
		t.Fatalf("ReadDir() error = %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("probe artifact left behind on failure: %v", entries[0].Name())
	}
}

func TestUploadDir_Validate_ReadOnlyRoot(t *testing.T) {
	// Directory creation itself is refused.
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	dir := NewUploadDir(fs, "/app/uploads")

	err := dir.Validate()
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Validate() error = %v, want ErrPermissionDenied", err)
	}
}

func TestUploadDir_Validate_Success(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewUploadDir(fs, "/app/uploads")

	if err := dir.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
