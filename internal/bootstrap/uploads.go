package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// UploadDir validates and guards the uploaded-assets directory. It is used
// twice: fatally for uploads at startup, and again before every upload or
// delete request, so an environment fix (volume mount, chmod) is picked up
// without a restart.
type UploadDir struct {
	fs   afero.Fs
	path string
}

// NewUploadDir creates an UploadDir guard for the given filesystem and
// resolved path.
func NewUploadDir(fsys afero.Fs, path string) *UploadDir {
	return &UploadDir{fs: fsys, path: path}
}

// Fs returns the filesystem the directory lives on.
func (d *UploadDir) Fs() afero.Fs {
	return d.fs
}

// Path returns the resolved upload directory path.
func (d *UploadDir) Path() string {
	return d.path
}

// Ensure makes sure the upload directory exists, creating it and any
// missing parents. If the path is occupied by something that is not a
// directory nothing is created and the path-conflict error is returned.
// Idempotent.
func (d *UploadDir) Ensure() error {
	info, err := d.fs.Stat(d.path)
	if err == nil {
		if !info.IsDir() {
			return pathConflict(d.path)
		}
		return nil
	}
	if !isNotExist(err) {
		return classifyFsError(d.path, err, isPermission(err))
	}

	if err := d.fs.MkdirAll(d.path, 0o755); err != nil {
		return classifyFsError(d.path, err, isPermission(err))
	}
	return nil
}

// CheckWritable proves the directory accepts writes by creating a uniquely
// named probe file and removing it again. The probe is removed on the
// failure path too, so no stray artifacts are left behind.
func (d *UploadDir) CheckWritable() error {
	probe := filepath.Join(d.path, fmt.Sprintf(".writecheck-%s.tmp", uuid.NewString()))

	if err := afero.WriteFile(d.fs, probe, []byte("ok"), 0o644); err != nil {
		_ = d.fs.Remove(probe)
		return classifyFsError(d.path, err, isPermission(err))
	}
	if err := d.fs.Remove(probe); err != nil {
		return classifyFsError(d.path, err, isPermission(err))
	}
	return nil
}

// Validate runs the full existence and writability check. Request handlers
// call this before touching the filesystem so a broken directory surfaces
// as a specific request-level error instead of an opaque write failure.
func (d *UploadDir) Validate() error {
	if err := d.Ensure(); err != nil {
		return err
	}
	return d.CheckWritable()
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist)
}

func isPermission(err error) bool {
	return os.IsPermission(err) || errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EPERM)
}
