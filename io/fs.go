package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating files and directories.
// It extends basic file system operations with write capabilities for emitting
// assembler reports.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) path(name string) string {
	return filepath.Join(string(dir), filepath.FromSlash(name))
}

// Sub returns the subdirectory name, which must already exist.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path := dir.path(name)
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: path, Err: fs.ErrInvalid}
		return
	}

	sub = DirFS(path)
	return
}

// Create creates or truncates the file name.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(dir.path(name))
}

// Mkdir creates the directory name, including any missing parents.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return os.MkdirAll(dir.path(name), filemode)
}
