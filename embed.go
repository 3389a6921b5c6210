// Package tria provides embedded runtime resources (the default contact seed)
// and an overlay filesystem that checks local disk first, falling back to embedded.
package tria

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SeedFile is the name of the seed document inside Seed and the local
// override directory.
const SeedFile = "contacts.yaml"

//go:embed seed/contacts.yaml
var rawSeed embed.FS

// Seed is the embedded seed filesystem with the "seed/" prefix stripped.
var Seed = mustSub(rawSeed, "seed")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
// Any other local error is returned as is.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.embedded.Open(name)
}
