package template

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed templates/*.tpl
var builtinFS embed.FS

const builtinRoot = "templates"

var (
	builtinOnce sync.Once
	builtinReg  *Registry
	builtinErr  error
)

// Builtin returns the process-wide registry of built-in templates. The table
// is loaded from the embedded templates directory on first use and never
// mutated afterwards, so the returned registry is safe to share.
func Builtin() (*Registry, error) {
	builtinOnce.Do(func() {
		builtinReg, builtinErr = LoadFS(builtinFS, builtinRoot)
	})
	return builtinReg, builtinErr
}

// MustBuiltin panics when the embedded table fails to load. The embedded
// files are fixed at compile time, so this only trips on a packaging defect.
func MustBuiltin() *Registry {
	reg, err := Builtin()
	if err != nil {
		panic(err)
	}
	return reg
}

// EmbeddedFS exposes the built-in template files so callers can inspect or
// extend them without reaching into the package internals.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(builtinFS, builtinRoot)
	if err != nil {
		return builtinFS
	}
	return sub
}

// LoadFS builds a registry from every .tpl file under root in fsys. The
// template name is the file name without its extension, so "pr-comment.tpl"
// registers as "pr-comment".
func LoadFS(fsys fs.FS, root string) (*Registry, error) {
	reg := NewRegistry()

	err := fs.WalkDir(fsys, root, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.HasSuffix(p, ".tpl") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), ".tpl")
		return reg.Register(New(name, string(data)))
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}
