package skill

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed skills
var embeddedSkills embed.FS

var (
	builtinOnce sync.Once
	builtinSet  *Set
	builtinErr  error
)

// Builtin returns the embedded skill set, loaded once per process.
func Builtin() (*Set, error) {
	builtinOnce.Do(func() {
		builtinSet, builtinErr = LoadFS(embeddedSkills, "skills")
	})
	if builtinErr != nil {
		return nil, fmt.Errorf("skill: load builtin skills: %w", builtinErr)
	}
	return builtinSet, nil
}

// MustBuiltin is Builtin that panics on failure. The embedded set is
// validated by tests, so failures indicate a broken build.
func MustBuiltin() *Set {
	set, err := Builtin()
	if err != nil {
		panic(err)
	}
	return set
}

// EmbeddedFS exposes the raw embedded skill tree, rooted at the skills
// directory.
func EmbeddedFS() (fs.FS, error) {
	return fs.Sub(embeddedSkills, "skills")
}
