package skillgen

import (
	"io/fs"

	"github.com/skillgen/skillgen/pkg/template"
)

// EmbeddedTemplates exposes the built-in template files so callers can
// inspect or extend them without importing the template package directly.
func EmbeddedTemplates() fs.FS {
	return template.EmbeddedFS()
}
