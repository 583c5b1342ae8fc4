// Package skill loads, authors, and installs skill documents. A skill is a
// markdown file named SKILL.md with a YAML frontmatter block carrying its
// name and description; the remaining markdown body holds the instructions.
// Built-in skills ship embedded in the binary and can be installed into the
// configuration directories of supported assistant tools.
package skill
