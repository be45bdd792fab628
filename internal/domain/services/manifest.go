package services

import (
	"fmt"
	"strings"

	"github.com/ochairo/req2poetry/internal/domain/entities"
)

// poetryConfig forces dependency installation into a project-local .venv
// instead of a shared global environment.
const poetryConfig = `[virtualenvs]
in-project = true
`

// FragmentFor maps a classification to the manifest line it contributes.
// The second return is false for Skip, which contributes nothing.
func FragmentFor(c entities.Classification) (string, bool) {
	switch c.Kind {
	case entities.KindParsed:
		return fmt.Sprintf("%s = %q", c.Name, c.Constraint), true
	case entities.KindComplex:
		return "# FIXME: Complex requirement: " + c.Original, true
	case entities.KindUnparseable:
		return "# FIXME: Could not parse: " + c.Original, true
	default:
		return "", false
	}
}

// RenderPyproject produces the complete pyproject.toml document: the
// [tool.poetry] metadata header, the dependency block with the python
// constraint followed by the fragments in their original input order, and the
// fixed [build-system] footer.
func RenderPyproject(meta entities.ProjectMeta, fragments []string) string {
	var b strings.Builder

	b.WriteString("[tool.poetry]\n")
	fmt.Fprintf(&b, "name = %q\n", meta.Name)
	fmt.Fprintf(&b, "version = %q\n", meta.Version)
	fmt.Fprintf(&b, "description = %q\n", meta.Description)
	fmt.Fprintf(&b, "authors = [%s]\n", quoteList(meta.Authors))
	fmt.Fprintf(&b, "readme = %q\n", meta.Readme)
	b.WriteString("\n")

	b.WriteString("[tool.poetry.dependencies]\n")
	fmt.Fprintf(&b, "python = \"^%s\"\n", meta.PythonVersion)
	for _, fragment := range fragments {
		b.WriteString(fragment)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("[build-system]\n")
	b.WriteString("requires = [\"poetry-core\"]\n")
	b.WriteString("build-backend = \"poetry.core.masonry.api\"\n")

	return b.String()
}

// RenderPoetryConfig produces the poetry.toml companion document.
func RenderPoetryConfig() string {
	return poetryConfig
}

func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, fmt.Sprintf("%q", item))
	}
	return strings.Join(quoted, ", ")
}
