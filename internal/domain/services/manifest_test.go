package services

import (
	"strings"
	"testing"

	"github.com/ochairo/req2poetry/internal/domain/entities"
)

func TestFragmentFor(t *testing.T) {
	tests := []struct {
		name           string
		classification entities.Classification
		expected       string
		expectedOK     bool
	}{
		{
			name: "parsed requirement",
			classification: entities.Classification{
				Kind:       entities.KindParsed,
				Name:       "requests",
				Constraint: ">=2.0",
			},
			expected:   `requests = ">=2.0"`,
			expectedOK: true,
		},
		{
			name: "bare name wildcard",
			classification: entities.Classification{
				Kind:       entities.KindParsed,
				Name:       "numpy",
				Constraint: "*",
			},
			expected:   `numpy = "*"`,
			expectedOK: true,
		},
		{
			name: "complex requirement keeps original text",
			classification: entities.Classification{
				Kind:     entities.KindComplex,
				Original: "some-pkg @ git+https://example.com/repo.git",
			},
			expected:   "# FIXME: Complex requirement: some-pkg @ git+https://example.com/repo.git",
			expectedOK: true,
		},
		{
			name: "unparseable keeps original text",
			classification: entities.Classification{
				Kind:     entities.KindUnparseable,
				Original: "@oops",
			},
			expected:   "# FIXME: Could not parse: @oops",
			expectedOK: true,
		},
		{
			name:           "skip produces nothing",
			classification: entities.Classification{Kind: entities.KindSkip, Original: "# comment"},
			expectedOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FragmentFor(tt.classification)
			if ok != tt.expectedOK {
				t.Fatalf("ok = %v, want %v", ok, tt.expectedOK)
			}
			if got != tt.expected {
				t.Errorf("fragment = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderPyproject(t *testing.T) {
	meta := entities.NewProjectMeta("my-app", "requirements.txt")
	fragments := []string{
		`requests = ">=2.0"`,
		`flask = "==1.1.1"`,
		`numpy = "*"`,
		"# FIXME: Complex requirement: some-pkg @ git+https://example.com/repo.git",
	}

	got := RenderPyproject(meta, fragments)

	expected := `[tool.poetry]
name = "my-app"
version = "0.1.0"
description = "Converted from requirements.txt"
authors = ["Your Name <you@example.com>"]
readme = "README.md"

[tool.poetry.dependencies]
python = "^3.12"
requests = ">=2.0"
flask = "==1.1.1"
numpy = "*"
# FIXME: Complex requirement: some-pkg @ git+https://example.com/repo.git

[build-system]
requires = ["poetry-core"]
build-backend = "poetry.core.masonry.api"
`

	if got != expected {
		t.Errorf("rendered manifest mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestRenderPyprojectPythonVersion(t *testing.T) {
	meta := entities.NewProjectMeta("my-app", "requirements.txt")
	meta.PythonVersion = "3.10"

	got := RenderPyproject(meta, nil)

	if !strings.Contains(got, "python = \"^3.10\"\n") {
		t.Errorf("expected python caret constraint for 3.10, got:\n%s", got)
	}
	if strings.Contains(got, "3.12") {
		t.Errorf("default version leaked into output:\n%s", got)
	}
}

// The build-system footer is appended unconditionally, even with no dependencies
func TestRenderPyprojectFooterAlwaysPresent(t *testing.T) {
	got := RenderPyproject(entities.NewProjectMeta("x", "requirements.txt"), nil)

	footer := "[build-system]\nrequires = [\"poetry-core\"]\nbuild-backend = \"poetry.core.masonry.api\"\n"
	if !strings.HasSuffix(got, footer) {
		t.Errorf("manifest does not end with the build-system footer:\n%s", got)
	}
}

func TestRenderPoetryConfig(t *testing.T) {
	expected := "[virtualenvs]\nin-project = true\n"
	if got := RenderPoetryConfig(); got != expected {
		t.Errorf("poetry.toml content = %q, want %q", got, expected)
	}
}
