package entities

import "fmt"

// ProjectMeta holds the metadata written into the generated manifest header
// and the python constraint of its dependency block.
type ProjectMeta struct {
	Name          string
	Version       string
	Description   string
	Authors       []string
	Readme        string
	PythonVersion string
}

// MetadataOverrides holds optional per-project metadata loaded from a
// .req2poetry.yml file. Empty fields leave the derived defaults untouched.
type MetadataOverrides struct {
	Name        string
	Version     string
	Description string
	Authors     []string
	Readme      string
	Python      string
}

// NewProjectMeta returns manifest metadata with placeholder defaults for a
// project converted from the named requirements file.
func NewProjectMeta(projectName, requirementsFile string) ProjectMeta {
	return ProjectMeta{
		Name:          projectName,
		Version:       "0.1.0",
		Description:   fmt.Sprintf("Converted from %s", requirementsFile),
		Authors:       []string{"Your Name <you@example.com>"},
		Readme:        "README.md",
		PythonVersion: "3.12",
	}
}

// Apply overrides the metadata with every non-empty field of ov.
func (m *ProjectMeta) Apply(ov *MetadataOverrides) {
	if ov == nil {
		return
	}
	if ov.Name != "" {
		m.Name = ov.Name
	}
	if ov.Version != "" {
		m.Version = ov.Version
	}
	if ov.Description != "" {
		m.Description = ov.Description
	}
	if len(ov.Authors) > 0 {
		m.Authors = ov.Authors
	}
	if ov.Readme != "" {
		m.Readme = ov.Readme
	}
	if ov.Python != "" {
		m.PythonVersion = ov.Python
	}
}
