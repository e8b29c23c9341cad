package models

// Template is a read-only seed used as initial content for an unsaved project.
type Template struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	HTML string `json:"html" yaml:"html"`
	CSS  string `json:"css" yaml:"css"`
	JS   string `json:"js" yaml:"js"`
}

// TemplateSummary is the listing form of a Template.
type TemplateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Summary returns the listing form, falling back to the id when the
// template has no display name.
func (t Template) Summary() TemplateSummary {
	name := t.Name
	if name == "" {
		name = t.ID
	}
	return TemplateSummary{ID: t.ID, Name: name}
}
