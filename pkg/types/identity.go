package types

// ProjectIdentity is the set of project-specific identifiers that replace the
// template placeholder. It is derived once per run and never modified.
type ProjectIdentity struct {
	// ThemeName is the human display name, e.g. "My Theme"
	ThemeName string `json:"themeName"`
	// ShortName is the slug, e.g. "my-theme"
	ShortName string `json:"shortName"`
	// UnderscoredName is ShortName with hyphens as underscores, e.g. "my_theme"
	UnderscoredName string `json:"underscoredName"`
	// TitleizedName is each ShortName segment capitalised and joined with underscores, e.g. "My_Theme"
	TitleizedName string `json:"titleizedName"`

	ThemeURI    string `json:"themeUri"`
	Author      string `json:"author"`
	AuthorURI   string `json:"authorUri"`
	Description string `json:"description"`
}
