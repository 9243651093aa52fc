package substitute

import (
	"strings"
	"testing"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func myTheme() types.ProjectIdentity {
	return types.ProjectIdentity{
		ThemeName:       "MyTheme",
		ShortName:       "my-theme",
		UnderscoredName: "my_theme",
		TitleizedName:   "My_Theme",
	}
}

func TestApplyScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"text domain", "Text Domain: Flair", "Text Domain: my-theme"},
		{"quoted", "__( 'Menu', 'flair' );", "__( 'Menu', 'my-theme' );"},
		{"space bounded lowercase", " flair ", " my-theme "},
		{"underscore prefix", "flair_db", "my_theme_db"},
		{"display name", " Flair ", " MyTheme "},
		{"hyphen prefix", "flair-header", "my-theme-header"},
		{"class prefix", "class Flair_Walker", "class My_Theme_Walker"},
		{"function call", "function flair_setup() {", "function my_theme_setup() {"},
		{"double quoted is left to the manifest rewriter", `  "name": "flair",`, `  "name": "flair",`},
		{"untouched bare token", "Flair", "Flair"},
		{"untouched lowercase at line start", "flair\n", "flair\n"},
		{"no placeholder", "body { color: red; }", "body { color: red; }"},
		{"adjacent display names share a space", " Flair Flair ", " MyTheme Flair "},
		{"adjacent quoted tokens share a quote", "'flair'flair'", "'my-theme'flair'"},
		{"multiple lines", "flair_a\nflair_b\n", "my_theme_a\nmy_theme_b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.in, myTheme()))
		})
	}
}

func TestRuleOrderQuotedAndDisplayNameOnOneLine(t *testing.T) {
	identities := []types.ProjectIdentity{
		myTheme(),
		{ThemeName: "Acme Starter", ShortName: "acme-starter", UnderscoredName: "acme_starter", TitleizedName: "Acme_Starter"},
		{ThemeName: "X", ShortName: "x", UnderscoredName: "x", TitleizedName: "X"},
	}

	for _, id := range identities {
		t.Run(id.ShortName, func(t *testing.T) {
			in := "printf( __( 'Proudly powered by Flair %s', 'flair' ), ' Flair ' );"
			got := Apply(in, id)
			assert.Contains(t, got, "'"+id.ShortName+"'")
			assert.Contains(t, got, " "+id.ThemeName+" ")
			assert.NotContains(t, got, "'flair'")
			assert.NotContains(t, got, " Flair ")
		})
	}
}

func TestApplyHasNoSelfMatches(t *testing.T) {
	inputs := []string{
		"Text Domain: Flair\n",
		"<?php flair_setup(); echo 'flair'; ?>",
		"$flair-color: #fff;\n.flair-nav { }",
		"/* Flair Theme */ class Flair_Walker extends Walker {}",
		" Flair  Flair ",
		"flair flair flair",
		"'flair' 'flair'",
	}

	for _, in := range inputs {
		once := Apply(in, myTheme())
		twice := Apply(once, myTheme())
		assert.Equal(t, once, twice, "second pass changed %q", in)
		for _, r := range Rules() {
			assert.NotContains(t, once, r.Pattern(), "rule %s still matches output of %q", r.Name, in)
		}
	}
}

func TestMatchesConsumeTheirContext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"three display names", " Flair Flair Flair ", " MyTheme Flair MyTheme "},
		{"separated display names", " Flair  Flair ", " MyTheme  MyTheme "},
		{"quoted run", "'flair'flair'flair'", "'my-theme'flair'my-theme'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.in, myTheme()))
		})
	}
}

func TestRulesOrder(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"text-domain",
		"quoted",
		"underscore-prefix",
		"space-before",
		"space-after",
		"display-name",
		"hyphen-prefix",
		"class-prefix",
	}, names)

	patterns := make([]string, 0, len(Rules()))
	for _, r := range Rules() {
		patterns = append(patterns, r.Pattern())
	}
	assert.Equal(t, []string{
		"Text Domain: Flair", "'flair'", "flair_", " flair", "flair ", " Flair ", "flair-", "Flair_",
	}, patterns)
}

func TestAnchoredRulesMustRunFirst(t *testing.T) {
	// With display-name first, the text domain header receives the display
	// name instead of the slug.
	in := "Text Domain: Flair "

	assert.Equal(t, "Text Domain: my-theme ", Apply(in, myTheme()))

	rules := Rules()
	reordered := append([]Rule{rules[5]}, append(rules[:5:5], rules[6:]...)...)
	engine, err := NewEngine(reordered)
	require.NoError(t, err)
	assert.Equal(t, "Text Domain: MyTheme ", engine.Apply(in, myTheme()))
}

func TestNewEngineValidation(t *testing.T) {
	replace := func(types.ProjectIdentity) string { return "x" }

	_, err := NewEngine([]Rule{{Name: "empty", Replace: replace}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = NewEngine([]Rule{{Name: "nil", Token: "flair"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = NewEngine([]Rule{{Name: "multiline", Token: "flair", After: "\n", Replace: replace}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestEngineRulesIsACopy(t *testing.T) {
	engine := Default()
	rules := engine.Rules()
	rules[0].Token = "mutated"
	assert.Equal(t, PlaceholderTitle, engine.Rules()[0].Token)
}

func TestApplyLargeInput(t *testing.T) {
	in := strings.Repeat("function flair_x() { return 'flair'; }\n", 1000)
	got := Apply(in, myTheme())
	assert.Equal(t, 1000, strings.Count(got, "my_theme_x"))
	assert.Equal(t, 1000, strings.Count(got, "'my-theme'"))
	assert.NotContains(t, got, "flair")
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, `quoted "'flair'"`, Rules()[1].String())
}
