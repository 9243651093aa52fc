// Package identity derives the ProjectIdentity used for substitution from the
// names a user enters.
package identity

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Input holds the raw answers collected from the user
type Input struct {
	ThemeName   string `koanf:"theme_name" yaml:"theme_name"`
	ShortName   string `koanf:"short_name" yaml:"short_name"`
	ThemeURI    string `koanf:"theme_uri" yaml:"theme_uri"`
	Author      string `koanf:"author" yaml:"author"`
	AuthorURI   string `koanf:"author_uri" yaml:"author_uri"`
	Description string `koanf:"description" yaml:"description"`
}

// Slugify lowercases s, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single hyphen, trimming hyphens from
// both ends. "Café Crème" becomes "cafe-creme"; text with no ASCII letters
// or digits yields "".
func Slugify(s string) string {
	folded, _, err := transform.String(foldDiacritics(), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// foldDiacritics decomposes runes and drops the combining marks.
// Transformers hold state, so each call gets its own chain.
func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Underscore replaces the hyphens of a slug with underscores
func Underscore(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// Titleize capitalises every hyphen or underscore delimited segment of slug
// and joins the segments with underscores: "my-theme" becomes "My_Theme".
func Titleize(slug string) string {
	segments := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	// Casers hold state and cannot be shared between goroutines.
	caser := cases.Title(language.Und, cases.NoLower)
	for i, seg := range segments {
		segments[i] = caser.String(seg)
	}
	return strings.Join(segments, "_")
}

// Derive builds the ProjectIdentity for in. The short name defaults to the
// slug of the theme name when it is empty.
func Derive(in Input) (types.ProjectIdentity, error) {
	logger := logging.GetLogger("identity")

	themeName := strings.TrimSpace(in.ThemeName)
	if themeName == "" {
		return types.ProjectIdentity{}, errors.New(errors.ErrValidation, "theme name cannot be empty")
	}

	shortName := Slugify(in.ShortName)
	if shortName == "" {
		shortName = Slugify(themeName)
	}
	if shortName == "" {
		return types.ProjectIdentity{}, errors.Newf(errors.ErrValidation,
			"cannot derive a short name from %q", themeName).
			WithDetail("themeName", themeName).
			WithDetail("shortName", in.ShortName)
	}

	id := types.ProjectIdentity{
		ThemeName:       themeName,
		ShortName:       shortName,
		UnderscoredName: Underscore(shortName),
		TitleizedName:   Titleize(shortName),
		ThemeURI:        strings.TrimSpace(in.ThemeURI),
		Author:          strings.TrimSpace(in.Author),
		AuthorURI:       strings.TrimSpace(in.AuthorURI),
		Description:     strings.TrimSpace(in.Description),
	}

	logger.Debug().
		Str("themeName", id.ThemeName).
		Str("shortName", id.ShortName).
		Str("underscored", id.UnderscoredName).
		Str("titleized", id.TitleizedName).
		Msg("derived project identity")

	return id, nil
}
