package prompt

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = identity.Input{
	ThemeName:   "Flair",
	ThemeURI:    "https://example.test/",
	Author:      "Default Author",
	Description: "Default description",
}

// scripted answers prompts by message; unanswered prompts take the default
func scripted(answers map[string]string, seen *[]*survey.Input) askOneFunc {
	return func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		in := p.(*survey.Input)
		*seen = append(*seen, in)
		out := response.(*string)
		if v, ok := answers[in.Message]; ok {
			*out = v
			return nil
		}
		*out = in.Default
		return nil
	}
}

func TestSurveyPrompterAsksInOrder(t *testing.T) {
	var seen []*survey.Input
	p := &SurveyPrompter{askOne: scripted(map[string]string{
		"What is the name of your project?": "  My Theme! ",
		"What is your name?":                "Jane Doe",
	}, &seen)}

	got, err := p.Ask(context.Background(), defaults)
	require.NoError(t, err)

	assert.Equal(t, identity.Input{
		ThemeName:   "My Theme!",
		ShortName:   "my-theme",
		ThemeURI:    "https://example.test/",
		Author:      "Jane Doe",
		Description: "Default description",
	}, got)

	require.Len(t, seen, 6)
	assert.Equal(t, "Flair", seen[0].Default)
	assert.Equal(t, "my-theme", seen[1].Default, "short name default follows the entered project name")
}

func TestSurveyPrompterDefaultProjectName(t *testing.T) {
	var seen []*survey.Input
	p := &SurveyPrompter{askOne: scripted(nil, &seen)}

	got, err := p.Ask(context.Background(), identity.Input{})
	require.NoError(t, err)
	assert.Equal(t, "Flair", got.ThemeName)
	assert.Equal(t, "flair", got.ShortName)
}

func TestSurveyPrompterErrors(t *testing.T) {
	p := &SurveyPrompter{askOne: func(survey.Prompt, interface{}, ...survey.AskOpt) error {
		return stderrors.New("interrupt")
	}}
	_, err := p.Ask(context.Background(), defaults)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var seen []*survey.Input
	_, err = (&SurveyPrompter{askOne: scripted(nil, &seen)}).Ask(ctx, defaults)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt))
	assert.Empty(t, seen)
}

func TestStaticPrompter(t *testing.T) {
	got, err := StaticPrompter{Input: identity.Input{ThemeName: "Acme", Author: " "}}.Ask(context.Background(), defaults)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.ThemeName)
	assert.Equal(t, "Default Author", got.Author)
	assert.Empty(t, got.ShortName)
}

func TestFilePrompter(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "answers.yaml", "theme_name: Acme Theme\nshort_name: acme\nauthor: Jane Doe\n"},
		{"toml", "answers.toml", "theme_name = \"Acme Theme\"\nshort_name = \"acme\"\nauthor = \"Jane Doe\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := FilePrompter{Path: path}.Ask(context.Background(), defaults)
			require.NoError(t, err)
			assert.Equal(t, "Acme Theme", got.ThemeName)
			assert.Equal(t, "acme", got.ShortName)
			assert.Equal(t, "Jane Doe", got.Author)
			assert.Equal(t, "https://example.test/", got.ThemeURI)
		})
	}
}

func TestFilePrompterErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("theme_name: [unclosed"), 0644))

	for _, path := range []string{
		filepath.Join(dir, "answers.json"),
		filepath.Join(dir, "missing.yaml"),
		bad,
	} {
		_, err := FilePrompter{Path: path}.Ask(context.Background(), defaults)
		require.Error(t, err, path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt), path)
	}
}
