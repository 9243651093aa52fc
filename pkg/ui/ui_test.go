package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/arthur-debert/flairgen/pkg/ui"
	"github.com/arthur-debert/flairgen/pkg/ui/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *types.GenerateResult {
	return &types.GenerateResult{
		Identity: types.ProjectIdentity{
			ThemeName: "MyTheme",
			ShortName: "my-theme",
		},
		TemplateVersion: "1.4.2",
		OutputDir:       "/out",
		Written:         []string{"functions.php", "style.css"},
		Copied:          []string{"img/logo.png"},
		Ignored:         []string{".git", "LICENSE", "README.md"},
		Renamed:         map[string]string{"templates/flair-header.php": "templates/my-theme-header.php"},
		Failures: []types.FileFailure{
			{Path: "inc/broken.php", Stage: "transform", Error: "permission denied"},
		},
		PostActions: []types.PostActionResult{
			{Command: []string{"npm", "install"}},
			{Command: []string{"grunt", "setup"}, Error: "exit status 1"},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestTextRenderResult(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	assert.Equal(t, `Generated MyTheme (my-theme) from Flair v1.4.2 in /out
  rewritten: 2  copied: 1  ignored: 3
  renamed: templates/flair-header.php -> templates/my-theme-header.php
Files needing attention:
  inc/broken.php [transform]: permission denied
Post-generation commands:
  npm install: ok
  grunt setup: failed: exit status 1
`, buf.String())
}

func TestTextRenderDryRun(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	res := &types.GenerateResult{
		Identity:  types.ProjectIdentity{ThemeName: "Acme", ShortName: "acme"},
		OutputDir: "/out",
		DryRun:    true,
	}
	require.NoError(t, r.RenderResult(res))
	assert.Equal(t, "Dry run: would generate Acme (acme) in /out\n  rewritten: 0  copied: 0  ignored: 0\n", buf.String())
}

func TestTextRenderError(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrManifestParse, "package manifest is not valid JSON")))
	assert.Equal(t, "Error during manifest: [MANIFEST_PARSE] package manifest is not valid JSON\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(assert.AnError))
	assert.Equal(t, "Error: "+assert.AnError.Error()+"\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	var decoded types.GenerateResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "my-theme", decoded.Identity.ShortName)
	assert.Equal(t, []string{"img/logo.png"}, decoded.Copied)
	assert.Len(t, decoded.Failures, 1)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrValidation, "theme name is required").WithDetail("field", "themeName")))
	var errObj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "VALIDATION", errObj["code"])
	assert.Equal(t, "derive", errObj["stage"])
	assert.Equal(t, map[string]interface{}{"field": "themeName"}, errObj["details"])

	buf.Reset()
	require.NoError(t, r.RenderMessage("hello"))
	assert.JSONEq(t, `{"message": "hello"}`, buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	out := buf.String()
	for _, want := range []string{"MyTheme", "Flair v1.4.2", "templates/my-theme-header.php", "inc/broken.php", "grunt setup", "exit status 1", "Next steps"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrAcquisition, "failed to clone")))
	assert.Contains(t, buf.String(), "acquire failed")
}

func TestNextSteps(t *testing.T) {
	res := sampleResult()
	md := terminal.NextSteps(res)
	assert.Contains(t, md, "1. `cd /out`")
	assert.Contains(t, md, "2. Run `npm install` and `grunt setup`", "failed post actions ask for a manual run")
	assert.Contains(t, md, "3. Activate **MyTheme**")

	res.Failures = nil
	res.PostActions = res.PostActions[:1]
	md = terminal.NextSteps(res)
	assert.NotContains(t, md, "npm install")
	assert.Contains(t, md, "2. Activate **MyTheme**")
}
