package types

import "time"

// FileFailure records a per-file error that did not abort the run
type FileFailure struct {
	Path  string `json:"path"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// PostActionResult records one post-generation command
type PostActionResult struct {
	Command []string `json:"command"`
	Error   string   `json:"error,omitempty"`
}

// GenerateResult is the outcome of a generation run. Written, Copied and
// Ignored hold template-relative source paths; Renamed maps sources to their
// output paths when the two differ.
type GenerateResult struct {
	Identity        ProjectIdentity    `json:"identity"`
	TemplateDir     string             `json:"templateDir"`
	TemplateVersion string             `json:"templateVersion"`
	OutputDir       string             `json:"outputDir"`
	DryRun          bool               `json:"dryRun"`
	Written         []string           `json:"written"`
	Copied          []string           `json:"copied"`
	Ignored         []string           `json:"ignored"`
	Renamed         map[string]string  `json:"renamed,omitempty"`
	Failures        []FileFailure      `json:"failures,omitempty"`
	PostActions     []PostActionResult `json:"postActions,omitempty"`
	Timestamp       time.Time          `json:"timestamp"`
}

// HasFailures reports whether any file or post action failed
func (r *GenerateResult) HasFailures() bool {
	if len(r.Failures) > 0 {
		return true
	}
	for _, pa := range r.PostActions {
		if pa.Error != "" {
			return true
		}
	}
	return false
}
