// Package postaction runs the dependency install and build commands inside
// a freshly generated theme.
package postaction

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
)

// Runner executes one command line in dir
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs commands as child processes. Output goes to Stdout and
// Stderr when set; otherwise stderr is captured for the error message.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return errors.New(errors.ErrPostAction, "empty command")
	}
	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout

	var stderr bytes.Buffer
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		e := errors.Wrapf(err, errors.ErrPostAction, "%s failed", strings.Join(argv, " ")).
			WithDetail("dir", dir)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			e.WithDetail("stderr", msg)
		}
		return e
	}
	return nil
}

// Run executes cmds in order in dir and stops at the first failure.
// Each attempted command gets a result.
func Run(ctx context.Context, runner Runner, dir string, cmds [][]string) []types.PostActionResult {
	logger := logging.GetLogger("postaction")
	done := logging.LogOperationStart(logger, "post-actions")
	defer done()

	var results []types.PostActionResult
	for _, argv := range cmds {
		if len(argv) == 0 {
			continue
		}
		logger.Info().Strs("command", argv).Str("dir", dir).Msg("Running post-generation command")

		result := types.PostActionResult{Command: argv}
		if err := runner.Run(ctx, dir, argv); err != nil {
			logger.Error().Err(err).Strs("command", argv).Msg("Post-generation command failed")
			result.Error = err.Error()
			results = append(results, result)
			break
		}
		results = append(results, result)
	}
	return results
}
