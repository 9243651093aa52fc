package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/flairgen/cmd/flairgen"
	"github.com/arthur-debert/flairgen/pkg/ui/styles"
)

func main() {
	rootCmd := flairgen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, flairgen.ErrReported) {
			fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
