package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/ui"
)

// initCommand writes .bmi.yaml with default settings into dir.
func initCommand(w io.Writer, dir string, force bool) error {
	path := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			config.ConfigFileName+" already exists",
			"Use --force to overwrite it.")
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), path)
	fmt.Fprintln(w, ui.MutedStyle().Render("Edit the slider ranges, then run 'bmi' to try them."))
	return nil
}
