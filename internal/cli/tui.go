package cli

import (
	"github.com/rileyhilliard/bmi/internal/logger"
	"github.com/rileyhilliard/bmi/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCommand(cmd *cobra.Command, watch bool) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	// Piped output gets the settled initial view instead of a full-screen app.
	if !tui.IsInteractive() {
		cliLog.Debug("stdout is not a terminal, rendering statically")
		return runRender(cmd.OutOrStdout(), cfg, renderOptions{
			Format: FormatText,
			Width:  outputWidth(cfg),
		})
	}

	if watch && path == "" {
		cliLog.Warn("--watch has nothing to watch: no config file found, using defaults")
	}

	ctx, cancel := signalContext()
	defer cancel()

	return tui.Run(ctx, tui.RunOptions{
		Config:     cfg,
		ConfigPath: path,
		Watch:      watch,
		Log:        logger.NewEnvLogger("[tui]"),
	})
}
