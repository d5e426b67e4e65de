package tui

import (
	"context"
	"io"
	stdlog "log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/logger"
	"github.com/rileyhilliard/bmi/internal/widget"
	"golang.org/x/term"
)

// DebugLogFile receives log output while the TUI owns the terminal.
const DebugLogFile = "bmi-debug.log"

// RunOptions configures the interactive session.
type RunOptions struct {
	// Config builds the initial widget. Nil uses defaults.
	Config *config.Config
	// ConfigPath is watched for changes when Watch is set.
	ConfigPath string
	Watch      bool
	Log        logger.Logger
}

// IsInteractive reports whether stdout is a terminal the TUI can take over.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run shows the widget until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	if os.Getenv(logger.DebugEnv) != "" {
		f, err := tea.LogToFile(DebugLogFile, "bmi")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Couldn't open "+DebugLogFile,
				"Unset "+logger.DebugEnv+" or run from a writable directory.")
		}
		defer f.Close()
	} else {
		// Log lines would tear the alt screen.
		stdlog.SetOutput(io.Discard)
		defer stdlog.SetOutput(os.Stderr)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	widgetOpts := []widget.Option{widget.WithLogger(log)}
	w, err := widget.New(opts.Config, widgetOpts...)
	if err != nil {
		return err
	}

	bridge := newBridge(nil)
	model := NewModel(w, bridge, log, widgetOpts...)
	if opts.Config != nil {
		model = model.WithMaxWidth(opts.Config.Output.Width)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.send = program.Send
	bridge.Start()
	defer bridge.Stop()

	if opts.Watch && opts.ConfigPath != "" {
		go func() {
			if err := config.Watch(ctx, opts.ConfigPath, log, bridge.Reload); err != nil {
				log.Warn("config watch stopped: %v", err)
			}
		}()
	}

	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil && ctx.Err() == nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The interactive view stopped unexpectedly",
			"Try 'bmi render' for a static view.")
	}
	return nil
}
