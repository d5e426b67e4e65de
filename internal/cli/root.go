package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/logger"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Render widths for static output.
const (
	defaultRenderWidth = 60
	maxRenderWidth     = 100
)

// errReported means the error was already written (as JSON) and only the
// exit code is left to set.
var errReported = stderrors.New("error already reported")

// cliLog is the logger for command plumbing. Debug lines show with
// --verbose or BMI_DEBUG.
var cliLog = logger.NewEnvLogger("[bmi]")

// Global flags
var (
	cfgFile string
	noColor bool
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body Mass Index calculator for the terminal",
	Long: `bmi shows a live Body Mass Index widget: drag the weight and height
sliders with the keyboard and watch the readout, colored bar and
category legend follow along.

Run without a subcommand to open the interactive widget. When stdout
isn't a terminal, a static render is printed instead.

Examples:
  bmi
  bmi calc --weight 70 --height 170
  bmi render --format html > bmi.html`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if err != errReported {
			printError(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .bmi.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
}

// printError writes err to stderr, adding a hint for unknown commands.
func printError(err error) {
	if isUnknownCommandError(err) {
		msg := err.Error()
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("Unknown command '%s'", name)
		}
		err = errors.New(errors.ErrInput, msg, "Run 'bmi --help' to see available commands.")
	}
	fmt.Fprint(os.Stderr, ui.ErrorStyle().Render(strings.TrimRight(err.Error(), "\n"))+"\n")
}

// isUnknownCommandError checks if the error is from cobra not recognizing
// a command or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "bmi"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig finds and loads the config, falling back to defaults, and
// applies its output settings.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	applyColorMode(cfg.Output.Color)
	if path != "" {
		cliLog.Debug("loaded config from %s", path)
	}
	return cfg, path, nil
}

// applyColorMode honors output.color unless --no-color already won.
func applyColorMode(mode string) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
		return
	}
	switch strings.ToLower(mode) {
	case "never":
		ui.DisableColors()
	case "always":
		ui.ForceColors()
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// terminalWidth returns the width of stdout, or def when it isn't a terminal.
func terminalWidth(def int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// reportError writes err as a JSON envelope in JSON mode. Otherwise it
// hands err back for Execute to print.
func reportError(w io.Writer, jsonOut bool, err error) error {
	if !jsonOut {
		return err
	}
	if writeErr := WriteJSONFromError(w, err); writeErr != nil {
		return writeErr
	}
	return errReported
}
