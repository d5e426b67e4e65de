package cli

import (
	"os"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	tuiWatch        bool
	calcWeight      float64
	calcHeight      float64
	calcJSON        bool
	calcInteractive bool
	calcWidth       int
	renderWeight    float64
	renderHeight    float64
	renderFormat    string
	renderWidth     int
	legendJSON      bool
	legendBMI       float64
	legendWidth     int
	initForce       bool
	configJSON      bool
)

// tuiCmd opens the interactive widget
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive BMI widget",
	Long: `Open the interactive widget: two sliders, a live readout, a colored
bar and the category legend.

Keys:
  tab / shift+tab      switch slider
  ←/→ or h/l           step by 1
  shift+←/→, pgup/dn   step by 10
  home / end           jump to min / max
  r                    reset both sliders
  ?                    toggle help
  q                    quit

With --watch, edits to the config file are picked up live.

Examples:
  bmi tui
  bmi tui --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tuiCommand(cmd, tuiWatch)
	},
}

// calcCmd derives a single BMI
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMI for a weight and height",
	Long: `Calculate the Body Mass Index for one weight (kg) and height (cm).

Unset flags fall back to the configured initial slider values.
The BMI is truncated (not rounded) to two decimals.

Examples:
  bmi calc --weight 70 --height 170
  bmi calc -w 90 -H 180 --json
  bmi calc --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return calcCommand(cmd, calcOptions{
			Weight:      calcWeight,
			Height:      calcHeight,
			JSON:        calcJSON,
			Interactive: calcInteractive,
			Width:       calcWidth,
		})
	},
}

// renderCmd prints a static render of the widget
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the widget once, as text or HTML",
	Long: `Render the complete widget for the given (or configured) values and
exit. Text output is sized for a terminal; HTML output is a fragment
with the same structure and inline styles.

Examples:
  bmi render
  bmi render --weight 90 --height 180 --width 80
  bmi render --format html > bmi.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCommand(cmd, renderWeight, renderHeight, renderFormat, renderWidth)
	},
}

// legendCmd prints the category table
var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Show the BMI categories and their colors",
	Long: `Print the legend bar and a table of every BMI category with its range
and color. Pass --bmi to highlight the category a value falls in.

Examples:
  bmi legend
  bmi legend --bmi 27.5
  bmi legend --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mark := bmi.Undefined
		if cmd.Flags().Changed("bmi") {
			mark = bmi.Classify(legendBMI)
		}
		width := legendWidth
		if width <= 0 {
			width = terminalWidth(defaultRenderWidth)
			if width > maxRenderWidth {
				width = maxRenderWidth
			}
		}
		return runLegend(cmd.OutOrStdout(), legendJSON, width, mark)
	},
}

// initCmd creates a new .bmi.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .bmi.yaml configuration",
	Long: `Create a .bmi.yaml file in the current directory with the default
slider ranges, debounce window and output settings.

Examples:
  bmi init
  bmi init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot determine current directory",
				"Check directory permissions")
		}
		return initCommand(cmd.OutOrStdout(), dir, initForce)
	},
}

// configCmd shows the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show which config file is in use and the resulting slider settings.

Examples:
  bmi config
  bmi config --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return reportError(cmd.OutOrStdout(), configJSON, err)
		}
		if configJSON {
			return WriteJSONSuccess(cmd.OutOrStdout(), map[string]interface{}{
				"path":   path,
				"config": cfg,
			})
		}
		printConfig(cmd.OutOrStdout(), cfg, path)
		return nil
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for bmi.

Examples:
  # Bash
  bmi completion bash > /etc/bash_completion.d/bmi

  # Zsh
  bmi completion zsh > "${fpath[1]}/_bmi"

  # Fish
  bmi completion fish > ~/.config/fish/completions/bmi.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// tui command flags
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload when the config file changes")

	// calc command flags
	calcCmd.Flags().Float64VarP(&calcWeight, "weight", "w", 0, "weight in kilograms")
	calcCmd.Flags().Float64VarP(&calcHeight, "height", "H", 0, "height in centimeters")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "output as JSON")
	calcCmd.Flags().BoolVarP(&calcInteractive, "interactive", "i", false, "prompt for weight and height")
	calcCmd.Flags().IntVar(&calcWidth, "width", 0, "bar width in columns (default: terminal width)")

	// render command flags
	renderCmd.Flags().Float64VarP(&renderWeight, "weight", "w", 0, "weight in kilograms")
	renderCmd.Flags().Float64VarP(&renderHeight, "height", "H", 0, "height in centimeters")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", FormatText, "output format: text or html")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "width in columns for text output")

	// legend command flags
	legendCmd.Flags().BoolVar(&legendJSON, "json", false, "output as JSON")
	legendCmd.Flags().Float64Var(&legendBMI, "bmi", 0, "highlight the category of this BMI")
	legendCmd.Flags().IntVar(&legendWidth, "width", 0, "legend bar width in columns")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// config command flags
	configCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")

	rootCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload when the config file changes")
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return tuiCommand(cmd, tuiWatch)
	}

	// Register all commands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
