// Package cli implements the bmi command-line interface.
//
// Commands:
//
//	bmi                 - Interactive widget (same as 'bmi tui')
//	bmi tui             - Interactive widget, with --watch for config reloads
//	bmi calc            - One-shot BMI for a weight and height
//	bmi render          - Static render of the full widget (text or HTML)
//	bmi legend          - Category table with colors
//	bmi init            - Create .bmi.yaml with defaults
//	bmi version         - Print version information
//	bmi completion      - Generate shell completion script
package cli
