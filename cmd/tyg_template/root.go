package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tyg-tools/tyg-template/internal/config"
	"github.com/tyg-tools/tyg-template/internal/logging"
)

var (
	version   = "dev"
	debug     bool
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "tyg_template",
	Short: "A basic command line application template with error handling",
	Long: `tyg_template is a demonstration of a basic command line application using
cobra with error handling. It is designed to be used as a starting template
when beginning a new command line project: copy it, rename it, and replace
the demonstration subcommands with real ones.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = ""
		}
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("debug") {
			debug = cfg.Debug
		}
		if colorMode == "" {
			colorMode = cfg.Color
		}
		switch colorMode {
		case config.ColorAuto:
			// fatih/color already detects non-terminal output.
		case config.ColorAlways:
			color.NoColor = false
		case config.ColorNever:
			color.NoColor = true
		default:
			return fmt.Errorf("invalid color mode %q (want auto, always or never)", colorMode)
		}
		logging.Setup(os.Stderr, debug)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "show debugging information")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color output: auto, always or never")
}

var fatalPrefix = color.New(color.FgRed).SprintFunc()

// fatalLine renders the top-level error line. Every fatal message begins
// with the program name.
func fatalLine(err error) string {
	return fmt.Sprintf("%s %s", fatalPrefix("tyg_template:"), err)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, fatalLine(err))
		os.Exit(1)
	}
}
