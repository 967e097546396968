package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tyg-tools/tyg-template/internal/demo"
)

var failBare bool
var fileFailBetter bool

var failCmd = &cobra.Command{
	Use:   "fail",
	Short: "Show how to return an error using the error handler",
	Long: "Raise the demonstration error and let it propagate to the top-level " +
		"reporter. With --bare the error is raised bare-style, the form meant " +
		"for end users; source location rendering is fixed at build time either way.",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("raising demonstration error", "bare", failBare)
		if err := demo.Fail(failBare); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "This should not be displayed because an error was forced...")
		return nil
	},
}

var recursiveFailCmd = &cobra.Command{
	Use:   "recursive-fail",
	Short: "Show how to handle errors whilst extracting values from a loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := demo.RecursiveFail(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "This should not be displayed because an error was forced...")
		return nil
	},
}

var fileFailCmd = &cobra.Command{
	Use:   "file-fail <path>",
	Short: "Show how to handle a regular filing system error e.g. file not found",
	Long: "Attempt to open the given path. Point it at a file that does not exist " +
		"to see the error path; --better re-raises the I/O failure through the " +
		"error handler with the path prepended.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("opening file", "path", args[0], "better", fileFailBetter)
		if err := demo.FileFail(fileFailBetter, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Now see what happens when an invalid file is entered")
		return nil
	},
}

func init() {
	failCmd.Flags().BoolVar(&failBare, "bare", false, "show error without source file and line number displayed")
	fileFailCmd.Flags().BoolVar(&fileFailBetter, "better", false, "a better rendition of the error message")
	rootCmd.AddCommand(failCmd)
	rootCmd.AddCommand(recursiveFailCmd)
	rootCmd.AddCommand(fileFailCmd)
}
