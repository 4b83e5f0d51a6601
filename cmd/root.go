package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"luamin/internal/builder"
	"luamin/internal/config"
	"luamin/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "luamin <input> <output>",
	Short: "Lua source minifier",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		input, output := args[0], args[1]

		if !cfg.Quiet {
			ui.PrintHeader(Version)
			ui.PrintInfo("Minifying %s (mode: %s)", input, cfg.Mode)
		}

		b := builder.New(cfg.Options())
		b.Quiet = cfg.Quiet

		report, err := b.BuildFile(input, output)
		if err != nil {
			ui.PrintError("Minification failed: %v", err)
			os.Exit(1)
		}

		fmt.Println()
		ui.PrintSuccess("Minification completed: %s", output)
		printReport(report)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n\n" + ui.Divider() + "\n\n  Strip comments and redundant whitespace from Lua source"

	rootCmd.PersistentFlags().StringP("mode", "m", "literal", "Comment policy: literal (string-aware) or faithful (line substring scan)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print the final report")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("luamin %s\n", Version)
	},
}

// loadConfig loads luamin.yaml from the working directory merged with
// the environment and the command's flags. It exits on error.
func loadConfig(cmd *cobra.Command) *config.Config {
	dir, err := os.Getwd()
	if err != nil {
		ui.PrintError("Failed to get current directory: %v", err)
		os.Exit(1)
	}

	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	return cfg
}

func printReport(report *builder.Report) {
	ui.PrintStats(ui.SizeStats(report.OriginalSize, report.FinalSize, report.Reduction()))
}
