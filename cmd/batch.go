package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"luamin/internal/builder"
	"luamin/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <srcdir> <outdir>",
	Short: "Minify every matching Lua file in a directory tree",
	Long: `Minify every file under srcdir that matches the include patterns and
none of the exclude patterns, writing results to the same relative path
under outdir.

Patterns come from --include/--exclude, LUAMIN_INCLUDE/LUAMIN_EXCLUDE or
luamin.yaml, and default to **/*.lua.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		srcDir, outDir := args[0], args[1]

		if !cfg.Quiet {
			ui.PrintHeader(Version)
			ui.PrintInfo("Minifying %s into %s (mode: %s)", srcDir, outDir, cfg.Mode)
			fmt.Println()
		}

		b := builder.New(cfg.Options())
		b.Quiet = cfg.Quiet

		report, err := b.BuildDir(srcDir, outDir, cfg.Include, cfg.Exclude)
		if err != nil {
			ui.PrintError("Batch failed: %v", err)
			os.Exit(1)
		}

		if report.Files == 0 {
			ui.PrintWarning("No files matched %v", cfg.Include)
			return
		}

		fmt.Println()
		ui.PrintSuccess("Minified %d files into %s", report.Files, outDir)
		printReport(report)
	},
}

func init() {
	batchCmd.Flags().StringSlice("include", nil, "Glob patterns of files to minify (default **/*.lua)")
	batchCmd.Flags().StringSlice("exclude", nil, "Glob patterns of files to skip")
	rootCmd.AddCommand(batchCmd)
}
