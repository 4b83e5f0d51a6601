package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"luamin/internal/builder"
	"luamin/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input> <output>",
	Short: "Watch a Lua file and minify it on every change",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		input, output := args[0], args[1]

		ui.PrintHeader(Version)

		b := builder.New(cfg.Options())
		b.Quiet = true

		ui.PrintInfo("Watching %s for changes (mode: %s)...", input, cfg.Mode)
		ui.PrintInfo("Press Ctrl+C to stop")
		fmt.Println()

		var lastMod time.Time
		for {
			lastMod = poll(b, input, output, lastMod)
			time.Sleep(500 * time.Millisecond)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// poll rebuilds output if input changed after lastMod and returns the
// modification time to compare against next. An input that cannot be
// stat'ed, e.g. mid-save by an editor that renames, is reported and retried.
func poll(b *builder.Builder, input, output string, lastMod time.Time) time.Time {
	modTime, err := modifiedAt(input)
	if err != nil {
		ui.PrintWarning("Cannot stat %s, retrying: %v", input, err)
		return lastMod
	}

	if modTime.After(lastMod) {
		rebuild(b, input, output)
		return modTime
	}
	return lastMod
}

func modifiedAt(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func rebuild(b *builder.Builder, input, output string) {
	report, err := b.BuildFile(input, output)
	if err != nil {
		ui.PrintError("Minification failed: %v", err)
		return
	}
	ui.PrintSuccess("%s  %s → %s (%.1f%%)", time.Now().Format("15:04:05"),
		ui.FormatBytes(report.OriginalSize), ui.FormatBytes(report.FinalSize), report.Reduction())
}
