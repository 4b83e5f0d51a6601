package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	LuaBlue = lipgloss.Color("#000080")
	Accent  = lipgloss.Color("#3B82F6")
	Green   = lipgloss.Color("#10B981")
	Amber   = lipgloss.Color("#F59E0B")
	Red     = lipgloss.Color("#EF4444")
	Gray    = lipgloss.Color("#6B7280")

	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(Green)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Red)
	warningStyle = lipgloss.NewStyle().Foreground(Amber)
	infoStyle    = lipgloss.NewStyle().Foreground(Accent)
	ruleStyle    = lipgloss.NewStyle().Foreground(Gray)
	statKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(LuaBlue)
	statValStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
)

// printer groups digits the way the size report shows them
var printer = message.NewPrinter(language.English)

// Banner returns the luamin banner
func Banner() string {
	return bannerStyle.Render(`
 █   █  █ █▀▄▀█ ▀█▀ █▄  █
 █   █  █ █ ▀ █  █  █ ▀▄█
 ▀▀▀ ▀▀▀▀ ▀   ▀ ▀▀▀ ▀   ▀`)
}

func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func PrintInfo(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render("• " + fmt.Sprintf(format, args...)))
}

func PrintError(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

func PrintWarning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// Stat is one labelled row of a size report
type Stat struct {
	Label string
	Value string
}

// SizeStats returns the rows of a size report: original size, final size
// and percentage reduction with one decimal.
func SizeStats(original, final int, reduction float64) []Stat {
	return []Stat{
		{"Original size", FormatBytes(original)},
		{"Final size", FormatBytes(final)},
		{"Reduction", fmt.Sprintf("%.1f%%", reduction)},
	}
}

// FormatStats renders stats one per line with every value starting in the
// same column.
func FormatStats(stats []Stat) []string {
	width := 0
	for _, s := range stats {
		width = max(width, lipgloss.Width(s.Label)+1)
	}

	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		label := statKeyStyle.Render(s.Label + ":")
		pad := strings.Repeat(" ", width-lipgloss.Width(s.Label+":"))
		lines = append(lines, "  "+label+pad+" "+statValStyle.Render(s.Value))
	}
	return lines
}

// PrintStats prints aligned stat rows
func PrintStats(stats []Stat) {
	for _, line := range FormatStats(stats) {
		fmt.Println(line)
	}
}

// Divider returns a divider line
func Divider() string {
	return ruleStyle.Render(strings.Repeat("─", 41))
}

// PrintHeader prints the banner framed by dividers, with the version
func PrintHeader(version string) {
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println(Banner())
	fmt.Println(statValStyle.Render(" Version: " + version))
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println()
}

// FormatBytes formats a byte count with thousands separators, e.g. "12,345 bytes"
func FormatBytes(n int) string {
	return printer.Sprintf("%d bytes", n)
}
