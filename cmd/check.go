// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/style"
)

// CheckDependencies exits with install instructions when mpv is not on PATH.
// mpv in turn needs yt-dlp to open YouTube URLs, which is reported as a warning only.
func CheckDependencies() {
	if _, err := exec.LookPath("mpv"); err != nil {
		printMissingDependencyError("mpv", map[string]string{
			"darwin":  "brew install mpv",
			"linux":   "sudo apt install mpv",
			"windows": "scoop install mpv",
		})
		os.Exit(1)
	}

	if _, err := exec.LookPath("yt-dlp"); err != nil {
		fmt.Fprintf(os.Stderr, "%s yt-dlp was not found in PATH, mpv may fail to open YouTube streams\n", icon.Get(icon.Fail))
	}
}

func printMissingDependencyError(dep string, install map[string]string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd, ok := install[runtime.GOOS]; ok {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
