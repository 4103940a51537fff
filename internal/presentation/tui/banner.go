package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the sprout banner to w, colored for the terminal's profile.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Spring greens fading into leaf yellow
	lines := []struct {
		text  string
		color string
	}{
		{"   ___ _ __  _ __ ___  _   _| |_ ", "#065f46"},
		{"  / __| '_ \\| '__/ _ \\| | | | __|", "#047857"},
		{"  \\__ \\ |_) | | | (_) | |_| | |_ ", "#10b981"},
		{"  |___/ .__/|_|  \\___/ \\__,_|\\__|", "#84cc16"},
		{"      |_|                        ", "#facc15"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
