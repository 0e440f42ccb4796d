// Package ui renders the tool's terminal output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Theme struct {
	NoColor bool
	NoEmoji bool
}

func (t Theme) Emoji(s string) string {
	if t.NoEmoji {
		return ""
	}
	return s + " "
}

func (t Theme) Step(format string, args ...any) {
	t.line(os.Stdout, color.New(color.FgBlue), "[..]", format, args...)
}

func (t Theme) Okay(format string, args ...any) {
	t.line(os.Stdout, color.New(color.FgGreen, color.Bold), "[ok]", format, args...)
}

func (t Theme) Warn(format string, args ...any) {
	t.line(os.Stderr, color.New(color.FgYellow, color.Bold), "[!!]", format, args...)
}

func (t Theme) line(w io.Writer, c *color.Color, tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.NoColor {
		fmt.Fprintf(w, "%s %s\n", tag, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", c.Sprint(tag), msg)
}
