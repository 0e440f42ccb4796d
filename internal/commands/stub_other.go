//go:build !windows

package commands

import (
	"fmt"
	"os"
)

func runToggle([]string) int { return windowsOnly("toggle") }
func runTray([]string) int   { return windowsOnly("tray") }
func runStatus([]string) int { return windowsOnly("status") }

func windowsOnly(sub string) int {
	fmt.Fprintf(os.Stderr, "%s is only available on Windows\n", sub)
	return 1
}
