package commands

import (
	"fmt"
	"os"
	"strings"

	"taskbartoggle/internal/meta"
)

func Run(args []string) int {
	sub := "toggle"
	rest := []string{}
	if len(args) >= 2 {
		sub = args[1]
		rest = args[2:]
	}
	// Bare flags go to the default command, so `taskbartoggle --no-reopen`
	// works without spelling out "toggle".
	if strings.HasPrefix(sub, "-") {
		sub = "toggle"
		rest = args[1:]
	}

	switch sub {
	case "help", "-h", "--help":
		printRootUsage()
		return 0
	case "toggle":
		return runToggle(rest)
	case "tray":
		return runTray(rest)
	case "status":
		return runStatus(rest)
	case "version", "-v", "--version":
		fmt.Println("taskbartoggle " + meta.Version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", sub)
		printRootUsage()
		return 2
	}
}

func printRootUsage() {
	fmt.Println("taskbartoggle")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  taskbartoggle [toggle]   Toggle taskbar auto-hide and restart Explorer")
	fmt.Println("  taskbartoggle tray       Stay resident with a tray icon; toggle on click")
	fmt.Println("  taskbartoggle status     Print the current visibility mode")
	fmt.Println("")
	fmt.Println("Shared per-command flags:")
	fmt.Println("  --no-reopen          Do not reopen folder windows after the restart")
	fmt.Println("  --no-color           Disable ANSI colors")
	fmt.Println("  --no-emoji           Disable emoji in output")
	fmt.Println("")
}
