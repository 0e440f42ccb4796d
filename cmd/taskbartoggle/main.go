package main

import (
	"fmt"
	"os"

	"taskbartoggle/internal/commands"
	"taskbartoggle/internal/singleinstance"
)

func main() {
	// Only the resident tray mode needs an instance guard; run-once
	// toggles are free to overlap with it.
	trayMode := len(os.Args) >= 2 && os.Args[1] == "tray"
	if trayMode && os.Getenv("TASKBARTOGGLE_ALLOW_MULTI") != "1" {
		ok, err := singleinstance.Acquire("taskbartoggle_tray_v1")
		if err != nil {
			fmt.Fprintf(os.Stderr, "instance guard failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "taskbartoggle tray is already running")
			os.Exit(1)
		}
		defer singleinstance.Release()
	}

	os.Exit(commands.Run(os.Args))
}
