package meta

// Version is overridden at release time via -ldflags.
var Version = "0.3.0"
