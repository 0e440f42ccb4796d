// Package settings persists the tool's own preferences as a small
// key=value file under the user's config directory.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Settings are the resident-mode defaults for a toggle run. CLI flags
// override whatever the file says.
type Settings struct {
	ReopenWindows    bool
	RelaunchSettleMS int
	WindowWaitMS     int
}

func Default() Settings {
	return Settings{
		ReopenWindows:    true,
		RelaunchSettleMS: 750,
		WindowWaitMS:     500,
	}
}

// Path returns the per-user settings file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskbartoggle", "settings.conf"), nil
}

// Parse reads key=value lines. Comments, blank lines, unknown keys and
// malformed values are ignored so hand-edited files stay forgiving.
func Parse(data []byte) Settings {
	s := Default()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch {
		case strings.EqualFold(key, "REOPEN_WINDOWS"):
			s.ReopenWindows = val != "0"
		case strings.EqualFold(key, "RELAUNCH_SETTLE_MS"):
			s.RelaunchSettleMS = clampMS(val, s.RelaunchSettleMS)
		case strings.EqualFold(key, "WINDOW_WAIT_MS"):
			s.WindowWaitMS = clampMS(val, s.WindowWaitMS)
		}
	}
	return s
}

// clampMS keeps delay overrides inside a sane band; a typo in the file must
// not freeze a toggle for minutes.
func clampMS(val string, fallback int) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	if n < 0 {
		return 0
	}
	if n > 10000 {
		return 10000
	}
	return n
}

// Render produces the file body Parse reads back.
func Render(s Settings) []byte {
	reopen := "1"
	if !s.ReopenWindows {
		reopen = "0"
	}
	body := strings.Join([]string{
		"# taskbartoggle settings",
		"REOPEN_WINDOWS=" + reopen,
		fmt.Sprintf("RELAUNCH_SETTLE_MS=%d", s.RelaunchSettleMS),
		fmt.Sprintf("WINDOW_WAIT_MS=%d", s.WindowWaitMS),
		"",
	}, "\n")
	return []byte(body)
}

// Load reads the settings file, falling back to defaults when it is missing
// or unreadable.
func Load() Settings {
	path, err := Path()
	if err != nil {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	return Parse(data)
}

func Save(s Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, Render(s), 0o644)
}
