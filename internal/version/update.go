// internal/version/update.go
package version

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const brewTimeout = 3 * time.Second

// Prefs is the persisted update-check preference: a version the player asked
// not to be reminded about again.
type Prefs struct {
	SkipVersion string
}

func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cat-burrow-defense", "update_prefs.cfg"), nil
}

// LoadPrefs reads the preference file. A missing file yields zero prefs.
func LoadPrefs() Prefs {
	var p Prefs
	path, err := prefsPath()
	if err != nil {
		return p
	}
	f, err := os.Open(path)
	if err != nil {
		return p
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "skip_version" {
			p.SkipVersion = strings.TrimSpace(value)
		}
	}
	return p
}

// SavePrefs writes the preference file, creating the config directory as
// needed.
func SavePrefs(p Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content := fmt.Sprintf("skip_version=%s\n", p.SkipVersion)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// brewInfo mirrors the slice of `brew info --json=v2` output we care about.
type brewInfo struct {
	Formulae []struct {
		Versions struct {
			Stable string `json:"stable"`
		} `json:"versions"`
	} `json:"formulae"`
}

// DetectLatest asks Homebrew for the newest published version. Returns an
// empty string when brew is unavailable or the formula is unknown; update
// checking is best effort and never blocks startup for long.
func DetectLatest(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, brewTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "brew", "info", "--json=v2", "cat-burrow-defense").Output()
	if err != nil {
		return ""
	}
	stable, err := ParseBrewStable(out)
	if err != nil {
		return ""
	}
	return stable
}

// ParseBrewStable extracts the stable version from raw brew JSON. Split out
// of DetectLatest so the parsing is testable without brew installed.
func ParseBrewStable(raw []byte) (string, error) {
	var info brewInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return "", fmt.Errorf("parse brew output: %w", err)
	}
	if len(info.Formulae) == 0 {
		return "", fmt.Errorf("no formulae in brew output")
	}
	return Normalize(info.Formulae[0].Versions.Stable), nil
}

// CheckForUpdate reports a newer published version, honoring the skip
// preference. Empty result means nothing to announce.
func CheckForUpdate(ctx context.Context) string {
	latest := DetectLatest(ctx)
	if latest == "" || latest == Current() {
		return ""
	}
	if LoadPrefs().SkipVersion == latest {
		return ""
	}
	return latest
}

// SkipRelease records that the player wants no more reminders for the given
// version.
func SkipRelease(v string) error {
	return SavePrefs(Prefs{SkipVersion: Normalize(v)})
}
