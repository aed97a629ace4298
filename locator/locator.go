// Package locator resolves the filesystem location of the poppler
// command-line utilities (pdfinfo, pdftoppm).
//
// Resolution order: a previously cached directory, the POPPLER_BIN_PATH
// environment variable, then a PATH search. The first successful lookup
// caches its directory so later resolutions cost no I/O. The cache can be
// set or cleared programmatically with Override and Clear.
package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaoapp/kun/log"
)

// EnvPath is the environment variable holding an override directory for
// the poppler executables. When set but wrong, a warning is emitted and
// the PATH search is attempted as fallback.
const EnvPath = "POPPLER_BIN_PATH"

// Locator resolves executable names to absolute paths with a cached
// directory shared by every tool it resolves.
type Locator struct {
	mu  sync.RWMutex
	dir string
}

var defaultLocator *Locator
var defaultOnce sync.Once

// New creates an empty Locator. Most callers use Default; a private
// Locator is useful when two sets of poppler binaries live side by side.
func New() *Locator {
	return &Locator{}
}

// Default returns the process-wide shared Locator (lazy-initialized).
func Default() *Locator {
	defaultOnce.Do(func() {
		defaultLocator = New()
	})
	return defaultLocator
}

// Resolve returns the full path of the named executable and whether it
// could be located. It never returns an error; callers decide how to
// fail. Diagnostics go to the log sink only.
func (l *Locator) Resolve(name string) (string, bool) {
	exe := executable(name)

	l.mu.RLock()
	dir := l.dir
	l.mu.RUnlock()
	if dir != "" {
		return filepath.Join(dir, exe), true
	}

	if override := os.Getenv(EnvPath); override != "" {
		path := filepath.Join(override, exe)
		if _, err := os.Stat(path); err == nil {
			l.setDir(override)
			return path, true
		}
		log.Warn("[Locator] %s=%s does not contain %s, falling back to PATH search", EnvPath, override, exe)
	}

	path, err := exec.LookPath(exe)
	if err != nil {
		log.Error("[Locator] %s not found in PATH: %s", exe, err.Error())
		l.setDir("")
		return "", false
	}

	l.setDir(filepath.Dir(path))
	return path, true
}

// Override sets the cached executable directory, bypassing both the
// environment variable and the PATH search.
func (l *Locator) Override(dir string) {
	l.setDir(dir)
}

// Clear empties the cache; the next Resolve performs a full lookup.
func (l *Locator) Clear() {
	l.setDir("")
}

// Dir returns the currently cached directory, empty when unset.
func (l *Locator) Dir() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dir
}

func (l *Locator) setDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dir = dir
}

// executable appends the platform executable suffix
func executable(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
