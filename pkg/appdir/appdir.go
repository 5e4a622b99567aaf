// Package appdir resolves the per-user directory where the noise tools keep
// their state: the seed store database, cached renders and local profiles.
package appdir

import (
	"log"
	"os"
	"path"
)

var appDirCache string

// AppDir returns ~/.noise-go, creating the path lazily on first use.
func AppDir() string {
	if appDirCache == "" {
		s, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("%v", err)
		}
		appDirCache = path.Join(s, ".noise-go")
	}
	return appDirCache
}

// Path joins parts under the app dir. The directory portion is created if
// missing, so callers can open the returned path directly.
func Path(parts ...string) string {
	p := path.Join(append([]string{AppDir()}, parts...)...)
	if err := os.MkdirAll(path.Dir(p), 0755); err != nil {
		log.Fatalf("%v", err)
	}
	return p
}

func ensureDirectory() {
	dir := AppDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		os.MkdirAll(dir, 0755)
	}
}

func init() {
	ensureDirectory()
}
