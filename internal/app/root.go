package app

import (
	"os"
	"path/filepath"
)

// FindRoot walks up from the working directory looking for the app's input
// directory, so the tool works from the repo root or from cmd/*. Without a
// match the working directory is used.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, "input", "genshin_dashboard")
		if st, err := os.Stat(probe); err == nil && st.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd, nil
}
