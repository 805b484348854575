package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/braille/internal/config"
)

// CheckExisting checks if braille.yml already exists in dir
// Returns an error if it does, nil otherwise
func CheckExisting(dir string) error {
	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("found existing %s in %s", config.DefaultPath, dir)
	}

	return nil
}
