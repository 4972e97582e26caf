package validate

import (
	"fmt"
	"os"

	"github.com/gruppe-adler/meh-flt/internal/utils"
)

// Source validates that given path can serve as grid source. A compressed
// source has to be a zip file, an uncompressed one a directory.
func Source(sourcePath string, compressed bool) error {
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("%s does not exist: %w", sourcePath, err)
	}

	if compressed {
		if !utils.IsFile(sourcePath) {
			return fmt.Errorf("%s is no file", sourcePath)
		}
		return nil
	}

	if !utils.IsDirectory(sourcePath) {
		return fmt.Errorf("%s does not exists or is no directory", sourcePath)
	}

	return nil
}
