// Package input resolves the source bytes for a conversion: a named
// file, stdin, or the first text entry of an archive.
package input

import (
	"io"
	"os"
	"strings"

	"github.com/FocuswithJustin/Aozora/core/errors"
	"github.com/FocuswithJustin/Aozora/internal/archive"
)

// Read returns the raw source bytes for path. An empty path reads stdin.
// With zipMode, or when the path carries an archive suffix, the first
// .txt entry of the archive is extracted instead. A bare file whose
// contents look like a ZIP archive is rejected so the caller can point
// the user at the zip flag.
func Read(path string, zipMode bool) ([]byte, error) {
	if path == "" {
		if zipMode {
			return nil, errors.NewValidation("input", "ZIP mode requires an input file")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.NewIO("read", "stdin", err)
		}
		return data, nil
	}

	if zipMode || hasArchiveSuffix(path) {
		return archive.ReadFirstTxt(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	if archive.IsZip(data) {
		return nil, errors.NewValidation("input", "appears to be a ZIP file; use --zip option")
	}
	return data, nil
}

func hasArchiveSuffix(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".zip") ||
		strings.HasSuffix(lower, ".tar.gz") ||
		strings.HasSuffix(lower, ".tar.xz")
}
