// Package fs provides filesystem access for documents.
package fs

import (
	"os"
	"unicode/utf8"

	"github.com/fwojciec/pagetext"
)

// ReadFileContent reads the full content of the file at path as UTF-8 text.
// The whole file is read in one call; there is no streaming.
func ReadFileContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", pagetext.Errorf(pagetext.ENOTFOUND, "File not found: %s", path)
		}
		return "", pagetext.Errorf(pagetext.EIO, "Error reading file: %v", err)
	}

	if !info.Mode().IsRegular() {
		return "", pagetext.Errorf(pagetext.EINVALID, "Path is not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", pagetext.Errorf(pagetext.EIO, "Error reading file: %v", err)
	}

	if !utf8.Valid(data) {
		return "", pagetext.Errorf(pagetext.EIO, "Error reading file: %s is not valid UTF-8", path)
	}

	return string(data), nil
}
