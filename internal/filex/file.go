// Package filex validates and reads study documents before upload. The
// indexing workflow only accepts PDF and plain-text files up to 25MB, so
// both checks happen locally before any bytes leave the machine.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the upper bound the indexing webhook accepts.
const MaxUploadSize = 25 << 20 // 25MB

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// contentTypes maps accepted file extensions to their MIME types.
var contentTypes = map[string]string{
	".pdf": "application/pdf",
	".txt": "text/plain",
}

// ContentType resolves the MIME type of a document from its file name.
// Returns ErrUnsupportedType for anything other than PDF or plain text.
func ContentType(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	ct, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s (only PDF and TXT allowed)", ErrUnsupportedType, ext)
	}
	return ct, nil
}

// ReadDocument reads the file at path, enforcing MaxUploadSize. The size is
// checked via Stat before reading so an oversized file is never loaded
// into memory.
func ReadDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxUploadSize {
		return nil, fmt.Errorf("%w: %.2fMB, maximum 25MB", ErrTooLarge, float64(info.Size())/(1<<20))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
