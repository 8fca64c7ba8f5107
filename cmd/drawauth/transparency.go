package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirContents writes every transparency artefact into a directory, one file
// per key.
type dirContents struct {
	dir string
}

func (c *dirContents) Accepts(key string) bool {
	return true
}

func (c *dirContents) Accept(key, mime string, data []byte) error {
	ext := ".bin"
	switch mime {
	case "image/x-portable-graymap":
		ext = ".pgm"
	case "application/cbor":
		ext = ".cbor"
	}
	path := filepath.Join(c.dir, key+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
