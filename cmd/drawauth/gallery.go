package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/high-horse/drawauth/dhash"
)

// galleryFile is the on-disk list of enrolled subjects:
//
//	[subjects]
//	alice = "f0e0c0c0e0f0f8fc"
type galleryFile struct {
	Subjects map[string]dhash.Fingerprint `toml:"subjects"`
}

func loadGallery(path string) (map[string]dhash.Fingerprint, error) {
	var g galleryFile
	if _, err := toml.DecodeFile(path, &g); err != nil {
		return nil, fmt.Errorf("failed to load gallery %s: %w", path, err)
	}
	if len(g.Subjects) == 0 {
		return nil, fmt.Errorf("gallery %s has no subjects", path)
	}
	return g.Subjects, nil
}
