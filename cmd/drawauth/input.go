package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/high-horse/drawauth/canvas"
)

// readDrawing loads a drawing from path ("-" for stdin). The file may hold an
// encoded raster or base64 canvas output with or without a data-URI header.
func readDrawing(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read drawing: %w", err)
	}

	if !isPayloadText(data) {
		return data, nil
	}
	raw, err := canvas.DecodePayload(string(data))
	if err != nil {
		return nil, err
	}
	return raw.Data, nil
}

// isPayloadText reports whether data looks like base64 text rather than a
// raster. Text rasters such as plain PGM are recognised by their decoder
// before the base64 alphabet is checked.
func isPayloadText(data []byte) bool {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return false
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return false
	}
	if bytes.HasPrefix(data, []byte("data:")) {
		return true
	}
	for _, c := range data {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=', c == '\n', c == '\r', c == ' ', c == '\t':
		default:
			return false
		}
	}
	return true
}
