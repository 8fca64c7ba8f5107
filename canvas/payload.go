package canvas

import (
	"encoding/base64"
	"errors"
	"strings"
)

// RawImage is an encoded raster as received from a drawing pad, together with
// the media type declared in its data-URI header, if any.
type RawImage struct {
	MediaType string
	Data      []byte
}

// DecodePayload decodes base64 canvas output. A data-URI header such as
// "data:image/png;base64," is optional; when the string contains a comma only
// the text after the last comma is decoded.
func DecodePayload(payload string) (RawImage, error) {
	var raw RawImage

	payload = strings.TrimSpace(payload)
	if i := strings.LastIndexByte(payload, ','); i >= 0 {
		raw.MediaType = mediaType(payload[:i])
		payload = payload[i+1:]
	}
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, payload)
	if payload == "" {
		return raw, &DecodeError{Op: "base64", Err: errors.New("empty payload")}
	}

	enc := base64.StdEncoding
	if !strings.HasSuffix(payload, "=") && len(payload)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	data, err := enc.DecodeString(payload)
	if err != nil {
		return raw, &DecodeError{Op: "base64", Err: err}
	}
	raw.Data = data
	return raw, nil
}

// mediaType extracts "image/png" from "data:image/png;base64".
func mediaType(header string) string {
	header = strings.TrimPrefix(header, "data:")
	if i := strings.IndexByte(header, ';'); i >= 0 {
		header = header[:i]
	}
	return strings.ToLower(strings.TrimSpace(header))
}
