// Package artwork normalizes generated images into the canonical collection
// format.
package artwork

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// Side is the edge length of the canonical artwork, px.
	Side = 1024
	// ThumbSide is the edge length of gallery thumbnails, px.
	ThumbSide = 256
)

// Image is normalized artwork together with its thumbnail, both PNG-encoded.
type Image struct {
	PNG   []byte
	Thumb []byte
}

// Normalize decodes b, center-crops it to a Side×Side square and re-encodes
// it to PNG. Re-encoding also drops any metadata the backend attached.
func Normalize(b []byte) (*Image, error) {
	src, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	full := imaging.Fill(src, Side, Side, imaging.Center, imaging.Lanczos)
	thumb := imaging.Resize(full, ThumbSide, ThumbSide, imaging.Lanczos)

	var fullBuf bytes.Buffer
	if err := imaging.Encode(&fullBuf, full, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &Image{PNG: fullBuf.Bytes(), Thumb: thumbBuf.Bytes()}, nil
}
