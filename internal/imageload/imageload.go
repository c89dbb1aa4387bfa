// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imageload resolves manifest image paths to pixel data ready for
// PDF embedding, normalizing color modes the PDF writer cannot take as-is.
package imageload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/storyforge/bindery/pkg/types"
)

// Skip reasons. Callers log these and continue with the next page; they are
// never fatal to a render.
var (
	// ErrObjectStorePath marks paths under an objects/ storage prefix.
	// Remote object-storage sources are out of scope.
	ErrObjectStorePath = errors.New("object storage path not supported")

	// ErrNotFound marks image paths that do not exist locally.
	ErrNotFound = errors.New("image not found")
)

// Image is a decoded-and-normalized image ready for registration with the
// PDF writer.
type Image struct {
	// Width and Height are the pixel dimensions.
	Width  int
	Height int

	// Data is the embeddable byte stream.
	Data io.Reader

	// Type is the PDF writer's image type tag: "JPG" or "PNG".
	Type string
}

// isObjectStorePath reports whether path points into object storage
// (an objects/ or /objects/ prefix).
func isObjectStorePath(path string) bool {
	return strings.HasPrefix(path, "objects/") || strings.HasPrefix(path, "/objects/")
}

// Load resolves path to an embeddable Image. Baseline JPEG and opaque 8-bit
// PNG pass through byte-for-byte; every other decodable input (alpha PNG,
// 16-bit channels, paletted PNG, GIF, WebP) is flattened onto a white
// background and re-encoded as JPEG at the given quality.
//
// Object-storage paths and missing files return ErrObjectStorePath and
// ErrNotFound respectively so callers can skip and continue.
func Load(path string, jpegQuality int) (*Image, error) {
	if jpegQuality <= 0 {
		jpegQuality = types.DefaultJPEGQuality
	}

	if isObjectStorePath(path) {
		return nil, fmt.Errorf("%w: %s", ErrObjectStorePath, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if typ, ok := passthroughType(format, cfg.ColorModel); ok {
		return &Image{
			Width:  cfg.Width,
			Height: cfg.Height,
			Data:   bytes.NewReader(data),
			Type:   typ,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	flat := flattenToWhite(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("re-encoding %s: %w", path, err)
	}

	b := flat.Bounds()
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Data:   &buf,
		Type:   "JPG",
	}, nil
}

// Probe checks whether path would load, without reading pixel data beyond
// the image header. It returns the pixel dimensions on success and the same
// skip errors as Load otherwise.
func Probe(path string) (width, height int, err error) {
	if isObjectStorePath(path) {
		return 0, 0, fmt.Errorf("%w: %s", ErrObjectStorePath, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// passthroughType reports whether the encoded bytes can be embedded without
// re-encoding, and with which PDF image type tag. A JPEG qualifies when it is
// color (YCbCr) or grayscale; CMYK JPEGs are re-encoded because embedding
// them verbatim yields an inverted DeviceCMYK stream. A PNG qualifies only
// when its color model is 8-bit truecolor or grayscale without an alpha
// channel.
func passthroughType(format string, model color.Model) (string, bool) {
	switch format {
	case "jpeg":
		if model == color.YCbCrModel || model == color.GrayModel {
			return "JPG", true
		}
	case "png":
		if model == color.RGBAModel || model == color.GrayModel {
			return "PNG", true
		}
	}
	return "", false
}

// flattenToWhite composites img over an opaque white background, collapsing
// alpha and 16-bit channels to 8-bit RGB.
func flattenToWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
