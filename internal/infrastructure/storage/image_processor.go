package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxImageSize   = 5 * 1024 * 1024 // 5MB
	DefaultMaxImagePixels = 40_000_000      // 40 MP, bounds the decoded bitmap
)

var (
	ErrImageTooLarge = errors.New("image too large")
	ErrNotAnImage    = errors.New("not a supported image")
)

// VariantSizes maps each generated variant to its bounding box (pixels).
var VariantSizes = map[string]int{
	"thumbnail": 300,
	"medium":    600,
}

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
}

var extensions = map[string]string{
	"jpeg": "jpg",
	"png":  "png",
	"gif":  "gif",
}

type ImageProcessor struct {
	MaxSize   int64 // bytes
	MaxPixels int64 // width * height declared in the header
	Quality   int   // JPEG quality of the variants
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: DefaultMaxImageSize, MaxPixels: DefaultMaxImagePixels, Quality: 85}
}

// ValidateImage checks the byte size, then the header: format and pixel count.
// Returns the format name ("jpeg", "png", "gif").
func (p *ImageProcessor) ValidateImage(data []byte) (string, error) {
	if int64(len(data)) > p.MaxSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(data), p.MaxSize)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if _, ok := contentTypes[format]; !ok {
		return "", fmt.Errorf("%w: format %s not allowed", ErrNotAnImage, format)
	}
	if p.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > p.MaxPixels {
		return "", fmt.Errorf("%w: %dx%d pixels (max %d)", ErrImageTooLarge, cfg.Width, cfg.Height, p.MaxPixels)
	}
	return format, nil
}

// ContentType returns the MIME type of a validated format
func ContentType(format string) string {
	return contentTypes[format]
}

// Extension returns the file extension of a validated format
func Extension(format string) string {
	return extensions[format]
}

// ProcessImage returns map[variant]jpegBytes; each variant fits its box
// and keeps the aspect ratio.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	// the worker decodes objects it did not validate itself
	if _, err := p.ValidateImage(data); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	variants := make(map[string][]byte, len(VariantSizes))
	for name, size := range VariantSizes {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		b := new(bytes.Buffer)
		if err := imaging.Encode(b, resized, imaging.JPEG, imaging.JPEGQuality(p.Quality)); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = b.Bytes()
	}
	return variants, nil
}
