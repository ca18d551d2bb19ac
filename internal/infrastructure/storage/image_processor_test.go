package storage

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// pngHeader returns a grayscale PNG signature + IHDR chunk declaring w x h.
// It is enough for image.DecodeConfig and costs a few bytes.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth, color type 0 (gray)

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestImageProcessor_ValidateImage(t *testing.T) {
	format, err := NewImageProcessor().ValidateImage(pngBytes(t, 20, 10))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, "image/png", ContentType(format))
	assert.Equal(t, "png", Extension(format))

	tests := []struct {
		name      string
		processor *ImageProcessor
		data      []byte
		wantErr   error
	}{
		{
			name:      "not an image",
			processor: NewImageProcessor(),
			data:      []byte("%PDF-1.4 definitely not an image"),
			wantErr:   ErrNotAnImage,
		},
		{
			name:      "over byte limit",
			processor: &ImageProcessor{MaxSize: 16, Quality: 85},
			data:      pngBytes(t, 20, 10),
			wantErr:   ErrImageTooLarge,
		},
		{
			name:      "small file declaring 20000x20000",
			processor: NewImageProcessor(),
			data:      pngHeader(20000, 20000),
			wantErr:   ErrImageTooLarge,
		},
		{
			name:      "over custom pixel cap",
			processor: &ImageProcessor{MaxSize: DefaultMaxImageSize, MaxPixels: 100, Quality: 85},
			data:      pngBytes(t, 20, 10),
			wantErr:   ErrImageTooLarge,
		},
		{
			name:      "at default pixel cap",
			processor: NewImageProcessor(),
			data:      pngHeader(8000, 5000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.processor.ValidateImage(tt.data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestImageProcessor_ProcessImageRejectsHugeHeader(t *testing.T) {
	_, err := NewImageProcessor().ProcessImage(pngHeader(20000, 20000))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImageProcessor_ProcessImageKeepsAspectRatio(t *testing.T) {
	p := NewImageProcessor()

	variants, err := p.ProcessImage(pngBytes(t, 1200, 600))
	require.NoError(t, err)
	require.Len(t, variants, len(VariantSizes))

	for name, size := range VariantSizes {
		img, err := imaging.Decode(bytes.NewReader(variants[name]))
		require.NoError(t, err, name)
		assert.Equal(t, size, img.Bounds().Dx(), name)
		assert.Equal(t, size/2, img.Bounds().Dy(), name)

		_, format, err := image.DecodeConfig(bytes.NewReader(variants[name]))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	}
}

func TestImageProcessor_ProcessImageDoesNotUpscale(t *testing.T) {
	variants, err := NewImageProcessor().ProcessImage(pngBytes(t, 100, 80))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(variants["medium"]))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}
