package imageutils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func samplePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 255, G: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode sample: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeAndResize(t *testing.T) {
	img, err := DecodeAndResize(samplePNG(t, 50, 50), 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDecodeAndResize_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not an image", []byte("<html>not found</html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAndResize(tt.data, 100, 100); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestDecodeAndResize_InvalidSize(t *testing.T) {
	if _, err := DecodeAndResize(samplePNG(t, 4, 4), 0, 100); err == nil {
		t.Fatal("expected error for zero width, got nil")
	}
}

func TestEncodeDataURI(t *testing.T) {
	img, err := DecodeAndResize(samplePNG(t, 10, 10), 20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uri, err := EncodeDataURI(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected data URI prefix, got %q", uri[:30])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if decoded.Bounds().Dx() != 20 {
		t.Errorf("expected width 20, got %d", decoded.Bounds().Dx())
	}
}
