package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestThumbnailJPEG(t *testing.T) {
	result, err := Thumbnail(createTestJPEG(100, 100), ThumbnailDimension)
	if err != nil {
		t.Fatalf("Thumbnail JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestThumbnailPNG(t *testing.T) {
	result, err := Thumbnail(createTestPNG(100, 100), ThumbnailDimension)
	if err != nil {
		t.Fatalf("Thumbnail PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (always outputs JPEG), got %s", result.MIME)
	}
}

func TestThumbnailDownscale(t *testing.T) {
	result, err := Thumbnail(createTestJPEG(1024, 512), ThumbnailDimension)
	if err != nil {
		t.Fatalf("Thumbnail large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != ThumbnailDimension || bounds.Dy() != ThumbnailDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", ThumbnailDimension, ThumbnailDimension/2, bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailSmallImageNotUpscaled(t *testing.T) {
	result, err := Thumbnail(createTestJPEG(50, 50), ThumbnailDimension)
	if err != nil {
		t.Fatalf("Thumbnail small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailRejectsUnsupported(t *testing.T) {
	for _, data := range [][]byte{[]byte("not an image"), []byte("GIF89a...")} {
		if _, err := Thumbnail(data, ThumbnailDimension); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"data:image/png;base64,aGVsbG8=", "hello", false},
		{"data:text/plain;base64,", "", false},
		{"", "", true},
		{"https://example.com/a.png", "", true},
		{"data:image/png,raw", "", true},
		{"data:image/png;base64", "", true},
		{"data:image/png;base64,!!!", "", true},
	}

	for _, tt := range tests {
		got, err := DecodeDataURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("DecodeDataURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("DecodeDataURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestThumbnailFromDataURL(t *testing.T) {
	result, err := ThumbnailFromDataURL(dataURL("image/png", createTestPNG(20, 10)), ThumbnailDimension)
	if err != nil {
		t.Fatalf("ThumbnailFromDataURL: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}

	if _, err := ThumbnailFromDataURL("plain text", ThumbnailDimension); !errors.Is(err, ErrNotDataURL) {
		t.Errorf("expected ErrNotDataURL, got %v", err)
	}
}
