// Package clipboard reads images from the system clipboard so they can be
// attached to a message.
package clipboard

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"time"

	"golang.design/x/clipboard"

	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/upload"
)

// ImageData represents clipboard image data
type ImageData struct {
	Data   []byte // PNG encoded image data
	Width  int
	Height int
}

// initialized tracks whether the clipboard has been initialized
var initialized bool

// read is the raw clipboard reader; replaced in tests.
var read = func() ([]byte, error) {
	if !initialized {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: Failed to initialize: %v", err)
			return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
		}
		initialized = true
	}
	return clipboard.Read(clipboard.FmtImage), nil
}

// ReadImage attempts to read an image from the clipboard.
// Returns nil if clipboard doesn't contain an image.
func ReadImage() (*ImageData, error) {
	imgBytes, err := read()
	if err != nil {
		return nil, err
	}
	if len(imgBytes) == 0 {
		logger.Debug("Clipboard: No image data found")
		return nil, nil
	}

	img, format, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		logger.Warn("Clipboard: Failed to decode image: %v", err)
		return nil, fmt.Errorf("failed to decode clipboard image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("Clipboard: Image decoded: %dx%d, format=%s", bounds.Dx(), bounds.Dy(), format)

	// Re-encode as PNG for consistent format
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %w", err)
	}

	return &ImageData{Data: pngBuf.Bytes(), Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// Validate checks that the image can be attached.
func (img *ImageData) Validate() error {
	if len(img.Data) > upload.MaxFileSize {
		return fmt.Errorf("image too large: %d KB (max %d MB)", img.SizeKB(), upload.MaxFileSize>>20)
	}
	return nil
}

// SizeKB returns the image size in kilobytes
func (img *ImageData) SizeKB() int {
	return len(img.Data) / 1024
}

// FileName names a pasted image taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("clipboard-%s.png", t.Format("20060102-150405"))
}

// ReadAttachment reads the clipboard image as an attachment. It returns nil
// when the clipboard holds no image.
func ReadAttachment(now time.Time) (*upload.File, error) {
	img, err := ReadImage()
	if err != nil || img == nil {
		return nil, err
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	name := FileName(now)
	return &upload.File{Name: name, DataURL: upload.Encode(name, img.Data)}, nil
}
