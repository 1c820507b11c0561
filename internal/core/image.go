// Core image data structure holding the immutable original
package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// ImageData owns the original image. It is written once at construction and
// only handed out as clones, so every pipeline run starts from the same pixels.
type ImageData struct {
	original gocv.Mat
	filepath string
	metadata ImageMetadata
}

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Type     gocv.MatType
	Format   string
}

// NewImageData validates mat and stores a private copy of it.
func NewImageData(mat gocv.Mat, path string) (*ImageData, error) {
	if err := ValidateImage(mat); err != nil {
		return nil, err
	}
	if mat.Channels() != 3 {
		return nil, fmt.Errorf("expected a 3-channel BGR image, got %d channels", mat.Channels())
	}

	return &ImageData{
		original: mat.Clone(),
		filepath: path,
		metadata: ImageMetadata{
			Width:    mat.Cols(),
			Height:   mat.Rows(),
			Channels: mat.Channels(),
			Type:     mat.Type(),
			Format:   getFormatFromPath(path),
		},
	}, nil
}

// GetOriginal returns a copy of the original image. The caller closes it.
func (img *ImageData) GetOriginal() gocv.Mat {
	return img.original.Clone()
}

// GetMetadata returns image metadata
func (img *ImageData) GetMetadata() ImageMetadata {
	return img.metadata
}

// GetFilepath returns the path the image was loaded from
func (img *ImageData) GetFilepath() string {
	return img.filepath
}

// Close releases the native buffer.
func (img *ImageData) Close() error {
	return img.original.Close()
}

func getFormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

// ValidateImage validates an OpenCV Mat for basic requirements
func ValidateImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}

	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}

	channels := mat.Channels()
	if channels < 1 || channels > 4 {
		return fmt.Errorf("unsupported channel count: %d", channels)
	}

	return nil
}
