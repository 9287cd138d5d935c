package spritetool

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/akeil/spritetool/internal/logging"
)

// Decoder reads the image at path.
type Decoder func(path string) (image.Image, error)

// image file extensions for which a decoder is registered
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile tells if path has the extension of a supported image format.
func IsImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// DecodeFile reads and decodes the image file at path.
//
// Open failures are reported as IOError, undecodable content as DecodeError.
func DecodeFile(path string) (image.Image, error) {
	logging.Debug("Decode image from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	logging.Debug("Decoded %v image %q, %v", format, path, img.Bounds().Size())

	return img, nil
}

// Sheet image formats. All of them keep the alpha channel.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// FormatForPath determines the sheet image format from the file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return "", NewValidationError("unsupported sheet image format %q", filepath.Ext(path))
}

// EncodeSheet writes img to w in the given format.
func EncodeSheet(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG, "":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported sheet image format %q", format)
	}
}
