// Package pdf rasterises PDF attachments so they can be sent to a vision model.
package pdf

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
	"github.com/kdduha/sceramath/internal/media"
)

const jpegQuality = 85

// Prepare turns an attachment into something the model accepts inline.
// PDFs become a JPEG of their first page, images pass through.
func Prepare(d media.DataURI) (media.DataURI, error) {
	if d.MimeType != media.MimePDF {
		return d, nil
	}

	raw, err := d.Bytes()
	if err != nil {
		return media.DataURI{}, err
	}
	img, err := Rasterize(raw, 0)
	if err != nil {
		return media.DataURI{}, fmt.Errorf("failed to convert pdf: %w", err)
	}
	return media.NewDataURI(media.MimeJPEG, img), nil
}

// Rasterize renders one page of a PDF document as JPEG bytes.
func Rasterize(raw []byte, page int) ([]byte, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (pages: %d)", page, doc.NumPage())
	}

	img, err := doc.Image(page)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
