package grader

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg"

	"github.com/gen2brain/go-fitz"
	_ "golang.org/x/image/webp"

	"paper-grader/api/internal/util"
)

// Document — изображение, готовое к отправке в движок извлечения.
type Document struct {
	Image []byte
	MIME  string
}

// DecodeError хранит обе причины: ни как картинка, ни как PDF файл не прочитался.
type DecodeError struct {
	ImageErr error
	PDFErr   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file is neither a decodable image (%v) nor a rasterizable PDF (%v)", e.ImageErr, e.PDFErr)
}

func (e *DecodeError) Unwrap() []error { return []error{e.ImageErr, e.PDFErr} }

// DecodeDocument: сначала дешёвый путь — фото (JPEG/PNG/WebP); на неудаче
// пробуем PDF и растеризуем только первую страницу.
func DecodeDocument(data []byte) (Document, error) {
	_, _, imgErr := image.Decode(bytes.NewReader(data))
	if imgErr == nil {
		return Document{Image: data, MIME: util.PickMIME("", "", data)}, nil
	}
	doc, pdfErr := rasterizeFirstPage(data)
	if pdfErr == nil {
		return doc, nil
	}
	return Document{}, &DecodeError{ImageErr: imgErr, PDFErr: pdfErr}
}

func rasterizeFirstPage(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Document{}, err
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return Document{}, fmt.Errorf("document has no pages")
	}
	img, err := doc.Image(0)
	if err != nil {
		return Document{}, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Document{}, err
	}
	return Document{Image: buf.Bytes(), MIME: "image/png"}, nil
}
