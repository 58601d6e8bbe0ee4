package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// maxPhotoDimension ограничивает размер хранимых фотографий; баннеры и
// фото профиля приводятся к этому пределу перед записью в хранилище.
const maxPhotoDimension = 1600

// Processor нормализует загружаемые фотографии: уменьшает слишком большие
// изображения и пережимает их с заданным JPEG-качеством.
type Processor struct {
	quality int
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Normalize декодирует изображение, при необходимости уменьшает его и
// кодирует обратно в исходный формат. Поддерживаются JPEG и PNG.
func (p *Processor) Normalize(reader io.Reader) (io.Reader, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = p.shrink(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, nil
}

// shrink уменьшает изображение до maxPhotoDimension по большей стороне,
// сохраняя пропорции. Маленькие изображения не трогаем.
func (p *Processor) shrink(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxPhotoDimension && height <= maxPhotoDimension {
		return img
	}

	newWidth := maxPhotoDimension
	newHeight := maxPhotoDimension
	if width > height {
		newHeight = height * maxPhotoDimension / width
	} else {
		newWidth = width * maxPhotoDimension / height
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
