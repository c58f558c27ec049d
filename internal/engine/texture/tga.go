// Package texture decodes heightmap and mask images from disk.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed      = 2  // Uncompressed true-color
	TGATypeGray              = 3  // Uncompressed grayscale
	TGATypeRLE               = 10 // RLE compressed true-color
	TGATypeRLEGray           = 11 // RLE compressed grayscale
	tgaHeaderSize            = 18
	tgaDescriptorTopToBottom = 0x20
)

// DecodeTGA decodes a TGA image file.
// True-color images (types 2 and 10, 24/32 bpp) decode to *image.NRGBA.
// Grayscale images (types 3 and 11, 8 bpp) decode to *image.Gray, which is
// the usual encoding for exported heightmaps.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}

	gray := imageType == TGATypeGray || imageType == TGATypeRLEGray
	switch imageType {
	case TGATypeUncompressed, TGATypeRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("unsupported TGA bit depth %d for true-color", bpp)
		}
	case TGATypeGray, TGATypeRLEGray:
		if bpp != 8 {
			return nil, fmt.Errorf("unsupported TGA bit depth %d for grayscale", bpp)
		}
	default:
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := &tgaDecoder{
		src:         data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: descriptor&tgaDescriptorTopToBottom != 0,
	}
	if gray {
		d.gray = image.NewGray(image.Rect(0, 0, width, height))
	} else {
		d.color = image.NewNRGBA(image.Rect(0, 0, width, height))
	}

	var err error
	if imageType == TGATypeRLE || imageType == TGATypeRLEGray {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}

	if gray {
		return d.gray, nil
	}
	return d.color, nil
}

type tgaDecoder struct {
	src         []byte
	width       int
	height      int
	bpp         int
	topToBottom bool
	gray        *image.Gray
	color       *image.NRGBA
}

// put writes the pixel stored at src[i:] to the n-th pixel in file order.
func (d *tgaDecoder) put(n, i int) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}

	if d.gray != nil {
		d.gray.SetGray(x, y, color.Gray{Y: d.src[i]})
		return
	}

	// Stored as BGR(A)
	a := uint8(255)
	if d.bpp == 4 {
		a = d.src[i+3]
	}
	d.color.SetNRGBA(x, y, color.NRGBA{R: d.src[i+2], G: d.src[i+1], B: d.src[i], A: a})
}

func (d *tgaDecoder) decodeRaw() error {
	count := d.width * d.height
	if len(d.src) < count*d.bpp {
		return fmt.Errorf("TGA pixel data truncated")
	}
	for n := range count {
		d.put(n, n*d.bpp)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	count := d.width * d.height
	n := 0
	i := 0

	for n < count {
		if i >= len(d.src) {
			return fmt.Errorf("TGA RLE data truncated at pixel %d of %d", n, count)
		}
		packet := d.src[i]
		i++
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel repeated
			if i+d.bpp > len(d.src) {
				return fmt.Errorf("TGA RLE data truncated at pixel %d of %d", n, count)
			}
			for k := 0; k < run && n < count; k++ {
				d.put(n, i)
				n++
			}
			i += d.bpp
			continue
		}

		// Raw packet
		for k := 0; k < run && n < count; k++ {
			if i+d.bpp > len(d.src) {
				return fmt.Errorf("TGA RLE data truncated at pixel %d of %d", n, count)
			}
			d.put(n, i)
			i += d.bpp
			n++
		}
	}

	return nil
}
