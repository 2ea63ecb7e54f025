package renderer

import (
	"image"
	"image/color"
)

// BytesPerPixel is the number of channels stored per pixel (R, G, B)
const BytesPerPixel = 3

// Frame is a rendered image as a row-major RGB byte buffer, top row first
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// offset returns the index of the first byte of pixel (x, y), y = 0 at the top
func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * BytesPerPixel
}

// Set stores a pixel, y = 0 at the top
func (f *Frame) Set(x, y int, r, g, b uint8) {
	i := f.offset(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

// At returns a pixel, y = 0 at the top
func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := f.offset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// RGBA converts the frame into an opaque image for encoders
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
