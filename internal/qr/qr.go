// Package qr renders QR codes as inline PNG images.
package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the side of the generated image in pixels.
const DefaultSize = 256

const dataURIPrefix = "data:image/png;base64,"

type Coder struct {
	Size  int
	Level qrcode.RecoveryLevel
}

func NewCoder(size int) *Coder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Coder{Size: size, Level: qrcode.Medium}
}

// MakeBase64 encodes text as a QR code and returns it as a data URI.
func (c *Coder) MakeBase64(text string) (string, error) {
	png, err := qrcode.Encode(text, c.Level, c.Size)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}
