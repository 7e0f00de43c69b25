// Package qr renders scannable code payloads as PNG data URLs, the
// format the storefront embeds directly into an <img> tag.
package qr

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const imageSize = 256

// DataURL encodes content as a QR code PNG and returns it as a base64
// data URL.
func DataURL(content string) (string, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err = png.Encode(buf, code.Image(imageSize)); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
