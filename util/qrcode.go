package util

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQrCode renders a table's QR token as a base64-encoded PNG.
func GenerateQrCode(token string) (string, error) {
	png, err := qrcode.Encode(token, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
