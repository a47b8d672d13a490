package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Size is the PNG edge length in pixels
const Size = 256

// TableLink is the address a scanned code opens
func TableLink(baseURL, tableID string) string {
	return strings.TrimRight(baseURL, "/") + "/tables/" + url.PathEscape(tableID)
}

// ForTable encodes the link to a table as a PNG
func ForTable(baseURL, tableID string) ([]byte, error) {
	png, err := qr.Encode(TableLink(baseURL, tableID), qr.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("qr for table %s: %w", tableID, err)
	}
	return png, nil
}
