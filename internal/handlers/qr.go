package handlers

import (
	"log"
	"net/http"

	qr "github.com/aaronzipp/imposter/internal/qrcode"
)

// tableQR renders a QR code that opens the table on another browser
func (ctx *Context) tableQR(w http.ResponseWriter, r *http.Request, id string) {
	base := ctx.BaseURL
	if base == "" {
		base = "http://" + r.Host
	}
	png, err := qr.ForTable(base, id)
	if err != nil {
		log.Printf("tableQR: %v", err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
