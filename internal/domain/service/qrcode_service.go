package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// ServicePageQR generates a PNG QR code pointing at a service page URL
	ServicePageQR(pageURL string) ([]byte, error)
}
