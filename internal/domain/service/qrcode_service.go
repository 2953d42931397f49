package service

// QRCodeService renders contact deep links as QR codes.
type QRCodeService interface {
	// GenerateContactQR encodes link as a PNG image.
	GenerateContactQR(link string) ([]byte, error)
}
