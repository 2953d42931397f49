// Package qrcode renders listing contact links as PNG QR codes.
package qrcode

import (
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/service"
	"vitrine/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:  size,
		level: parseRecoveryLevel(level),
	}
}

// parseRecoveryLevel maps the L/M/Q/H letters onto go-qrcode levels; Medium otherwise.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) GenerateContactQR(link string) ([]byte, error) {
	if link == "" {
		return nil, errors.New("empty link")
	}

	png, err := qrcode.Encode(link, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
