package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"coderr/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(128, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, 128, svc.size)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 300, svc.size)
	assert.Equal(t, qrcode.Highest, svc.errorCorrectionLevel)

	fallback, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 256, fallback.size)
}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	svc := newQRCodeService(200, "M")

	pngBytes, err := svc.GenerateOfferQR(5, "https://coderr.example/api/offers/5/")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestQRCodeService_GenerateOfferQR_RequiresInput(t *testing.T) {
	svc := newQRCodeService(200, "M")

	_, err := svc.GenerateOfferQR(0, "https://coderr.example/api/offers/0/")
	assert.Error(t, err)

	_, err = svc.GenerateOfferQR(5, "")
	assert.Error(t, err)
}
