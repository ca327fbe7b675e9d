package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator renders the pickup link of an order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(PickupLink(g.BaseURL, orderID), qrcode.Medium, 256)
}

func PickupLink(baseURL string, orderID int) string {
	return fmt.Sprintf("%s/orders/%d/pickup", baseURL, orderID)
}
