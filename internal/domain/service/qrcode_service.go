package service

// QRCodeService renders share codes for offers.
type QRCodeService interface {
	// GenerateOfferQR returns a PNG encoding the public link of the offer.
	GenerateOfferQR(offerID uint, link string) ([]byte, error)
}
