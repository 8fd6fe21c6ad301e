package entity

// BaseInfo is the platform-wide summary shown on the landing page.
type BaseInfo struct {
	ReviewCount          int64
	AverageRating        float64
	BusinessProfileCount int64
	OfferCount           int64
}
