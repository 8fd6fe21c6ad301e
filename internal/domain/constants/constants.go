// Package constants contains values shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Offer list pagination.
const (
	DefaultOfferPageSize = 6
	MaxOfferPageSize     = 10
)
