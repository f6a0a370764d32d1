// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Activity event topics published after a committed mutation
const (
	ActivityHandshakeSent      = "handshake.sent"
	ActivityHandshakeResponded = "handshake.responded"
	ActivityMomentCreated      = "moment.created"
	ActivityMomentViewed       = "moment.viewed"
)
