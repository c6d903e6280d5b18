// Package constants contains string constants shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Context keys set by the auth middleware.
const (
	CtxUserUID   = "userUID"
	CtxUserEmail = "userEmail"
	CtxActor     = "actor"
)
