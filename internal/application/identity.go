package application

import "context"

// ExternalIdentity is the normalized result of a third-party login.
type ExternalIdentity struct {
	Email string
	Name  string
}

// IdentityProvider is the bridge to an external OAuth2 provider. It is
// constructed once at wiring time and passed into handlers explicitly.
// Exchange returns (nil, nil) when the provider completed the flow without
// yielding a usable identity.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*ExternalIdentity, error)
}
