package ports

import "context"

// Authenticator is the external auth capability. The browser/popup token
// exchange lives behind it; the pipeline only ever asks for a token.
// Login with forceReauth discards any cached session so the token may come
// from a different identity.
type Authenticator interface {
	Login(ctx context.Context, forceReauth bool) (token string, err error)

	// CurrentIdentity names the signed-in account for display in the
	// unauthorized-state message.
	CurrentIdentity() string
}
