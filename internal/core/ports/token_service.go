package ports

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	Issue(userID, email, role string) (string, error)
	// Verify returns the embedded claims, domain.ErrTokenExpired when the
	// token is past its expiry, or domain.ErrInvalidToken otherwise.
	Verify(token string) (*TokenClaims, error)
}
