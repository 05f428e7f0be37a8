package service

// TokenSource mints opaque session tokens. A token is a bearer credential
// with no decodable structure; validity is determined solely by store lookup
// plus expiry comparison, never by parsing the token itself.
type TokenSource interface {
	// Generate returns a fresh cryptographically random token string.
	Generate() string
}
