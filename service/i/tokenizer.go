package i

import "time"

// Tokenizer issues and validates access tokens.
type Tokenizer interface {
	// Generate creates a token carrying the given claims.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)
	// Decode parses and validates a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
