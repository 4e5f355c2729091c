package i

import dmn "github.com/beka-birhanu/maze-lab-api/domain"

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
