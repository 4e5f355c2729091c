package service

import (
	"errors"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/maze-lab-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo is an in-memory UserRepo keyed by username.
type memUserRepo struct {
	users map[string]*dmn.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*dmn.User)}
}

func (r *memUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memUserRepo) ByUsername(username string) (*dmn.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

// fakeTokenizer issues a fixed token and records the claims it saw.
type fakeTokenizer struct {
	claims map[string]interface{}
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	f.claims = claims
	return "token", nil
}

func (f *fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	return f.claims, nil
}

func TestAuthRegister(t *testing.T) {
	repo := newMemUserRepo()
	auth, err := NewAuthService(repo, &fakeTokenizer{})
	require.NoError(t, err)

	require.NoError(t, auth.Register("maze_walker", "correct-horse-battery"))
	assert.Contains(t, repo.users, "maze_walker")

	assert.Error(t, auth.Register("maze_walker", "weak"))
}

func TestAuthSignIn(t *testing.T) {
	repo := newMemUserRepo()
	tokenizer := &fakeTokenizer{}
	auth, err := NewAuthService(repo, tokenizer)
	require.NoError(t, err)
	require.NoError(t, auth.Register("maze_walker", "correct-horse-battery"))

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := auth.SignIn("maze_walker", "correct-horse-battery")
		require.NoError(t, err)
		assert.Equal(t, "maze_walker", user.Username)
		assert.Equal(t, "token", token)
		assert.Equal(t, user.ID, tokenizer.claims["userID"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("maze_walker", "wrong")
		assert.Error(t, err)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := auth.SignIn("nobody", "correct-horse-battery")
		assert.Error(t, err)
	})
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService(nil, &fakeTokenizer{})
	assert.Error(t, err)
	_, err = NewAuthService(newMemUserRepo(), nil)
	assert.Error(t, err)
}
