package i

import (
	dmn "github.com/beka-birhanu/maze-lab-api/domain"
	"github.com/google/uuid"
)

// UserRepo handles the persistence of user models.
type UserRepo interface {
	// Save inserts or updates a user.
	Save(user *dmn.User) error
	// ByID retrieves a user by ID.
	ByID(id uuid.UUID) (*dmn.User, error)
	// ByUsername retrieves a user by username.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo handles the persistence of saved maze layouts.
type MazeRepo interface {
	// Save inserts or updates a saved maze.
	Save(m *dmn.SavedMaze) error
	// ByID retrieves a saved maze by ID.
	ByID(id uuid.UUID) (*dmn.SavedMaze, error)
	// ByOwner lists the saved mazes owned by a user.
	ByOwner(ownerID uuid.UUID) ([]*dmn.SavedMaze, error)
}
