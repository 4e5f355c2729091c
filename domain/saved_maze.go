package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	minMazeNameLength = 1
	maxMazeNameLength = 64
)

// SavedMaze represents the BSON version of a persisted maze layout.
// Rows hold one layout rune per cell: '.', '#', 'S', 'E'.
type SavedMaze struct {
	ID        uuid.UUID `bson:"_id"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Name      string    `bson:"name"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Conn      int       `bson:"conn"`
	Rows      []string  `bson:"rows"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// SavedMazeConfig holds parameters for creating a SavedMaze.
type SavedMazeConfig struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Conn    int
	Rows    []string
}

// NewSavedMaze creates a SavedMaze, validating name and layout shape.
func NewSavedMaze(config SavedMazeConfig) (*SavedMaze, error) {
	if len(config.Name) < minMazeNameLength || len(config.Name) > maxMazeNameLength {
		return nil, errors.New("invalid maze name length")
	}
	if len(config.Rows) == 0 || len(config.Rows[0]) == 0 {
		return nil, errors.New("maze layout must not be empty")
	}
	width := len(config.Rows[0])
	for _, row := range config.Rows {
		if len(row) != width {
			return nil, errors.New("maze layout rows must be rectangular")
		}
	}

	now := time.Now().UTC()
	return &SavedMaze{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Name:      config.Name,
		Width:     width,
		Height:    len(config.Rows),
		Conn:      config.Conn,
		Rows:      config.Rows,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
