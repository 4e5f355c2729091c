// Package studioapi provides structures and utilities for the maze editor
// and algorithm-control endpoints.
package studioapi

import (
	"errors"

	"github.com/beka-birhanu/maze-lab-api/maze"
)

// CreateMazeRequest asks for a new maze session.
type CreateMazeRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Conn   int    `json:"conn"` // 4 (default) or 8
	Fill   string `json:"fill"` // "empty" (default) or "obstacle"
}

// CreateMazeResponse returns the new session ID.
type CreateMazeResponse struct {
	ID string `json:"id"`
}

// SetCellRequest mutates one cell kind.
type SetCellRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind" binding:"required"` // empty|obstacle|start|end
}

// SolveRequest starts a path-finder run.
type SolveRequest struct {
	Variant string `json:"variant" binding:"required"` // bfs|dijkstra
}

// GenerateRequest starts a randomizer run.
type GenerateRequest struct {
	Density *int           `json:"density,omitempty"`
	Seed    int64          `json:"seed,omitempty"`
	Root    *maze.Position `json:"root,omitempty"`
}

// DelayRequest updates inter-generation pacing.
type DelayRequest struct {
	MS int `json:"ms"`
}

// SaveMazeRequest persists the session layout under a name.
type SaveMazeRequest struct {
	Name string `json:"name" binding:"required"`
}

// SavedMazeResponse identifies a persisted layout.
type SavedMazeResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Conn   int      `json:"conn"`
	Rows   []string `json:"rows"`
}

// parseConn maps the request connectivity to the grid rule.
func parseConn(conn int) (maze.Connectivity, error) {
	switch conn {
	case 0, 4:
		return maze.Conn4, nil
	case 8:
		return maze.Conn8, nil
	default:
		return maze.Conn4, errors.New("conn must be 4 or 8")
	}
}

// parseFill maps the request fill to a cell kind.
func parseFill(fill string) (maze.Kind, error) {
	switch fill {
	case "", "empty":
		return maze.KindEmpty, nil
	case "obstacle":
		return maze.KindObstacle, nil
	default:
		return maze.KindEmpty, errors.New("fill must be empty or obstacle")
	}
}

// parseKind maps the request kind to a cell kind.
func parseKind(kind string) (maze.Kind, error) {
	switch kind {
	case "empty":
		return maze.KindEmpty, nil
	case "obstacle":
		return maze.KindObstacle, nil
	case "start":
		return maze.KindStart, nil
	case "end":
		return maze.KindEnd, nil
	default:
		return maze.KindEmpty, errors.New("kind must be empty, obstacle, start or end")
	}
}
