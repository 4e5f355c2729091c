package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-lab-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of saved maze layouts.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a saved maze in the repository.
func (m *MazeRepo) Save(saved *dmn.SavedMaze) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": saved.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":   saved.OwnerID,
			"name":      saved.Name,
			"width":     saved.Width,
			"height":    saved.Height,
			"conn":      saved.Conn,
			"rows":      saved.Rows,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"createdAt": saved.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a saved maze by its ID.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.SavedMaze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var saved dmn.SavedMaze
	if err := m.collection.FindOne(ctx, filter).Decode(&saved); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maze not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &saved, nil
}

// ByOwner retrieves every saved maze owned by a user, newest first.
func (m *MazeRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.SavedMaze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.M{"updatedAt": -1})
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var mazes []*dmn.SavedMaze
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return mazes, nil
}
