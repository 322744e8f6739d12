package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.BoardRepo = &BoardRepo{}

// boardDocument is the stored shape of a board. Walls are kept as a list of
// positions so sparse boards stay small.
type boardDocument struct {
	ID        string              `bson:"_id"`
	Size      int                 `bson:"size"`
	Start     grid.CellPosition   `bson:"start"`
	End       grid.CellPosition   `bson:"end"`
	Walls     []grid.CellPosition `bson:"walls"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func toDocument(board *dmn.Board) boardDocument {
	walls := board.Layout.Walls
	if walls == nil {
		walls = []grid.CellPosition{}
	}
	return boardDocument{
		ID:        board.ID.String(),
		Size:      board.Layout.Size,
		Start:     board.Layout.Start,
		End:       board.Layout.End,
		Walls:     walls,
		UpdatedAt: board.UpdatedAt,
	}
}

func fromDocument(doc boardDocument) (*dmn.Board, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("stored board has malformed id %q: %w", doc.ID, err)
	}
	return &dmn.Board{
		ID: id,
		Layout: grid.Layout{
			Size:  doc.Size,
			Start: doc.Start,
			End:   doc.End,
			Walls: doc.Walls,
		},
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// BoardRepo handles the persistence of board layouts in MongoDB.
type BoardRepo struct {
	collection *mongo.Collection
}

// NewBoardRepo creates a new BoardRepo with the given MongoDB client, database name, and collection name.
func NewBoardRepo(client *mongo.Client, dbName, collectionName string) *BoardRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &BoardRepo{
		collection: collection,
	}
}

// Save inserts or updates a board in the repository.
// If the board already exists, its layout is replaced.
func (b *BoardRepo) Save(ctx context.Context, board *dmn.Board) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	doc := toDocument(board)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"size":      doc.Size,
			"start":     doc.Start,
			"end":       doc.End,
			"walls":     doc.Walls,
			"updatedAt": doc.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := b.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a board by its ID.
// Returns an error wrapping ErrBoardNotFound if no board has that ID.
func (b *BoardRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id.String()}
	var doc boardDocument
	if err := b.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", dmn.ErrBoardNotFound, id)
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return fromDocument(doc)
}
