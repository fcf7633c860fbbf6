package mongodb

import (
	"fmt"

	"github.com/Max-Ceph/zaman-hacknu/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection        = "users"
	accountsCollection     = "accounts"
	goalsCollection        = "goals"
	transactionsCollection = "transactions"
	chatHistoryCollection  = "chat_history"
)

// baseRepository carries the shared database handle and common helpers
// embedded by every concrete repository.
type baseRepository struct {
	db *mongo.Database
}

func newBaseRepository(db *mongo.Database) baseRepository {
	return baseRepository{db: db}
}

func (r baseRepository) collection(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// parseObjectID validates an external hex ID before it reaches a query.
func (r baseRepository) parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", apperrors.ErrValidation, id)
	}
	return oid, nil
}

// insertedHex extracts the generated ObjectID from an insert result.
func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
