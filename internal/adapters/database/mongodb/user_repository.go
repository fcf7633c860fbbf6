package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Max-Ceph/zaman-hacknu/internal/apperrors"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository persists users in the users collection.
type UserRepository struct {
	baseRepository
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(db)}
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) (string, error) {
	doc := userDocument{
		Username: user.Username,
		Password: user.PasswordHash,
		Profile: profileDocument{
			FirstName: user.Profile.FirstName,
			LastName:  user.Profile.LastName,
			Currency:  user.Profile.Currency,
		},
		Preferences: preferencesDoc{
			Notifications: notificationsDoc{
				Email: user.Preferences.Email,
				Push:  user.Preferences.Push,
			},
		},
		CreatedAt: user.CreatedAt,
	}
	res, err := r.collection(usersCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, user.Username)
		}
		return "", fmt.Errorf("inserting user: %w", err)
	}
	return insertedHex(res)
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := r.parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	var doc userDocument
	err = r.collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return doc.toDomain(), nil
}

// FindLatestUser returns the most recently created user, by createdAt.
func (r *UserRepository) FindLatestUser(ctx context.Context) (*domain.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var doc userDocument
	err := r.collection(usersCollection).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no users exist", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("finding latest user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDocument
	err := r.collection(usersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: username %q", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("finding user by username: %w", err)
	}
	return doc.toDomain(), nil
}
