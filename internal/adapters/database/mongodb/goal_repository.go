package mongodb

import (
	"context"
	"fmt"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GoalRepository persists savings goals in the goals collection.
type GoalRepository struct {
	baseRepository
}

var _ portsrepo.GoalRepository = (*GoalRepository)(nil)

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{baseRepository: newBaseRepository(db)}
}

func (r *GoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) (string, error) {
	userOID, err := r.parseObjectID(goal.UserID)
	if err != nil {
		return "", err
	}
	target, err := toDecimal128(goal.TargetAmount)
	if err != nil {
		return "", fmt.Errorf("converting targetAmount: %w", err)
	}
	current, err := toDecimal128(goal.CurrentAmount)
	if err != nil {
		return "", fmt.Errorf("converting currentAmount: %w", err)
	}
	doc := goalDocument{
		UserID:        userOID,
		GoalType:      goal.GoalType,
		GoalName:      goal.GoalName,
		TargetAmount:  target,
		CurrentAmount: current,
		Status:        string(goal.Status),
		CreatedAt:     goal.CreatedAt,
	}
	res, err := r.collection(goalsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting goal: %w", err)
	}
	return insertedHex(res)
}

func (r *GoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	userOID, err := r.parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection(goalsCollection).Find(ctx, bson.M{"userId": userOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []domain.Goal
	for cursor.Next(ctx) {
		var doc goalDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding goal: %w", err)
		}
		goal, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}
