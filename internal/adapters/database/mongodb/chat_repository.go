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

// ChatHistoryRepository persists chat turns in the chat_history collection.
type ChatHistoryRepository struct {
	baseRepository
}

var _ portsrepo.ChatHistoryRepository = (*ChatHistoryRepository)(nil)

func NewChatHistoryRepository(db *mongo.Database) *ChatHistoryRepository {
	return &ChatHistoryRepository{baseRepository: newBaseRepository(db)}
}

func (r *ChatHistoryRepository) SaveMessage(ctx context.Context, msg domain.ChatMessage) error {
	userOID, err := r.parseObjectID(msg.UserID)
	if err != nil {
		return err
	}
	doc := chatMessageDocument{
		UserID:    userOID,
		Role:      string(msg.Role),
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}
	if _, err := r.collection(chatHistoryCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// LastMessages returns up to limit most recent turns, newest first.
func (r *ChatHistoryRepository) LastMessages(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	userOID, err := r.parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection(chatHistoryCollection).Find(ctx, bson.M{"userId": userOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing chat history: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.ChatMessage
	for cursor.Next(ctx) {
		var doc chatMessageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding chat message: %w", err)
		}
		messages = append(messages, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat history: %w", err)
	}
	return messages, nil
}
