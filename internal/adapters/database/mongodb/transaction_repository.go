package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository persists transactions in the transactions collection.
// Reads tolerate the three historic amount encodings; records whose amount
// cannot be normalized are skipped and logged rather than failing the query.
type TransactionRepository struct {
	baseRepository
	logger *slog.Logger
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *mongo.Database, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{baseRepository: newBaseRepository(db), logger: logger}
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	doc, err := r.toDocument(txn)
	if err != nil {
		return "", err
	}
	res, err := r.collection(transactionsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting transaction: %w", err)
	}
	return insertedHex(res)
}

func (r *TransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) (int, error) {
	if len(txns) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(txns))
	for _, txn := range txns {
		doc, err := r.toDocument(txn)
		if err != nil {
			return 0, err
		}
		docs = append(docs, doc)
	}
	res, err := r.collection(transactionsCollection).InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("inserting transactions: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *TransactionRepository) ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	return r.list(ctx, userID, bson.M{"createdAt": bson.M{"$gte": since}})
}

func (r *TransactionRepository) ListExpensesSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	return r.list(ctx, userID, bson.M{
		"type":      string(domain.TransactionTypeExpense),
		"createdAt": bson.M{"$gte": since},
	})
}

func (r *TransactionRepository) DeleteTransactionsByUser(ctx context.Context, userID string) (int64, error) {
	userOID, err := r.parseObjectID(userID)
	if err != nil {
		return 0, err
	}
	res, err := r.collection(transactionsCollection).DeleteMany(ctx, bson.M{"userId": userOID})
	if err != nil {
		return 0, fmt.Errorf("deleting transactions: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *TransactionRepository) list(ctx context.Context, userID string, extra bson.M) ([]domain.Transaction, error) {
	userOID, err := r.parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"userId": userOID}
	for k, v := range extra {
		filter[k] = v
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection(transactionsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txns []domain.Transaction
	for cursor.Next(ctx) {
		var doc transactionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding transaction: %w", err)
		}
		amount, err := normalizeAmount(doc.Amount)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping transaction with unreadable amount",
				"transaction_id", doc.ID.Hex(), "error", err)
			continue
		}
		txns = append(txns, domain.Transaction{
			TransactionID: doc.ID.Hex(),
			UserID:        doc.UserID.Hex(),
			Type:          domain.TransactionType(doc.Type),
			Amount:        amount,
			Description:   doc.Description,
			Category:      doc.Category,
			CreatedAt:     doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return txns, nil
}

func (r *TransactionRepository) toDocument(txn domain.Transaction) (transactionDocument, error) {
	userOID, err := r.parseObjectID(txn.UserID)
	if err != nil {
		return transactionDocument{}, err
	}
	amount, err := toDecimal128(txn.Amount)
	if err != nil {
		return transactionDocument{}, fmt.Errorf("converting amount: %w", err)
	}
	rawType, rawValue, err := bson.MarshalValue(amount)
	if err != nil {
		return transactionDocument{}, fmt.Errorf("encoding amount: %w", err)
	}
	return transactionDocument{
		UserID:      userOID,
		Type:        string(txn.Type),
		Amount:      bson.RawValue{Type: rawType, Value: rawValue},
		Description: txn.Description,
		Category:    txn.Category,
		CreatedAt:   txn.CreatedAt,
	}, nil
}
