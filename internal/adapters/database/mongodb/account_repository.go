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

// AccountRepository persists accounts in the accounts collection.
type AccountRepository struct {
	baseRepository
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{baseRepository: newBaseRepository(db)}
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) (string, error) {
	userOID, err := r.parseObjectID(account.UserID)
	if err != nil {
		return "", err
	}
	balance, err := toDecimal128(account.Balance)
	if err != nil {
		return "", fmt.Errorf("converting balance: %w", err)
	}
	doc := accountDocument{
		UserID:      userOID,
		AccountName: account.AccountName,
		AccountType: string(account.AccountType),
		Balance:     balance,
		Currency:    account.Currency,
		IsActive:    account.IsActive,
		CreatedAt:   account.CreatedAt,
	}
	res, err := r.collection(accountsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting account: %w", err)
	}
	return insertedHex(res)
}

func (r *AccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	userOID, err := r.parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection(accountsCollection).Find(ctx, bson.M{"userId": userOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []domain.Account
	for cursor.Next(ctx) {
		var doc accountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding account: %w", err)
		}
		account, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}
	return accounts, nil
}
