// Package mongodb implements the core repository ports against MongoDB.
// Documents mirror the collections' persisted shape; mapping to and from
// domain types happens here so the core never sees BSON.
package mongodb

import (
	"fmt"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	Password    []byte             `bson:"password"`
	Profile     profileDocument    `bson:"profile"`
	Preferences preferencesDoc     `bson:"preferences"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type profileDocument struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Currency  string `bson:"currency"`
}

type preferencesDoc struct {
	Notifications notificationsDoc `bson:"notifications"`
}

type notificationsDoc struct {
	Email bool `bson:"email"`
	Push  bool `bson:"push"`
}

type accountDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	UserID      primitive.ObjectID   `bson:"userId"`
	AccountName string               `bson:"accountName"`
	AccountType string               `bson:"accountType"`
	Balance     primitive.Decimal128 `bson:"balance"`
	Currency    string               `bson:"currency"`
	IsActive    bool                 `bson:"isActive"`
	CreatedAt   time.Time            `bson:"createdAt"`
}

type goalDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	UserID        primitive.ObjectID   `bson:"userId"`
	GoalType      string               `bson:"goalType"`
	GoalName      string               `bson:"goalName"`
	TargetAmount  primitive.Decimal128 `bson:"targetAmount"`
	CurrentAmount primitive.Decimal128 `bson:"currentAmount"`
	Status        string               `bson:"status"`
	CreatedAt     time.Time            `bson:"createdAt"`
}

// transactionDocument keeps Amount as a raw BSON value: historic writers
// produced Decimal128, {"$numberDecimal": "..."} sub-documents, and plain
// numbers, so the shape is sniffed explicitly by normalizeAmount.
type transactionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Type        string             `bson:"type"`
	Amount      bson.RawValue      `bson:"amount"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type chatMessageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Role      string             `bson:"role"`
	Message   string             `bson:"message"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		UserID:       d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.Password,
		Profile: domain.UserProfile{
			FirstName: d.Profile.FirstName,
			LastName:  d.Profile.LastName,
			Currency:  d.Profile.Currency,
		},
		Preferences: domain.NotificationPreferences{
			Email: d.Preferences.Notifications.Email,
			Push:  d.Preferences.Notifications.Push,
		},
		CreatedAt: d.CreatedAt,
	}
}

func (d accountDocument) toDomain() (domain.Account, error) {
	balance, err := decimal.NewFromString(d.Balance.String())
	if err != nil {
		return domain.Account{}, fmt.Errorf("invalid balance on account %s: %w", d.ID.Hex(), err)
	}
	return domain.Account{
		AccountID:   d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		AccountName: d.AccountName,
		AccountType: domain.AccountType(d.AccountType),
		Balance:     balance,
		Currency:    d.Currency,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func (d goalDocument) toDomain() (domain.Goal, error) {
	target, err := decimal.NewFromString(d.TargetAmount.String())
	if err != nil {
		return domain.Goal{}, fmt.Errorf("invalid targetAmount on goal %s: %w", d.ID.Hex(), err)
	}
	current, err := decimal.NewFromString(d.CurrentAmount.String())
	if err != nil {
		return domain.Goal{}, fmt.Errorf("invalid currentAmount on goal %s: %w", d.ID.Hex(), err)
	}
	return domain.Goal{
		GoalID:        d.ID.Hex(),
		UserID:        d.UserID.Hex(),
		GoalType:      d.GoalType,
		GoalName:      d.GoalName,
		TargetAmount:  target,
		CurrentAmount: current,
		Status:        domain.GoalStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}, nil
}

func (d chatMessageDocument) toDomain() domain.ChatMessage {
	return domain.ChatMessage{
		MessageID: d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Role:      domain.ChatRole(d.Role),
		Message:   d.Message,
		Timestamp: d.Timestamp,
	}
}

// toDecimal128 converts an exact decimal for storage.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

// normalizeAmount converts any of the recognized amount encodings into an
// exact decimal. Unrecognized shapes return an error so callers can skip
// the record instead of defaulting silently.
func normalizeAmount(rv bson.RawValue) (decimal.Decimal, error) {
	switch rv.Type {
	case bson.TypeDecimal128:
		d128, _ := rv.Decimal128OK()
		return decimal.NewFromString(d128.String())
	case bson.TypeEmbeddedDocument:
		doc, _ := rv.DocumentOK()
		inner, err := doc.LookupErr("$numberDecimal")
		if err != nil {
			return decimal.Zero, fmt.Errorf("amount sub-document has no $numberDecimal field")
		}
		str, ok := inner.StringValueOK()
		if !ok {
			return decimal.Zero, fmt.Errorf("$numberDecimal is not a string")
		}
		return decimal.NewFromString(str)
	case bson.TypeDouble:
		v, _ := rv.DoubleOK()
		return decimal.NewFromFloat(v), nil
	case bson.TypeInt32:
		v, _ := rv.Int32OK()
		return decimal.NewFromInt32(v), nil
	case bson.TypeInt64:
		v, _ := rv.Int64OK()
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unrecognized amount encoding %s", rv.Type)
	}
}
