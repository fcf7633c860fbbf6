package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rawValueOf(t *testing.T, v any) bson.RawValue {
	t.Helper()
	valueType, data, err := bson.MarshalValue(v)
	require.NoError(t, err)
	return bson.RawValue{Type: valueType, Value: data}
}

func TestNormalizeAmount_Decimal128(t *testing.T) {
	d128, err := primitive.ParseDecimal128("1500.50")
	require.NoError(t, err)

	amount, err := normalizeAmount(rawValueOf(t, d128))

	require.NoError(t, err)
	assert.Equal(t, "1500.50", amount.StringFixed(2))
}

func TestNormalizeAmount_NumberDecimalDocument(t *testing.T) {
	doc := bson.M{"$numberDecimal": "1500.50"}

	amount, err := normalizeAmount(rawValueOf(t, doc))

	require.NoError(t, err)
	assert.Equal(t, "1500.50", amount.StringFixed(2))
}

func TestNormalizeAmount_PlainNumbers(t *testing.T) {
	amount, err := normalizeAmount(rawValueOf(t, float64(1500.5)))
	require.NoError(t, err)
	assert.Equal(t, "1500.50", amount.StringFixed(2))

	amount, err = normalizeAmount(rawValueOf(t, int32(1500)))
	require.NoError(t, err)
	assert.Equal(t, "1500.00", amount.StringFixed(2))

	amount, err = normalizeAmount(rawValueOf(t, int64(1500)))
	require.NoError(t, err)
	assert.Equal(t, "1500.00", amount.StringFixed(2))
}

func TestNormalizeAmount_UnrecognizedShapes(t *testing.T) {
	_, err := normalizeAmount(rawValueOf(t, "1500.50"))
	assert.Error(t, err)

	_, err = normalizeAmount(rawValueOf(t, bson.M{"value": "1500.50"}))
	assert.Error(t, err)
}

func TestToDecimal128_RoundTrip(t *testing.T) {
	original := decimal.RequireFromString("1500.50")

	d128, err := toDecimal128(original)
	require.NoError(t, err)

	back, err := decimal.NewFromString(d128.String())
	require.NoError(t, err)
	assert.True(t, original.Equal(back), "expected %s, got %s", original, back)
	assert.Equal(t, "1500.50", back.StringFixed(2))
}
