package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 4, 12, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedEntryDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, entryDate, decodedEntryDate, "Entry date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero time values round-trip too.
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDateBasedToken(t *testing.T) {
	date := time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC)
	token := EncodeDateBasedToken(date)

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err)
	assert.Equal(t, date, decoded)

	_, err = DecodeDateBasedToken("%%%")
	assert.Error(t, err)
}
