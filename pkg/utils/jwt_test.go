package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	id := uuid.New()

	token, err := m.CreateToken(id, "staff")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff", claims.Role)
	got, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	token, err := NewJWTManager("one", time.Minute).CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestTimeHelpers(t *testing.T) {
	ts := time.Date(2024, time.January, 31, 22, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
	assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC), EndOfDay(ts))

	_, err := ParseDate("31/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", FormatDate(d.Unix()))
	assert.Equal(t, "2024-01-31 22:15:00", FormatDateTime(ts.Unix()))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "hunter22"))
	assert.Error(t, ComparePasswords(hash, "hunter23"))
}
