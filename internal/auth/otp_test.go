package auth

import (
	"regexp"
	"testing"
	"time"

	"inforreel_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestOTPIssuer_IssueFormat(t *testing.T) {
	issuer := NewOTPIssuer(bcrypt.MinCost)
	digits := regexp.MustCompile(`^\d{6}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		ch, err := issuer.Issue(models.OTPPurposeVerification, time.Minute)
		require.NoError(t, err)
		assert.Regexp(t, digits, ch.Code)
		assert.NotEqual(t, ch.Code, ch.Hash)
		assert.Equal(t, models.OTPPurposeVerification, ch.Purpose)
		seen[ch.Code] = struct{}{}
	}
	// 20 кодов из миллиона почти наверняка не совпадут все
	assert.Greater(t, len(seen), 1)
}

func TestOTPIssuer_Verify(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewOTPIssuer(bcrypt.MinCost).WithClock(func() time.Time { return now })

	ch, err := issuer.Issue(models.OTPPurposePasswordReset, 60*time.Second)
	require.NoError(t, err)
	assert.Equal(t, now.Add(60*time.Second), ch.ExpiresAt)

	assert.NoError(t, issuer.Verify(ch.Code, ch.Hash, &ch.ExpiresAt))
	assert.ErrorIs(t, issuer.Verify(wrongCode(ch.Code), ch.Hash, &ch.ExpiresAt), ErrOTPMismatch)
}

func TestOTPIssuer_ExpiryCheckedFirst(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	issuer := NewOTPIssuer(bcrypt.MinCost).WithClock(func() time.Time { return clock })

	ch, err := issuer.Issue(models.OTPPurposeVerification, 60*time.Second)
	require.NoError(t, err)

	// Ровно на границе код еще действует
	clock = ch.ExpiresAt
	assert.NoError(t, issuer.Verify(ch.Code, ch.Hash, &ch.ExpiresAt))

	clock = ch.ExpiresAt.Add(time.Second)
	assert.ErrorIs(t, issuer.Verify(ch.Code, ch.Hash, &ch.ExpiresAt), ErrOTPExpired)
	// Неверный код после истечения тоже Expired, а не Mismatch
	assert.ErrorIs(t, issuer.Verify(wrongCode(ch.Code), ch.Hash, &ch.ExpiresAt), ErrOTPExpired)
}

func TestOTPIssuer_NoActiveCode(t *testing.T) {
	issuer := NewOTPIssuer(bcrypt.MinCost)
	future := time.Now().Add(time.Hour)

	assert.ErrorIs(t, issuer.Verify("123456", "", &future), ErrOTPExpired)
	assert.ErrorIs(t, issuer.Verify("123456", "hash", nil), ErrOTPExpired)
}

func TestHashWithCost_FallsBackOnBadCost(t *testing.T) {
	hash, err := HashWithCost("pw", 100)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.True(t, CheckPasswordHash("pw", hash))
	assert.False(t, CheckPasswordHash("pw2", hash))
}

func wrongCode(code string) string {
	if code == "000000" {
		return "000001"
	}
	return "000000"
}
