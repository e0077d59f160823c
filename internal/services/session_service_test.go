package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"inforreel_backend/internal/auth"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/services"
	"inforreel_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessions - SessionRepository в памяти
type memorySessions struct {
	mu   sync.Mutex
	byID map[string]*models.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{byID: map[string]*models.Session{}}
}

func (m *memorySessions) Save(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.byID[s.TokenHash] = &cp
	return nil
}

func (m *memorySessions) FindByTokenHash(ctx context.Context, hash string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[hash]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memorySessions) DeleteByTokenHash(ctx context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[hash]
	delete(m.byID, hash)
	return ok, nil
}

func (m *memorySessions) DeleteByAccount(ctx context.Context, accountID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for hash, s := range m.byID {
		if s.AccountID == accountID {
			delete(m.byID, hash)
			n++
		}
	}
	return n, nil
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newSessionService(t *testing.T, clk *clock) (*services.SessionServiceImpl, *memorySessions) {
	t.Helper()
	tokens, err := auth.NewTokenManager("secret", "inforreel")
	require.NoError(t, err)
	tokens.WithClock(clk.Now)

	store := newMemorySessions()
	svc := services.NewSessionService(tokens, store, services.SessionTTL{
		Web:    time.Hour,
		Mobile: 10 * 365 * 24 * time.Hour,
	}).WithClock(clk.Now)
	return svc, store
}

func testAccount(id string) *models.Account {
	account := &models.Account{UserType: models.UserTypeGeneral}
	account.ID = id
	return account
}

func TestSessionService_IssueAndValidate(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, testAccount("acc-1"), models.DeviceWeb)
	require.NoError(t, err)
	assert.Equal(t, auth.HashToken(issued.Token), issued.Session.TokenHash)
	assert.Equal(t, time.Hour, issued.Session.ExpiresAt.Sub(issued.Session.CreatedAt))

	claims, session, err := svc.Validate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.UserID)
	assert.Equal(t, issued.Session.ID, session.ID)
	assert.Equal(t, claims.ID, session.ID)
}

func TestSessionService_DeviceTTL(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)

	mobile, err := svc.Issue(context.Background(), testAccount("acc-1"), models.DeviceMobile)
	require.NoError(t, err)
	assert.Equal(t, 10*365*24*time.Hour, mobile.Session.ExpiresAt.Sub(mobile.Session.CreatedAt))

	// Неизвестный класс трактуется как web
	other, err := svc.Issue(context.Background(), testAccount("acc-1"), models.DeviceClass("tv"))
	require.NoError(t, err)
	assert.Equal(t, models.DeviceWeb, other.Session.DeviceClass)
}

func TestSessionService_Revoke(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, testAccount("acc-1"), models.DeviceWeb)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, issued.Token))
	require.NoError(t, svc.Revoke(ctx, issued.Token))

	_, _, err = svc.Validate(ctx, issued.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
}

func TestSessionService_RevokeAll(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)
	ctx := context.Background()

	a, err := svc.Issue(ctx, testAccount("acc-1"), models.DeviceWeb)
	require.NoError(t, err)
	_, err = svc.Issue(ctx, testAccount("acc-1"), models.DeviceMobile)
	require.NoError(t, err)
	b, err := svc.Issue(ctx, testAccount("acc-2"), models.DeviceWeb)
	require.NoError(t, err)

	n, err := svc.RevokeAll(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, _, err = svc.Validate(ctx, a.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
	_, _, err = svc.Validate(ctx, b.Token)
	assert.NoError(t, err)
}

func TestSessionService_ExpiredToken(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, testAccount("acc-1"), models.DeviceWeb)
	require.NoError(t, err)

	clk.Advance(time.Hour + time.Second)
	_, _, err = svc.Validate(ctx, issued.Token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestSessionService_ForeignSignature(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, _ := newSessionService(t, clk)

	other, err := auth.NewTokenManager("other-secret", "inforreel")
	require.NoError(t, err)
	forged, err := other.GenerateToken("acc-1", models.UserTypeGeneral, time.Hour)
	require.NoError(t, err)

	_, _, err = svc.Validate(context.Background(), forged.Token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestSessionService_SessionAccountMismatch(t *testing.T) {
	clk := &clock{now: time.Now()}
	svc, store := newSessionService(t, clk)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, testAccount("acc-1"), models.DeviceWeb)
	require.NoError(t, err)

	tampered := *issued.Session
	tampered.AccountID = "acc-2"
	require.NoError(t, store.Save(ctx, &tampered))

	_, _, err = svc.Validate(ctx, issued.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
}
