package models

import "time"

// Session - серверная запись о выданном токене.
// Хранится хеш токена, сам токен не сохраняется.
type Session struct {
	ID          string      `json:"id" bson:"_id"` // совпадает с jti токена
	AccountID   string      `json:"accountId" bson:"accountId"`
	TokenHash   string      `json:"tokenHash" bson:"tokenHash"`
	DeviceClass DeviceClass `json:"deviceClass" bson:"deviceClass"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt" bson:"expiresAt"`
}

// IsExpiredAt - истекла ли сессия на момент now
func (s *Session) IsExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
