package contextkeys

// Ключи gin.Context, которые выставляет AuthMiddleware.
// gin.Context.Set принимает string, поэтому тип не кастомный.
const (
	// AccountKey - *models.Account текущего пользователя (без хеша пароля)
	AccountKey = "account"
	// SessionKey - *models.Session, по которой прошел запрос
	SessionKey = "session"
)
