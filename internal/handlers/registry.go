package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	UserHandler    *UserHandler
	HealthHandler  *HealthHandler
}
