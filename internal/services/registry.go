package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	SessionService SessionService
	ProfileService ProfileService
	UserService    UserService
}
