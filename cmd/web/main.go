// @title           InforReel API
// @version         1.0
// @description     API аутентификации и сессий InforReel (документация Swagger).
// @contact.name    InforReel
// @contact.email   support@inforreel.io
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	_ "inforreel_backend/docs"
	"inforreel_backend/internal/app"
)

func main() {
	app.Run()
}
