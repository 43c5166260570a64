package main

import (
	_ "github.com/ChumaGrandmaster/chuma-grandmaster-webapp/docs"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Request API
// @version         1.0
// @description     Lead-capture backend: public quote-request intake plus the admin triage API.

// @contact.name   Chuma Grandmaster Web
// @contact.email  hello@chumagrandmaster.dev

// @license.name  MIT

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
