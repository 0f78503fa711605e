package main

import "github.com/SscSPs/uk_books_app/internal/cli"

// @title UK Books Backend API
// @version 1.0
// @description Invoice lifecycle and UK VAT reporting for small businesses.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cli.Execute()
}
