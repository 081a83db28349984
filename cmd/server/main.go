package main

import (
	"os"

	"crm/internal/cmd"
)

// @title           Sales CRM API
// @version         1.0
// @description     Sales pipeline board, deals, contacts, activities, proposals and reports.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
