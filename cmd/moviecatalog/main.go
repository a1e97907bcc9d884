// filepath: cmd/moviecatalog/main.go
package main

import (
	"moviecatalog/internal/cli"

	// Import docs for Swagger
	_ "moviecatalog/docs"
)

// @title Movie Catalog API
// @version 1.0.0
// @description A personal movie catalog with themes and a scan of mounted drives for video files.
// @BasePath /api
// @schemes http
// @accept x-www-form-urlencoded
// @produce json

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
