package main

import (
	"os"

	"turfbook/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// default to release mode so a missing GIN_MODE never exposes debug output
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           turfbook
// @version         1.0
// @description     Slot reservation and payment confirmation API for sports turf venues.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
