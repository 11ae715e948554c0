package main

import (
	"os"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/routes"
)

func main() {
	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
