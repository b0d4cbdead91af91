package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/medassist/scribe/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv := server.NewServer()

	// PORT overrides the configured port, which itself defaults to 8080.
	port := os.Getenv("PORT")
	if port == "" {
		port = srv.Port
	}
	if port == "" {
		port = "8080"
	}

	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
