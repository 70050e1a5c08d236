package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chessmcp/go-api/config"
	"github.com/chessmcp/go-api/internal/routes"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Aviso: não foi possível carregar .env, usando variáveis do sistema")
	}

	db := config.InitDB()
	r := gin.Default()
	routes.RegisterRoutes(r, db)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
