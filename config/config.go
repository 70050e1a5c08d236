package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/chessmcp/go-api/internal/models"
)

func InitDB() *gorm.DB {
	// Carrega .env
	err := godotenv.Load()
	if err != nil {
		log.Println("Aviso: não foi possível carregar .env, usando variáveis do sistema")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := db.AutoMigrate(&models.Game{}, &models.Move{}); err != nil {
		log.Fatal("Erro ao migrar o banco:", err)
	}

	return db
}
