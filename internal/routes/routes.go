package routes

import (
	"github.com/chessmcp/go-api/internal/controllers"
	"github.com/chessmcp/go-api/internal/repositories"
	"github.com/chessmcp/go-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	gameRepo := &repositories.GameRepository{DB: db}
	moveRepo := &repositories.MoveRepository{DB: db}
	gameService := &services.GameService{DB: db, Games: gameRepo, Moves: moveRepo}
	gameController := &controllers.GameController{Service: gameService}
	mcpController := &controllers.McpController{}

	r.GET("/health", mcpController.Health)
	r.GET("/mcp/manifest", mcpController.Manifest)

	tools := r.Group("/tools")
	{
		tools.POST("/new_game", gameController.NewGame)
		tools.GET("/get_board/:id", gameController.GetBoard)
		tools.GET("/legal_moves/:id", gameController.LegalMoves)
		tools.POST("/make_move", gameController.MakeMove)
		tools.GET("/best_move/:id", gameController.BestMove)
		tools.GET("/history/:id", gameController.History)
	}
}
