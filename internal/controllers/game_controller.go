package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chessmcp/go-api/internal/services"
)

type GameController struct {
	Service *services.GameService
}

func (gc *GameController) NewGame(c *gin.Context) {
	var req struct {
		InitialFEN string `json:"initial_fen"`
	}
	// Corpo vazio significa posição inicial padrão.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
	}

	game, err := gc.Service.NewGame(req.InitialFEN)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "game_id": game.ID, "fen": game.CurrentFEN})
}

func (gc *GameController) GetBoard(c *gin.Context) {
	game, err := gc.Service.Board(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "game_id": game.ID, "fen": game.CurrentFEN})
}

func (gc *GameController) LegalMoves(c *gin.Context) {
	moves, err := gc.Service.LegalMoves(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "moves": moves})
}

func (gc *GameController) MakeMove(c *gin.Context) {
	var req struct {
		ID   string `json:"id" binding:"required"`
		Move string `json:"move" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	san, fen, err := gc.Service.MakeMove(req.ID, req.Move)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "fen": fen, "move": san})
}

func (gc *GameController) BestMove(c *gin.Context) {
	move, err := gc.Service.BestMove(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if move == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "best_move": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "best_move": move})
}

func (gc *GameController) History(c *gin.Context) {
	moves, err := gc.Service.History(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "moves": moves})
}

// respondError traduz os erros do serviço para status HTTP. Falhas não
// classificadas (banco, engine) saem como 400 com a mensagem crua.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrGameNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}
