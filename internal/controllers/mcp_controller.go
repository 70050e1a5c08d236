package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type McpController struct{}

type toolEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Path        string `json:"path"`
}

var manifest = gin.H{
	"name":    "chess-mcp",
	"version": "0.1.0",
	"tools": []toolEntry{
		{"new_game", "Cria uma nova partida, opcionalmente a partir de um FEN", http.MethodPost, "/tools/new_game"},
		{"get_board", "Posição atual da partida", http.MethodGet, "/tools/get_board/:id"},
		{"legal_moves", "Lances legais na posição atual", http.MethodGet, "/tools/legal_moves/:id"},
		{"make_move", "Aplica um lance (UCI ou SAN) na partida", http.MethodPost, "/tools/make_move"},
		{"best_move", "Primeiro lance legal (stub, sem busca)", http.MethodGet, "/tools/best_move/:id"},
		{"history", "Histórico de lances da partida", http.MethodGet, "/tools/history/:id"},
	},
}

func (mc *McpController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (mc *McpController) Manifest(c *gin.Context) {
	c.JSON(http.StatusOK, manifest)
}
