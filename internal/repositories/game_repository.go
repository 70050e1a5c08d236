package repositories

import (
	"github.com/chessmcp/go-api/internal/models"
	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func (r *GameRepository) Create(game *models.Game) error {
	return r.DB.Create(game).Error
}

func (r *GameRepository) Find(id string) (*models.Game, error) {
	var game models.Game
	err := r.DB.Where("id = ?", id).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateFEN sobrescreve current_fen sem comparar com o valor anterior.
func (r *GameRepository) UpdateFEN(id string, fen string) error {
	return r.DB.Model(&models.Game{}).Where("id = ?", id).Update("current_fen", fen).Error
}
