package repositories

import (
	"github.com/chessmcp/go-api/internal/models"
	"gorm.io/gorm"
)

type MoveRepository struct {
	DB *gorm.DB
}

func (r *MoveRepository) CountByGame(gameID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Move{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}

func (r *MoveRepository) Append(move *models.Move) error {
	return r.DB.Create(move).Error
}

func (r *MoveRepository) ListByGame(gameID string) ([]models.Move, error) {
	var moves []models.Move
	err := r.DB.Where("game_id = ?", gameID).Order("move_number ASC").Find(&moves).Error
	return moves, err
}
