package models

type Game struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	InitialFEN string `gorm:"column:initial_fen;not null" json:"initial_fen"`
	CurrentFEN string `gorm:"column:current_fen;not null" json:"current_fen"`
	Moves      []Move `gorm:"foreignKey:GameID" json:"-"`
}
