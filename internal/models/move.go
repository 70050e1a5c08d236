package models

type Move struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	GameID     string `gorm:"column:game_id;size:36;not null;uniqueIndex:idx_game_move_number" json:"game_id"`
	MoveNumber int    `gorm:"column:move_number;not null;uniqueIndex:idx_game_move_number" json:"move_number"`
	MoveSAN    string `gorm:"column:move_san;not null" json:"move_san"`
	MoveUCI    string `gorm:"column:move_uci" json:"move_uci,omitempty"`
	FenBefore  string `gorm:"column:fen_before;not null" json:"fen_before"`
	FenAfter   string `gorm:"column:fen_after;not null" json:"fen_after"`
}
