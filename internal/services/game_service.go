package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/notnil/chess"
	"gorm.io/gorm"

	"github.com/chessmcp/go-api/internal/models"
	"github.com/chessmcp/go-api/internal/repositories"
)

var (
	ErrGameNotFound = errors.New("game_not_found")
	ErrIllegalMove  = errors.New("illegal_move")
)

type GameService struct {
	DB    *gorm.DB
	Games *repositories.GameRepository
	Moves *repositories.MoveRepository
}

// LegalMove descreve um lance legal na posição atual.
type LegalMove struct {
	SAN       string `json:"san"`
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Color     string `json:"color"`
	Capture   bool   `json:"capture"`
	Promotion string `json:"promotion,omitempty"`
}

func (s *GameService) NewGame(initialFEN string) (*models.Game, error) {
	if initialFEN == "" {
		initialFEN = chess.NewGame().FEN()
	}

	game := &models.Game{
		ID:         uuid.NewString(),
		InitialFEN: initialFEN,
		CurrentFEN: initialFEN,
	}
	if err := s.Games.Create(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Board(id string) (*models.Game, error) {
	return s.findGame(id)
}

// MakeMove valida o lance contra a posição atual e, se aceito, atualiza
// current_fen e registra o lance no ledger dentro de uma única transação.
func (s *GameService) MakeMove(id string, moveStr string) (san string, fen string, err error) {
	game, err := s.findGame(id)
	if err != nil {
		return "", "", err
	}

	board, err := gameFromFEN(game.CurrentFEN)
	if err != nil {
		return "", "", err
	}
	before := board.Position()

	move, err := decodeMove(before, moveStr)
	if err != nil {
		return "", "", err
	}
	if err := board.Move(move); err != nil {
		return "", "", ErrIllegalMove
	}

	san = chess.AlgebraicNotation{}.Encode(before, move)
	uci := chess.UCINotation{}.Encode(before, move)
	after := board.Position().String()

	count, err := s.Moves.CountByGame(game.ID)
	if err != nil {
		return "", "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		games := &repositories.GameRepository{DB: tx}
		moves := &repositories.MoveRepository{DB: tx}
		if err := games.UpdateFEN(game.ID, after); err != nil {
			return err
		}
		return moves.Append(&models.Move{
			GameID:     game.ID,
			MoveNumber: int(count) + 1,
			MoveSAN:    san,
			MoveUCI:    uci,
			FenBefore:  game.CurrentFEN,
			FenAfter:   after,
		})
	})
	if err != nil {
		return "", "", err
	}

	return san, after, nil
}

func (s *GameService) LegalMoves(id string) ([]LegalMove, error) {
	game, err := s.findGame(id)
	if err != nil {
		return nil, err
	}

	board, err := gameFromFEN(game.CurrentFEN)
	if err != nil {
		return nil, err
	}
	pos := board.Position()

	valid := board.ValidMoves()
	moves := make([]LegalMove, 0, len(valid))
	for _, m := range valid {
		piece := pos.Board().Piece(m.S1())
		lm := LegalMove{
			SAN:     chess.AlgebraicNotation{}.Encode(pos, m),
			UCI:     chess.UCINotation{}.Encode(pos, m),
			From:    m.S1().String(),
			To:      m.S2().String(),
			Piece:   piece.Type().String(),
			Color:   piece.Color().String(),
			Capture: m.HasTag(chess.Capture),
		}
		if m.Promo() != chess.NoPieceType {
			lm.Promotion = m.Promo().String()
		}
		moves = append(moves, lm)
	}
	return moves, nil
}

// BestMove devolve o primeiro lance legal, sem nenhuma avaliação.
// É um stub intencional: não há busca nem ordenação por força.
func (s *GameService) BestMove(id string) (string, error) {
	game, err := s.findGame(id)
	if err != nil {
		return "", err
	}

	board, err := gameFromFEN(game.CurrentFEN)
	if err != nil {
		return "", err
	}

	valid := board.ValidMoves()
	if len(valid) == 0 {
		return "", nil
	}
	return chess.UCINotation{}.Encode(board.Position(), valid[0]), nil
}

func (s *GameService) History(id string) ([]models.Move, error) {
	game, err := s.findGame(id)
	if err != nil {
		return nil, err
	}
	return s.Moves.ListByGame(game.ID)
}

func (s *GameService) findGame(id string) (*models.Game, error) {
	game, err := s.Games.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

func gameFromFEN(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}
	return chess.NewGame(opt), nil
}

// Aceita UCI e notação algébrica, nessa ordem.
func decodeMove(pos *chess.Position, moveStr string) (*chess.Move, error) {
	if move, err := (chess.UCINotation{}).Decode(pos, moveStr); err == nil {
		return move, nil
	}
	move, err := (chess.AlgebraicNotation{}).Decode(pos, moveStr)
	if err != nil {
		return nil, ErrIllegalMove
	}
	return move, nil
}
