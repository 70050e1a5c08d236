package services

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chessmcp/go-api/internal/models"
	"github.com/chessmcp/go-api/internal/repositories"
)

// Posição do mate do louco: brancas no lance, sem lances legais.
const foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

func newTestService(t *testing.T) *GameService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Game{}, &models.Move{}))

	return &GameService{
		DB:    db,
		Games: &repositories.GameRepository{DB: db},
		Moves: &repositories.MoveRepository{DB: db},
	}
}

func TestNewGameDefaultPosition(t *testing.T) {
	s := newTestService(t)

	game, err := s.NewGame("")
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, chess.NewGame().FEN(), game.InitialFEN)
	assert.Equal(t, game.InitialFEN, game.CurrentFEN)
}

func TestNewGameExplicitFENRoundTrip(t *testing.T) {
	s := newTestService(t)

	game, err := s.NewGame(foolsMateFEN)
	require.NoError(t, err)

	board, err := s.Board(game.ID)
	require.NoError(t, err)
	assert.Equal(t, foolsMateFEN, board.CurrentFEN)
	assert.Equal(t, foolsMateFEN, board.InitialFEN)
}

func TestBoardUnknownGame(t *testing.T) {
	s := newTestService(t)

	_, err := s.Board("nao-existe")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestMakeMoveE4(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	san, fen, err := s.MakeMove(game.ID, "e4")
	require.NoError(t, err)
	assert.Equal(t, "e4", san)

	// FEN esperado vem do próprio engine
	expected := chess.NewGame()
	move, decErr := (chess.AlgebraicNotation{}).Decode(expected.Position(), "e4")
	require.NoError(t, decErr)
	require.NoError(t, expected.Move(move))
	assert.Equal(t, expected.Position().String(), fen)
	assert.Contains(t, fen, " b ")

	history, err := s.History(game.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].MoveNumber)
	assert.Equal(t, "e4", history[0].MoveSAN)
	assert.Equal(t, "e2e4", history[0].MoveUCI)
	assert.Equal(t, game.InitialFEN, history[0].FenBefore)
	assert.Equal(t, fen, history[0].FenAfter)

	board, err := s.Board(game.ID)
	require.NoError(t, err)
	assert.Equal(t, fen, board.CurrentFEN)
}

func TestMakeMoveAcceptsUCI(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	san, _, err := s.MakeMove(game.ID, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e4", san)
}

func TestMakeMoveIllegalLeavesStateUntouched(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	_, _, err = s.MakeMove(game.ID, "zz9")
	assert.ErrorIs(t, err, ErrIllegalMove)

	board, err := s.Board(game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.InitialFEN, board.CurrentFEN)

	history, err := s.History(game.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMakeMoveUnknownGame(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.MakeMove("nao-existe", "e4")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestLedgerReplayReproducesCurrentFEN(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	for _, m := range []string{"e4", "e5", "Nf3", "Nc6"} {
		_, _, err := s.MakeMove(game.ID, m)
		require.NoError(t, err)
	}

	history, err := s.History(game.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)

	// Números contíguos e encadeamento before/after
	for i, entry := range history {
		assert.Equal(t, i+1, entry.MoveNumber)
		if i == 0 {
			assert.Equal(t, game.InitialFEN, entry.FenBefore)
		} else {
			assert.Equal(t, history[i-1].FenAfter, entry.FenBefore)
		}
	}

	// Reaplicar os SANs a partir do FEN inicial reproduz current_fen
	opt, err := chess.FEN(game.InitialFEN)
	require.NoError(t, err)
	replay := chess.NewGame(opt)
	for _, entry := range history {
		move, err := (chess.AlgebraicNotation{}).Decode(replay.Position(), entry.MoveSAN)
		require.NoError(t, err)
		require.NoError(t, replay.Move(move))
	}

	board, err := s.Board(game.ID)
	require.NoError(t, err)
	assert.Equal(t, replay.Position().String(), board.CurrentFEN)
	assert.Equal(t, history[3].FenAfter, board.CurrentFEN)
}

func TestLegalMovesOnFreshGame(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	moves, err := s.LegalMoves(game.ID)
	require.NoError(t, err)
	assert.Len(t, moves, 20)

	for _, m := range moves {
		assert.NotEmpty(t, m.SAN)
		assert.NotEmpty(t, m.UCI)
		assert.Equal(t, "w", m.Color)
	}
}

func TestCheckmateHasNoMovesAndNoBestMove(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame(foolsMateFEN)
	require.NoError(t, err)

	moves, err := s.LegalMoves(game.ID)
	require.NoError(t, err)
	assert.Empty(t, moves)

	best, err := s.BestMove(game.ID)
	require.NoError(t, err)
	assert.Empty(t, best)
}

func TestBestMoveIsFirstEnumerated(t *testing.T) {
	s := newTestService(t)
	game, err := s.NewGame("")
	require.NoError(t, err)

	moves, err := s.LegalMoves(game.ID)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	best, err := s.BestMove(game.ID)
	require.NoError(t, err)
	assert.Equal(t, moves[0].UCI, best)
}
