package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerRepo struct {
	players map[string]*entity.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]*entity.Player)}
}

func (that *fakePlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	stored := *player
	that.players[player.ID] = &stored
	return nil
}

func (that *fakePlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}

	existing := *player
	return &existing, nil
}

type fakeGameRepo struct {
	games map[string]*entity.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*entity.Game)}
}

func (that *fakeGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	stored := *game
	that.games[game.ID] = &stored
	return nil
}

func (that *fakeGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}

	existing := *game
	return &existing, nil
}

func (that *fakeGameRepo) DeleteByID(_ context.Context, id string) error {
	delete(that.games, id)
	return nil
}

func newGamePlayFixture() (GamePlayService, *fakePlayerRepo, *fakeGameRepo) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	playerRepo := newFakePlayerRepo()
	gameRepo := newFakeGameRepo()

	playerService := NewPlayerService(playerRepo)
	gameService := NewGameService(gameRepo)
	botService := NewBotService(engine.NewEngine())

	return NewGamePlayService(logger, playerService, gameService, botService), playerRepo, gameRepo
}

func TestGamePlayService_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a bot game for a player without one", func(t *testing.T) {
		// Given: a registered player with no game
		gamePlay, playerRepo, _ := newGamePlayFixture()
		player := &entity.Player{ID: "p1"}
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		// When: requesting a game
		game, err := gamePlay.GetOrCreateGame(ctx, player)

		// Then: an ongoing game against the bot exists with disjoint marks
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		require.Len(t, game.Players, 2)

		human, bot := game.Players[0], game.Players[1]
		require.True(t, bot.IsBot())
		require.False(t, human.IsBot())
		assert.NotEqual(t, human.Mark, bot.Mark)

		// Then: when the bot drew X it has already opened in the center
		if bot.Mark == entity.PlayerX {
			assert.Equal(t, entity.PlayerX, game.Board[4])
			assert.Equal(t, human.Mark, game.Turn)
		} else {
			assert.Equal(t, engine.NewBoard(), game.Board)
			assert.Equal(t, entity.PlayerX, game.Turn)
		}
	})

	t.Run("Returns the in-flight game on reconnect", func(t *testing.T) {
		// Given: a player who already has a game
		gamePlay, playerRepo, _ := newGamePlayFixture()
		player := &entity.Player{ID: "p1"}
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		created, err := gamePlay.GetOrCreateGame(ctx, player)
		require.NoError(t, err)

		// When: requesting a game again with the stored player
		stored, err := playerRepo.GetByID(ctx, player.ID)
		require.NoError(t, err)
		resumed, err := gamePlay.GetOrCreateGame(ctx, stored)

		// Then: the same game comes back
		require.NoError(t, err)
		assert.Equal(t, created.ID, resumed.ID)
		assert.Equal(t, created.Board, resumed.Board)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	// seedGame stores a deterministic ongoing game: human plays X, bot plays O.
	seedGame := func(t *testing.T, playerRepo *fakePlayerRepo, gameRepo *fakeGameRepo) (*entity.Player, *entity.Game) {
		t.Helper()

		game := entity.NewGame("game-1")
		game.Status = entity.StatusOngoing

		human := &entity.Player{ID: "p1", Mark: entity.PlayerX, GameID: game.ID}
		bot := entity.NewBotPlayer(game.ID)
		bot.Mark = entity.PlayerO
		game.Players = []*entity.Player{human, bot}

		require.NoError(t, playerRepo.CreateOrUpdate(ctx, human))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		return human, game
	}

	t.Run("Applies the move and lets the bot answer", func(t *testing.T) {
		// Given: an ongoing game with the human to move
		gamePlay, playerRepo, gameRepo := newGamePlayFixture()
		human, _ := seedGame(t, playerRepo, gameRepo)

		// When: the human plays a corner
		game, err := gamePlay.MakeTurn(ctx, human.ID, 0)

		// Then: both the human's and the bot's marks are on the board
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Len(t, game.Board.AvailableCells(), 7)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)

		// Then: the updated game is persisted
		persisted, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.Board, persisted.Board)
	})

	t.Run("Cleans up a finished game", func(t *testing.T) {
		// Given: the human is one move from winning
		gamePlay, playerRepo, gameRepo := newGamePlayFixture()
		human, game := seedGame(t, playerRepo, gameRepo)

		game.Board = engine.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the human completes the row
		finished, err := gamePlay.MakeTurn(ctx, human.ID, 2)

		// Then: the final position is returned with the human as the winner
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, finished.Status)
		assert.Equal(t, entity.PlayerX, finished.Winner)

		// Then: the game is deleted and the player detached
		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, repository.ErrGameNotFound)

		detached, err := playerRepo.GetByID(ctx, human.ID)
		require.NoError(t, err)
		assert.Empty(t, detached.GameID)
		assert.Empty(t, detached.Mark)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		// Given: an ongoing game where the bot holds the turn
		gamePlay, playerRepo, gameRepo := newGamePlayFixture()
		human, game := seedGame(t, playerRepo, gameRepo)

		game.Turn = entity.PlayerO
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the human tries to move anyway
		_, err := gamePlay.MakeTurn(ctx, human.ID, 0)

		// Then: it should return ErrNotYourTurn
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects a move on a waiting game", func(t *testing.T) {
		// Given: a game that has not started
		gamePlay, playerRepo, gameRepo := newGamePlayFixture()
		human, game := seedGame(t, playerRepo, gameRepo)

		game.Status = entity.StatusWaiting
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the human tries to move
		_, err := gamePlay.MakeTurn(ctx, human.ID, 0)

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Rejects an unknown player", func(t *testing.T) {
		// Given: no players in storage
		gamePlay, _, _ := newGamePlayFixture()

		// When: an unknown player tries to move
		_, err := gamePlay.MakeTurn(ctx, "ghost", 0)

		// Then: it should return ErrPlayerNotFound
		assert.ErrorIs(t, err, repository.ErrPlayerNotFound)
	})
}
