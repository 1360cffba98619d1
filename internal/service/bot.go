package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	engine engine.Engine
}

func NewBotService(gameEngine engine.Engine) BotService {
	return &botService{
		engine: gameEngine,
	}
}

// MakeTurn - lets the bot play its optimal move on the given game.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer, humanPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
		} else {
			humanPlayer = player
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	opponentMark := entity.PlayerX
	if humanPlayer != nil {
		opponentMark = humanPlayer.Mark
	}

	chosenCell, err := that.engine.BestMove(game.Board, botPlayer.Mark, opponentMark)
	if err != nil {
		if errors.Is(err, engine.ErrNoAvailableCells) || errors.Is(err, engine.ErrGameDecided) {
			return ErrNoAvailableMoves
		}

		return fmt.Errorf("failed to pick a move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
