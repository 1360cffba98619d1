package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameResponse  `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type GameResponse struct {
	ID     string       `json:"id"`
	Board  engine.Board `json:"board"`
	Turn   string       `json:"player_turn"`
	Winner string       `json:"winner"`
	Status string       `json:"status"`
}

func newGameResponse(game *entity.Game) *GameResponse {
	return &GameResponse{
		ID:     game.ID,
		Board:  game.Board,
		Turn:   game.Turn,
		Winner: game.Winner,
		Status: game.Status,
	}
}
