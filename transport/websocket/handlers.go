package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

var (
	errUnknownPlayer = errors.New("player is not connected")
	errMissingCell   = errors.New("cell is required")
)

// handleConnect - registers a new player or resumes the session of a known one.
func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.playerService.GetOrCreate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == playerID {
		that.logger.Info("Player connected", "playerID", player.ID)
	} else {
		that.logger.Info("Registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Player: player})
}

// handleNewGame - returns the player's in-flight game against the bot,
// creating one when none exists. When the bot draws X it has already opened.
func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload RequestPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Player == nil || payload.Player.ID == "" {
		return errUnknownPlayer
	}

	player, err := that.playerService.GetPlayerByID(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	that.logger.Info("Game ready", "gameID", game.ID, "playerID", player.ID, "mark", player.Mark)

	return that.sendMessage(conn, msg.Action, ResponsePayload{
		Player: player,
		Game:   newGameResponse(game),
	})
}

// handleTurn - applies the player's move; the bot's answer is already on the
// returned board.
func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload RequestPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Player == nil || payload.Player.ID == "" {
		return errUnknownPlayer
	}

	if payload.Cell == nil {
		return errMissingCell
	}

	game, err := that.gamePlayService.MakeTurn(ctx, payload.Player.ID, *payload.Cell)
	if err != nil {
		// An invalid move still reports the current position so the
		// client can re-prompt.
		if game != nil {
			response := ResponsePayload{Game: newGameResponse(game), Error: err.Error()}
			return that.sendMessage(conn, msg.Action, response)
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: newGameResponse(game)})
}
