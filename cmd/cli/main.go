package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

// main - runs a local game against the engine in the terminal.
func main() {
	fmt.Println("Tic-Tac-Toe (Unbeatable AI). Board positions:")
	fmt.Println(" 1 | 2 | 3")
	fmt.Println("---+---+---")
	fmt.Println(" 4 | 5 | 6")
	fmt.Println("---+---+---")
	fmt.Println(" 7 | 8 | 9")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	humanMark, engineMark := chooseMark(scanner)
	gameEngine := engine.NewEngine()
	board := engine.NewBoard()
	turn := engine.MarkX // X always moves first

	for {
		fmt.Print(renderBoard(board))

		if winner := board.Winner(); winner != engine.EmptyCell {
			fmt.Printf("Player %s wins!\n", winner)
			break
		}

		if board.IsFull() {
			fmt.Println("It's a draw!")
			break
		}

		if turn == humanMark {
			fmt.Println("Your turn.")
			board.Place(readMove(scanner, board), humanMark)
		} else {
			fmt.Println("AI is thinking...")

			cell, err := gameEngine.BestMove(board, engineMark, humanMark)
			if err != nil {
				fmt.Fprintf(os.Stderr, "engine failed: %v\n", err)
				os.Exit(1)
			}

			board.Place(cell, engineMark)
			fmt.Printf("AI placed %s at position %d.\n", engineMark, cell+1)
		}

		if turn == engine.MarkX {
			turn = engine.MarkO
		} else {
			turn = engine.MarkX
		}
	}

	fmt.Println("Game over.")
}

// chooseMark - lets the human pick X or O; the engine takes the other mark.
func chooseMark(scanner *bufio.Scanner) (string, string) {
	for {
		fmt.Print("Choose your symbol ('X' or 'O') [X goes first]: ")
		if !scanner.Scan() {
			os.Exit(0)
		}

		switch choice := strings.ToUpper(strings.TrimSpace(scanner.Text())); choice {
		case engine.MarkX:
			return engine.MarkX, engine.MarkO
		case engine.MarkO:
			return engine.MarkO, engine.MarkX
		default:
			fmt.Println("Please enter 'X' or 'O'.")
		}
	}
}

// readMove - asks for a move until the human enters a free cell. Positions are
// shown 1-9 and mapped to the board's 0-8 indexing.
func readMove(scanner *bufio.Scanner, board engine.Board) int {
	for {
		fmt.Print("Enter your move (1-9), or 'q' to quit: ")
		if !scanner.Scan() {
			os.Exit(0)
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			fmt.Println("Quitting. Bye!")
			os.Exit(0)
		}

		position, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Invalid input. Enter a number from 1 to 9.")
			continue
		}

		if position < 1 || position > 9 {
			fmt.Println("Please enter a number from 1 to 9.")
			continue
		}

		cell := position - 1
		if board[cell] != engine.EmptyCell {
			fmt.Println("That cell is already taken. Choose another.")
			continue
		}

		return cell
	}
}

func renderBoard(board engine.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			mark := board[row*3+col]
			if mark == engine.EmptyCell {
				mark = " "
			}
			cells[col] = mark
		}

		fmt.Fprintf(&sb, " %s | %s | %s \n", cells[0], cells[1], cells[2])
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}
