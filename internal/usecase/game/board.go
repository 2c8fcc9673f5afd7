package game

import (
	"fmt"
	"strings"

	"llm_advisor/internal/domain/game"
)

// буква I пропускается, чтобы не путать её с 1
const columnLetters = "ABCDEFGHJKLMNOPQRST"

// ColumnLetter returns the letter of a 0-based column.
func ColumnLetter(col int) byte {
	return columnLetters[col]
}

func boardHeader(boardWidth int) string {
	width := boardWidth
	if width != 9 && width != 13 {
		width = len(columnLetters)
	}
	letters := make([]string, 0, width)
	for col := 0; col < width; col++ {
		letters = append(letters, string(ColumnLetter(col)))
	}
	return "    " + strings.Join(letters, " ")
}

func cellSymbol(cell int) string {
	switch {
	case cell == game.CellEmpty:
		return ". "
	case cell&game.CellBlack != 0:
		return "X "
	case cell&game.CellWhite != 0:
		return "O "
	}
	return ""
}

// BoardLines renders the padded board as a header line followed by one line
// per playable row, top row first. Inputs are trusted.
func BoardLines(board []int, boardWidth, boardRange int) []string {
	lines := make([]string, 0, max(boardRange-1, 1))
	lines = append(lines, boardHeader(boardWidth))

	for row := 1; row < boardRange-1; row++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%2d  ", boardWidth-row+1))
		for col := 1; col < boardRange-1; col++ {
			sb.WriteString(cellSymbol(board[row*boardRange+col]))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return lines
}

func FormatBoardAsText(board []int, boardWidth, boardRange int) string {
	return strings.Join(BoardLines(board, boardWidth, boardRange), "\n")
}
