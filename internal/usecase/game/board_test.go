package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm_advisor/internal/domain/game"
)

func TestBoardHeader(t *testing.T) {
	assert.Equal(t, "    A B C D E F G H J", boardHeader(9))
	assert.Equal(t, "    A B C D E F G H J K L M N", boardHeader(13))
	assert.Equal(t, "    A B C D E F G H J K L M N O P Q R S T", boardHeader(19))
}

func TestBoardHeaderUnknownWidthFallsBackTo19(t *testing.T) {
	assert.Equal(t, boardHeader(19), boardHeader(7))
	assert.Equal(t, boardHeader(19), boardHeader(0))
}

func TestBoardLinesHeaderLetters(t *testing.T) {
	for _, width := range game.SupportedWidths {
		lines := BoardLines(game.NewBoard(width), width, width+2)
		letters := strings.Fields(lines[0])

		assert.Len(t, letters, width, "width %d", width)
		assert.NotContains(t, letters, "I", "width %d", width)
	}
}

func TestBoardLinesRows(t *testing.T) {
	for _, width := range game.SupportedWidths {
		board := game.NewBoard(width)
		rangeSize := width + 2
		board[1*rangeSize+1] = game.CellBlack
		board[width*rangeSize+width] = game.CellWhite

		lines := BoardLines(board, width, rangeSize)
		require.Len(t, lines, width+1)

		for _, row := range lines[1:] {
			assert.Len(t, row, 4+2*width-1, "width %d row %q", width, row)
			for _, symbol := range strings.Fields(row[4:]) {
				assert.Contains(t, []string{".", "X", "O"}, symbol)
			}
		}
	}
}

func TestBoardLinesRowNumbers(t *testing.T) {
	lines := BoardLines(game.NewBoard(13), 13, 15)

	assert.True(t, strings.HasPrefix(lines[1], "13  "))
	assert.True(t, strings.HasPrefix(lines[4], "10  "))
	assert.True(t, strings.HasPrefix(lines[5], " 9  "))
	assert.True(t, strings.HasPrefix(lines[13], " 1  "))
}

func TestFormatBoardAsTextSingleStone(t *testing.T) {
	board := game.NewBoard(9)
	board[1*11+1] = game.CellBlack

	text := FormatBoardAsText(board, 9, 11)
	lines := strings.Split(text, "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, "    A B C D E F G H J", lines[0])
	assert.Equal(t, " 9  X . . . . . . . .", lines[1])
	assert.Equal(t, " 1  . . . . . . . . .", lines[9])
	assert.Equal(t, 1, strings.Count(text, "X"))
	assert.NotContains(t, text, "O")
}

func TestFormatBoardAsTextCellFlags(t *testing.T) {
	board := game.NewBoard(9)
	board[2*11+3] = game.CellWhite
	board[2*11+4] = game.CellBlack | game.CellWhite

	lines := BoardLines(board, 9, 11)

	// бит 0 проверяется первым
	assert.Equal(t, " 8  . . O X . . . . .", lines[2])
}

func TestFormatBoardAsTextDoesNotMutateBoard(t *testing.T) {
	board := game.NewBoard(9)
	board[5*11+5] = game.CellWhite
	snapshot := append(game.Board(nil), board...)

	_ = FormatBoardAsText(board, 9, 11)

	assert.Equal(t, snapshot, board)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, byte('A'), ColumnLetter(0))
	assert.Equal(t, byte('H'), ColumnLetter(7))
	assert.Equal(t, byte('J'), ColumnLetter(8))
	assert.Equal(t, byte('T'), ColumnLetter(18))
}

func TestBoardLinesDegenerateRange(t *testing.T) {
	for _, boardRange := range []int{-1, 0, 1, 2} {
		assert.NotPanics(t, func() {
			lines := BoardLines(nil, 9, boardRange)
			assert.Equal(t, []string{boardHeader(9)}, lines)
		}, "range %d", boardRange)
	}
}
