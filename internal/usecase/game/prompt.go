package game

import (
	"fmt"
	"strings"

	"llm_advisor/internal/domain/game"
)

const noMovesText = "No moves yet (start of game)"

const systemPrompt = `You are a strong Go (baduk) player who understands strategy, tactics and joseki.

When you look at a position, weigh:
- how safe each group is and how many liberties it has
- the balance between territory and influence
- which direction play should develop in
- forcing sequences and tactical tricks
- shape quality and efficiency

IMPORTANT: columns are lettered A-H, J-T. The letter 'I' is never used, so it cannot be confused with the digit 1.
Valid coordinates run from A1 to T19 without I. D4, K10 and Q16 are valid; I4 and I10 are INVALID.`

const jsonOnlyDirective = "IMPORTANT: Reply with ONLY a valid JSON object. No markdown, no code fences, no commentary - raw JSON only."

const userPromptTemplate = `You are playing Go on a %dx%d board.

Current board:
%s

Moves so far:
%s

You play %s.

Legend:
- '.' is an empty intersection
- 'X' is a Black stone
- 'O' is a White stone
- Coordinates use A-H, J-T (no 'I'), for example D4, K10, Q16
- Answer 'PASS' when no move is worth playing

Choose your next move. Look at:
1. Opponent stones you can capture because they have a single liberty left
2. Your own groups that are short of liberties
3. Territory and influence
4. Strong shape

Work through the position:
- Where are the important areas?
- Which tactics are available?
- Which sequences did you read?
- Why is your move the best one?

IMPORTANT: Respond with JSON in exactly this shape:
{
  "move_type": "coordinate",
  "move": "D4",
  "reasoning": "Short explanation",
  "thinking": "Full thought process"
}

move_type must be one of: 'coordinate', 'pass', 'resign'
move must be a coordinate such as 'D4', or 'PASS', or 'RESIGN'`

func SystemPrompt() string {
	return systemPrompt + "\n\n" + jsonOnlyDirective
}

// FormatMoveHistory numbers the moves starting from 1.
func FormatMoveHistory(moveHistory []string) string {
	if len(moveHistory) == 0 {
		return noMovesText
	}
	var sb strings.Builder
	for i, move := range moveHistory {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, move))
	}
	return sb.String()
}

func UserPrompt(boardText string, boardWidth int, moveHistory []string, color int) string {
	return fmt.Sprintf(userPromptTemplate,
		boardWidth, boardWidth,
		boardText,
		FormatMoveHistory(moveHistory),
		game.ColorName(color),
	)
}
