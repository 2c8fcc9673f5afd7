package game

const (
	MoveTypeCoordinate = "coordinate"
	MoveTypePass       = "pass"
	MoveTypeResign     = "resign"
)

// @name MoveRequest
type MoveRequest struct {
	Board       Board    `json:"board"`
	BoardWidth  int      `json:"board_width"`
	BoardRange  int      `json:"board_range"`
	MoveHistory []string `json:"move_history"`
	Color       int      `json:"color"`
}

// @name MoveSuggestion
type MoveSuggestion struct {
	MoveType  string         `json:"move_type"`
	Move      string         `json:"move"`
	Reasoning string         `json:"reasoning"`
	Thinking  string         `json:"thinking"`
	Tokens    map[string]int `json:"tokens"`
}

// Completion is the part of a chat-completion response the move adapter reads.
type Completion struct {
	RequestID    string
	Content      string
	FinishReason string
	Tokens       map[string]int
}
