package game

// Cell: значение клетки доски. Это флаги, а не перечисление:
// бит 0 означает камень чёрных, бит 1 камень белых.
type Cell = int

const (
	CellEmpty    Cell = 0
	CellBlack    Cell = 1
	CellWhite    Cell = 2
	CellOffBoard Cell = 7
)

const (
	ColorBlack = 1
	ColorWhite = 2
)

// SupportedWidths lists the playable board sizes.
var SupportedWidths = []int{9, 13, 19}

// Board is a padded board: (width+2)*(width+2) cells with a one-cell
// off-board border, indexed as row*(width+2)+col.
type Board []int

// NewBoard returns an empty board of the given width with the border filled
// with CellOffBoard.
func NewBoard(width int) Board {
	rangeSize := width + 2
	board := make(Board, rangeSize*rangeSize)
	for row := 0; row < rangeSize; row++ {
		for col := 0; col < rangeSize; col++ {
			if row == 0 || col == 0 || row == rangeSize-1 || col == rangeSize-1 {
				board[row*rangeSize+col] = CellOffBoard
			}
		}
	}
	return board
}

func ColorName(color int) string {
	if color == ColorBlack {
		return "Black (X)"
	}
	return "White (O)"
}

func IsSupportedWidth(width int) bool {
	for _, w := range SupportedWidths {
		if w == width {
			return true
		}
	}
	return false
}
