package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Line is a winning triple described by its two endpoint cells; the middle cell is implied.
type Line struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// Cells returns the three cells of the line from Start to End.
func (that Line) Cells() [3]Coord {
	mid := Coord{Row: (that.Start.Row + that.End.Row) / 2, Col: (that.Start.Col + that.End.Col) / 2}
	return [3]Coord{that.Start, mid, that.End}
}

// Contains reports whether cell lies on the line.
func (that Line) Contains(cell Coord) bool {
	for _, c := range that.Cells() {
		if c == cell {
			return true
		}
	}

	return false
}

type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Line   *Line  `json:"line,omitempty"`
}

// WinCombos is scanned in this order: rows, columns, main diagonal, anti-diagonal.
// The first complete line decides the reported winner.
var WinCombos = [8][3]Coord{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsWinFor(mark Mark) bool {
	return that.Status == StatusWin && that.Winner == mark
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return string(that.Winner) + " wins!"
	case StatusDraw:
		return "It's a draw!"
	default:
		return "in progress"
	}
}

// Evaluate reports the outcome of a board. It never caches.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a := board[combo[0].Row][combo[0].Col]
		b := board[combo[1].Row][combo[1].Col]
		c := board[combo[2].Row][combo[2].Col]

		if a != EmptyCell && a == b && b == c {
			return Outcome{
				Status: StatusWin,
				Winner: a,
				Line:   &Line{Start: combo[0], End: combo[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Ongoing()
}
