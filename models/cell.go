package models

// Cell is a single square of the board. Row and Col never change once the
// board is created; only IsRevealed and IsFlagged mutate during play.
type Cell struct {
	Row           int
	Col           int
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	NeighborMines int
}

// Coord addresses a cell on the board.
type Coord struct {
	Row int
	Col int
}

// RevealResult tells the caller what a reveal did to the game.
type RevealResult int

const (
	// Continue means no mine was hit; the caller should check for a win.
	Continue RevealResult = iota
	// Lost means the revealed cell was a mine.
	Lost
)

func (r RevealResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
