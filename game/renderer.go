package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme is the colour palette used to draw the board.
type Theme struct {
	Name       string
	Background tcell.Color
	Hidden     tcell.Color
	HiddenText tcell.Color
	Flagged    tcell.Color
	FlagText   tcell.Color
	Revealed   tcell.Color
	Mine       tcell.Color
	MineText   tcell.Color
	StatusText tcell.Color
	Numbers    [9]tcell.Color
}

var (
	LightTheme = Theme{
		Name:       "light",
		Background: tcell.ColorWhite,
		Hidden:     tcell.ColorSteelBlue,
		HiddenText: tcell.ColorWhite,
		Flagged:    tcell.ColorLightSteelBlue,
		FlagText:   tcell.ColorNavy,
		Revealed:   tcell.ColorAliceBlue,
		Mine:       tcell.ColorRed,
		MineText:   tcell.ColorWhite,
		StatusText: tcell.ColorBlack,
		Numbers: [9]tcell.Color{
			tcell.ColorBlack,
			tcell.ColorBlue,
			tcell.ColorGreen,
			tcell.ColorRed,
			tcell.ColorPurple,
			tcell.ColorOlive,
			tcell.ColorFuchsia,
			tcell.ColorBlack,
			tcell.ColorGray,
		},
	}

	DarkTheme = Theme{
		Name:       "dark",
		Background: tcell.ColorBlack,
		Hidden:     tcell.ColorNavy,
		HiddenText: tcell.ColorWhite,
		Flagged:    tcell.ColorRoyalBlue,
		FlagText:   tcell.ColorLightSteelBlue,
		Revealed:   tcell.ColorDarkSlateGray,
		Mine:       tcell.ColorRed,
		MineText:   tcell.ColorWhite,
		StatusText: tcell.ColorWhite,
		Numbers: [9]tcell.Color{
			tcell.ColorWhite,
			tcell.ColorLightSkyBlue,
			tcell.ColorLightGreen,
			tcell.ColorSalmon,
			tcell.ColorViolet,
			tcell.ColorYellow,
			tcell.ColorPink,
			tcell.ColorWhite,
			tcell.ColorSilver,
		},
	}
)

// Renderer draws session snapshots into a tview table and a status line.
type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
	theme      Theme
}

func NewRenderer(theme Theme) *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView(),
		theme:      theme,
	}

	r.boardTable.SetSelectable(true, true)
	r.status.SetTextAlign(tview.AlignCenter)
	r.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.status, 1, 0, false).
		AddItem(r.boardTable, 0, 1, true)

	r.applyTheme()
	return r
}

// Root is the primitive to hand to the tview application.
func (r *Renderer) Root() tview.Primitive { return r.layout }

func (r *Renderer) Table() *tview.Table { return r.boardTable }

func (r *Renderer) Theme() Theme { return r.theme }

// SetTheme switches palettes. The next Render picks up the new colours.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
	r.applyTheme()
}

// Selection returns the row and column under the cursor.
func (r *Renderer) Selection() (row, col int) {
	return r.boardTable.GetSelection()
}

func (r *Renderer) Select(row, col int) {
	r.boardTable.Select(row, col)
}

// StatusText returns the current status line.
func (r *Renderer) StatusText() string {
	return r.status.GetText(true)
}

// Render redraws every cell and the status line from snap.
func (r *Renderer) Render(snap Snapshot) {
	for row := range snap.Cells {
		for col := range snap.Cells[row] {
			r.renderCell(snap, row, col)
		}
	}
	r.status.SetText(statusLine(snap))
}

func (r *Renderer) renderCell(snap Snapshot, row, col int) {
	cell := snap.Cells[row][col]

	text, fg, bg := " . ", r.theme.HiddenText, r.theme.Hidden
	switch {
	case cell.IsRevealed && cell.IsMine:
		text, fg, bg = " M ", r.theme.MineText, r.theme.Mine
	case cell.IsRevealed:
		text, fg, bg = "   ", r.theme.Numbers[cell.NeighborMines], r.theme.Revealed
		if cell.NeighborMines > 0 {
			text = " " + strconv.Itoa(cell.NeighborMines) + " "
		}
	case cell.IsFlagged:
		text, fg, bg = " F ", r.theme.FlagText, r.theme.Flagged
	}

	r.boardTable.SetCell(row, col, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetBackgroundColor(bg))
}

func (r *Renderer) applyTheme() {
	r.boardTable.SetBackgroundColor(r.theme.Background)
	r.status.SetBackgroundColor(r.theme.Background)
	r.status.SetTextColor(r.theme.StatusText)
}

func statusLine(snap Snapshot) string {
	line := fmt.Sprintf("Flags: %d   Time: %s", snap.RemainingFlags, formatTime(snap.ElapsedSeconds))
	switch snap.State {
	case Won:
		line += "   You won!"
	case Lost:
		line += "   Game over!"
	}
	return line
}

// formatTime renders seconds as mm:ss. Minutes keep growing past 99.
func formatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
