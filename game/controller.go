package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/brodridev/minesweeper/config"
)

// ThemeStore persists the dark-mode choice between runs.
type ThemeStore interface {
	SetDarkMode(dark bool) error
}

// GameController turns key presses into session operations and keeps the
// renderer in sync with the session.
type GameController struct {
	session  *Session
	renderer *Renderer
	prefs    ThemeStore
	game     config.Game
	log      logrus.FieldLogger
	app      *tview.Application
}

func NewGameController(session *Session, renderer *Renderer, prefs ThemeStore, game config.Game, log logrus.FieldLogger) *GameController {
	return &GameController{
		session:  session,
		renderer: renderer,
		prefs:    prefs,
		game:     game,
		log:      log,
	}
}

// StartGame begins a new game with the controller's board configuration.
func (c *GameController) StartGame() error {
	return c.session.Initialize(c.game)
}

// Run starts a game and blocks until the player quits.
func (c *GameController) Run() error {
	c.app = tview.NewApplication()

	// Redraws may be triggered from the ticker goroutine or from inside an
	// input handler, so they always go through the application queue.
	c.session.Subscribe(func(Snapshot) {
		go c.app.QueueUpdateDraw(func() {
			c.renderer.Render(c.session.Snapshot())
		})
	})

	if err := c.StartGame(); err != nil {
		return err
	}
	c.renderer.Render(c.session.Snapshot())
	c.renderer.Select(0, 0)

	c.renderer.Table().SetInputCapture(c.HandleKey)
	c.app.SetRoot(c.renderer.Root(), true).SetFocus(c.renderer.Table())

	defer c.session.Close()
	return c.app.Run()
}

// HandleKey applies a key press to the cell under the cursor. Keys the game
// does not use are passed on so the table can move the cursor.
func (c *GameController) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	row, col := c.renderer.Selection()

	switch event.Key() {
	case tcell.KeyEnter:
		c.session.Activate(row, col)
		return nil
	case tcell.KeyEscape:
		c.TerminateGame()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			c.session.Activate(row, col)
		case 'f', 'F':
			c.session.Mark(row, col)
		case 'n', 'N':
			if err := c.StartGame(); err != nil {
				c.log.WithError(err).Error("start new game")
			}
		case 'd', 'D':
			c.ToggleTheme()
		case 'q', 'Q':
			c.TerminateGame()
		default:
			return event
		}
		return nil
	}

	return event
}

// ToggleTheme flips between the light and dark palettes and saves the choice.
func (c *GameController) ToggleTheme() {
	next := DarkTheme
	if c.renderer.Theme().Name == DarkTheme.Name {
		next = LightTheme
	}
	c.renderer.SetTheme(next)
	c.renderer.Render(c.session.Snapshot())

	if c.prefs == nil {
		return
	}
	if err := c.prefs.SetDarkMode(next.Name == DarkTheme.Name); err != nil {
		c.log.WithError(err).Warn("save theme preference")
	}
}

// TerminateGame stops the ticker and leaves the application loop.
func (c *GameController) TerminateGame() {
	c.log.WithField("game", c.session.Snapshot().ID).Info("terminating the game")
	c.session.Close()
	if c.app != nil {
		c.app.Stop()
	}
}
