// Package ztype implements ZType, a falling-word typing game.
// Words drop from the top of the screen; typing a word's letters in order
// destroys it. The game ends when any word reaches the bottom.
package ztype

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ztype/internal/config"
	platformcore "github.com/vovakirdan/tui-ztype/internal/core"
	"github.com/vovakirdan/tui-ztype/internal/games/ztype/core"
	"github.com/vovakirdan/tui-ztype/internal/registry"
)

// Layout of the terminal around the playfield.
const (
	hudRows    = 1 // Score line at the top
	groundRows = 1 // Ground line at the bottom
	GroundChar = '═'
)

// Package-level variables for configuration
var (
	selectedConfig = config.DefaultZTypeConfig()
	logger         = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.ZTypeConfig) {
	selectedConfig = cfg
}

// SetLogger routes game events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("ztype", func() registry.Game {
		return New()
	})
}

// Game adapts the pure ZType state machine to the arcade platform.
type Game struct {
	cfg     config.ZTypeConfig
	state   core.State
	paused  bool
	screenW int
	screenH int
}

// New creates a new ZType game using the selected configuration.
func New() *Game {
	return &Game{cfg: selectedConfig}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ztype"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ZType"
}

// Params converts a configuration into core game parameters.
func Params(cfg config.ZTypeConfig) core.Params {
	return core.Params{
		CanvasWidth:     cfg.Canvas.Width,
		CanvasHeight:    cfg.Canvas.Height,
		BottomThreshold: cfg.Canvas.BottomThreshold,
		WordLength:      cfg.Words.Length,
		SpawnInterval:   cfg.Words.SpawnInterval,
		InitialWords:    cfg.Words.InitialCount,
		SpawnMargin:     cfg.Words.SpawnMargin,
		Alphabet:        cfg.Words.Alphabet,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.state = core.New(Params(g.cfg), cfg.Seed)

	logger.Debug("game reset", "seed", cfg.Seed, "words", len(g.state.Words()))
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.state.IsEnded() {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.state = g.state.OnTick()
	if g.state.IsEnded() {
		logger.Info("game over", "score", g.state.Score(), "tick", g.state.Tick())
	}

	return platformcore.StepResult{State: g.State()}
}

// Type feeds one typed character to the game.
// Keys are ignored while paused or after game over.
func (g *Game) Type(r rune) {
	if g.paused || g.state.IsEnded() {
		return
	}
	if g.state.DanglingFocus() {
		logger.Warn("focused word missing from list, dropping focus", "tick", g.state.Tick())
	}

	before := g.state.Score()
	g.state = g.state.OnKey(r)
	if g.state.Score() > before {
		logger.Debug("word completed", "score", g.state.Score())
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.state.Score(),
		Ticks:    g.state.Tick(),
		GameOver: g.state.IsEnded(),
		Paused:   g.paused,
	}
}

// Snapshot exposes the core state for tests and debugging.
func (g *Game) Snapshot() core.Snapshot {
	return g.state.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	field := playfield(w, h)
	scene := g.state.Render()
	for _, glyph := range scene.Glyphs {
		drawGlyph(dst, field, scene, glyph)
	}

	dst.DrawHLine(0, h-1, w, GroundChar, platformcore.ColorGray)

	hud := fmt.Sprintf(" ZType  Score: %d  Tick: %d ", g.state.Score(), g.state.Tick())
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)

	switch {
	case g.state.IsEnded():
		row := field.Y + field.H/2 + 3
		dst.DrawTextCentered(platformcore.Min(row, h-1), "Enter to restart  |  Ctrl+C to quit", platformcore.ColorGray)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press Esc to resume")
	}
}

// playfield is the part of the screen words are drawn in.
func playfield(w, h int) platformcore.Rect {
	fieldH := platformcore.Max(h-hudRows-groundRows, 1)
	return platformcore.NewRect(0, platformcore.Min(hudRows, h-1), w, fieldH)
}

// drawGlyph maps a canvas glyph to terminal cells. Text is centred on the
// glyph's x and kept fully on screen when it fits.
func drawGlyph(dst *platformcore.Screen, field platformcore.Rect, scene core.Scene, g core.Glyph) {
	runes := []rune(g.Text)
	col := platformcore.Scale(g.X, scene.Width, field.W)
	row := field.Y + platformcore.Scale(g.Y, scene.Height, field.H)
	row = platformcore.Clamp(row, field.Y, field.Bottom()-1)
	x := platformcore.Clamp(col-len(runes)/2, 0, field.W-len(runes))

	dst.DrawTextColor(x, row, g.Text, glyphColor(g.Kind))
}

func glyphColor(k core.GlyphKind) platformcore.Color {
	switch k {
	case core.GlyphInProgress:
		return platformcore.ColorBrightGreen
	case core.GlyphBanner:
		return platformcore.ColorRed
	default:
		return platformcore.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := platformcore.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorYellow)

	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, platformcore.ColorYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
