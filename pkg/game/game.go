package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/outrider/pkg/config"
	"github.com/golangdaddy/outrider/pkg/race"
	"github.com/golangdaddy/outrider/pkg/ui"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	seed          int64
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance for the given track seed
func NewGame(seed int64) *Game {
	game := &Game{seed: seed}
	game.showTitle()
	return game
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.seed, g.startRace)
}

// startRace generates a fresh track and transitions to the race
func (g *Game) startRace() {
	t := race.NewTrack(g.seed, config.Sections)
	g.currentScreen = NewRaceScreen(t, g.showTitle)
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return config.ScreenWidth, config.ScreenHeight
}
