// Package game provides the session state and the frame loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shadowroom/internal/gamedata"
	"github.com/samdwyer/shadowroom/internal/telemetry"
	"github.com/samdwyer/shadowroom/internal/ui"
	"github.com/samdwyer/shadowroom/internal/world"
)

// ErrUnknownRoom is returned when the configured room ID is not in the data set.
var ErrUnknownRoom = errors.New("unknown room")

// Game holds the entire game state.
type Game struct {
	cfg       Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	atlas     *gamedata.Atlas
	rooms     *gamedata.RoomRegistry
	session   *Session
	running   bool
	lastFrame time.Time
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to screen. It loads the atlas and
// rooms, from cfg.DataDir when set and the embedded data otherwise.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}

	var (
		atlas *gamedata.Atlas
		rooms *gamedata.RoomRegistry
		err   error
	)
	if cfg.DataDir != "" {
		var fsys fs.FS = os.DirFS(cfg.DataDir)
		if atlas, err = gamedata.LoadAtlasFrom(fsys); err != nil {
			return nil, err
		}
		if rooms, err = gamedata.LoadRoomRegistryFrom(fsys); err != nil {
			return nil, err
		}
	} else {
		if atlas, err = gamedata.LoadAtlas(); err != nil {
			return nil, err
		}
		if rooms, err = gamedata.LoadRoomRegistry(); err != nil {
			return nil, err
		}
	}

	ui.ConfigureLocale(cfg.LocaleDir, cfg.Locale)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		atlas:    atlas,
		rooms:    rooms,
		running:  true,
	}, nil
}

// Session returns the active session, or nil before Run has loaded a room.
func (g *Game) Session() *Session {
	return g.session
}

// Run loads the configured room and draws frames until the player quits or
// ctx is cancelled. Input is read on a separate goroutine and handed to the
// loop, so the session is only ever touched from the caller's goroutine.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.start(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	g.lastFrame = time.Now()
	g.frame(g.lastFrame)

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.frame(now)
		}
	}

	return nil
}

// start loads the configured room into a new session.
func (g *Game) start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	room, err := g.selectRoom(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	session, err := NewSession(ctx, room, g.atlas)
	if err != nil {
		span.RecordError(err)
		return err
	}
	g.session = session
	g.renderer.ResetCamera()

	span.SetAttributes(
		attribute.String("session.id", session.ID.String()),
		attribute.String("room.id", room.ID),
		attribute.Int("frame_rate", g.cfg.FrameRate),
	)
	return nil
}

// selectRoom resolves cfg.RoomID to a layout.
func (g *Game) selectRoom(ctx context.Context) (*gamedata.RoomDef, error) {
	switch g.cfg.RoomID {
	case "":
		return g.rooms.Get(0), nil
	case world.GeneratedRoomID:
		seed := g.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		return world.GenerateRoom(ctx, world.DefaultWidth, world.DefaultHeight, rng), nil
	}

	room := g.rooms.GetByID(g.cfg.RoomID)
	if room == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, g.cfg.RoomID)
	}
	return room, nil
}

// pollEvents forwards terminal events until the screen is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame draws one frame with the time elapsed since the previous one, then
// gives the enemies their turn.
func (g *Game) frame(now time.Time) {
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now

	g.renderer.Render(ui.Frame{
		Grid:         g.session.Grid(),
		Mask:         g.session.Mask(),
		Player:       g.session.Player(),
		Displacement: g.session.Displacement(),
		Title:        g.session.Room.Name,
	}, dt)
	g.session.MoveEnemies()
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// apply carries out a command.
func (g *Game) apply(ctx context.Context, cmd Command) {
	if dir, ok := cmd.Direction(); ok {
		g.session.Move(ctx, dir)
		return
	}

	switch cmd {
	case CmdQuit:
		g.running = false
	case CmdReload:
		// The room already loaded once, so reloading it cannot fail.
		if err := g.session.Reload(ctx); err != nil {
			return
		}
		g.renderer.ResetCamera()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
