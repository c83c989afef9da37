package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shadowroom/internal/entity"
	"github.com/samdwyer/shadowroom/internal/gamedata"
	"github.com/samdwyer/shadowroom/internal/telemetry"
	"github.com/samdwyer/shadowroom/internal/world"
)

// EnemyMover acts for one enemy tile during the enemy pass.
type EnemyMover interface {
	MoveEnemy(s *Session, pos world.Point, tile *world.Tile)
}

// EnemyMoverFunc adapts a function to EnemyMover.
type EnemyMoverFunc func(s *Session, pos world.Point, tile *world.Tile)

// MoveEnemy calls f.
func (f EnemyMoverFunc) MoveEnemy(s *Session, pos world.Point, tile *world.Tile) {
	f(s, pos, tile)
}

// idleEnemies leaves every enemy where it is.
type idleEnemies struct{}

func (idleEnemies) MoveEnemy(*Session, world.Point, *world.Tile) {}

// Session is one loaded room and everything the player has done in it.
type Session struct {
	ID   uuid.UUID
	Room *gamedata.RoomDef

	atlas    *gamedata.Atlas
	grid     *world.Grid
	mask     *world.Mask
	player   *entity.Player
	lastSeen *world.Tile // what the player is standing on
	enemies  EnemyMover
}

// NewSession loads room and reveals the cells around the player's spawn.
func NewSession(ctx context.Context, room *gamedata.RoomDef, atlas *gamedata.Atlas) (*Session, error) {
	if room == nil {
		return nil, world.ErrEmptyRoom
	}
	s := &Session{
		ID:      uuid.New(),
		Room:    room,
		atlas:   atlas,
		enemies: idleEnemies{},
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload restores the room to its initial layout with nothing revealed but
// the spawn neighbourhood.
func (s *Session) Reload(ctx context.Context) error {
	return s.load(ctx)
}

func (s *Session) load(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "room.load")
	defer span.End()

	grid, err := world.NewGrid(s.Room, s.atlas)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("load room %s: %w", s.Room.ID, err)
	}

	s.grid = grid
	s.mask = world.NewMask(grid.Width(), grid.Height())
	s.player = entity.NewPlayer(grid.Spawn())
	s.lastSeen = world.NewTile(s.atlas.Floor())
	s.mask.Reveal(grid.Spawn(), world.RevealRadius)

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("room.id", s.Room.ID),
		attribute.Int("room.width", grid.Width()),
		attribute.Int("room.height", grid.Height()),
		attribute.Int("player.spawn_x", grid.Spawn().X),
		attribute.Int("player.spawn_y", grid.Spawn().Y),
	)
	return nil
}

// Grid returns the room grid.
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Mask returns the visibility mask.
func (s *Session) Mask() *world.Mask {
	return s.mask
}

// Player returns the player's current cell.
func (s *Session) Player() world.Point {
	return s.player.Pos
}

// Displacement returns the player's net movement since the room was loaded.
func (s *Session) Displacement() world.Point {
	return s.player.Displacement()
}

// LastSeen returns the tile the player is standing on.
func (s *Session) LastSeen() *world.Tile {
	return s.lastSeen
}

// SetEnemyMover replaces the enemy pass behaviour. A nil mover idles.
func (s *Session) SetEnemyMover(m EnemyMover) {
	if m == nil {
		m = idleEnemies{}
	}
	s.enemies = m
}

// Move steps the player one cell in dir. Moves into solid tiles or off the
// grid change nothing and return false. A successful move puts back the tile
// the player was standing on, remembers the tile it steps onto, and reveals
// the cells around the new position.
func (s *Session) Move(ctx context.Context, dir world.Direction) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	from := s.player.Pos
	if cur := s.grid.At(from); cur == nil || !cur.IsPlayer() {
		panic(fmt.Sprintf("game: player tracked at (%d,%d) but grid disagrees", from.X, from.Y))
	}

	to := s.player.Target(dir)
	dest := s.grid.At(to)
	blocked := dest == nil || dest.Solid()

	span.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.Bool("blocked", blocked),
	)
	if blocked {
		return false
	}

	s.grid.Set(from, s.lastSeen)
	s.grid.Set(to, world.NewTile(s.atlas.Player()))
	s.lastSeen = dest
	s.player.Step(dir)

	fresh := s.mask.Reveal(to, world.RevealRadius)

	disp := s.player.Displacement()
	span.SetAttributes(
		attribute.Int("revealed", fresh.Size()),
		attribute.Int("displacement_x", disp.X),
		attribute.Int("displacement_y", disp.Y),
	)
	return true
}

// MoveEnemies runs the enemy mover for every enemy tile, row by row, and
// returns where the enemies were found.
func (s *Session) MoveEnemies() mapset.Set[world.Point] {
	found := mapset.New[world.Point]()
	s.grid.Each(func(p world.Point, t *world.Tile) {
		if !t.Enemy() {
			return
		}
		found.Put(p)
		s.enemies.MoveEnemy(s, p, t)
	})
	return found
}
