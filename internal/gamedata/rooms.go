package gamedata

import (
	"errors"
	"io/fs"
	"unicode/utf8"
)

// RoomsFilename is the name of the room layout file inside a data filesystem.
const RoomsFilename = "rooms.json"

// RoomDef is a static room layout: rows of single-character tile symbols.
type RoomDef struct {
	ID   string   `json:"id"`   // Unique identifier (e.g., "cellar")
	Name string   `json:"name"` // Display name (e.g., "The Cellar")
	Rows []string `json:"rows"` // Layout, top row first
}

// Width returns the length of the first row in characters.
func (r *RoomDef) Width() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(r.Rows[0])
}

// Height returns the number of rows.
func (r *RoomDef) Height() int {
	return len(r.Rows)
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Rooms []RoomDef `json:"rooms"`
}

// RoomRegistry holds loaded room layouts in file order.
type RoomRegistry struct {
	rooms []RoomDef
}

// NewRoomRegistry creates a registry from loaded room definitions.
func NewRoomRegistry(rooms []RoomDef) *RoomRegistry {
	return &RoomRegistry{rooms: rooms}
}

// LoadRoomRegistry loads the embedded rooms.json.
func LoadRoomRegistry() (*RoomRegistry, error) {
	return LoadRoomRegistryFrom(dataFS)
}

// LoadRoomRegistryFrom loads rooms.json from fsys.
func LoadRoomRegistryFrom(fsys fs.FS) (*RoomRegistry, error) {
	file, err := LoadFrom[RoomsFile](fsys, RoomsFilename)
	if err != nil {
		return nil, err
	}
	if len(file.Rooms) == 0 {
		return nil, errors.New("no rooms loaded from rooms.json")
	}
	return NewRoomRegistry(file.Rooms), nil
}

// MustLoadRoomRegistry loads the embedded rooms, panicking on error.
func MustLoadRoomRegistry() *RoomRegistry {
	registry, err := LoadRoomRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the room at index, or nil if out of range.
func (r *RoomRegistry) Get(index int) *RoomDef {
	if index < 0 || index >= len(r.rooms) {
		return nil
	}
	return &r.rooms[index]
}

// GetByID returns the room with the given ID, or nil if not found.
func (r *RoomRegistry) GetByID(id string) *RoomDef {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return &r.rooms[i]
		}
	}
	return nil
}

// All returns all room definitions.
func (r *RoomRegistry) All() []RoomDef {
	return r.rooms
}

// Count returns the number of rooms in the registry.
func (r *RoomRegistry) Count() int {
	return len(r.rooms)
}
