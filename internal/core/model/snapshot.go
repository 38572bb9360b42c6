package model

const (
	// PersistentSlots is the number of dot slots that are always shown.
	PersistentSlots = 5
	// MaxWorkspaces is the hard cap on shown dots.
	MaxWorkspaces = 10
)

// Snapshot is an immutable view of the compositor's workspace layout,
// rebuilt wholesale on every refresh.
type Snapshot struct {
	// CurrentID is the focused workspace, 1-indexed. Zero or negative
	// means a special/scratch workspace that must not be shown.
	CurrentID int
	// Occupied flags workspaces that hold at least one window.
	Occupied [MaxWorkspaces + 1]bool
	// MaxSeenID is the highest occupied workspace id.
	MaxSeenID int
}

// Showable reports whether the snapshot refers to a regular workspace.
func (snapshot Snapshot) Showable() bool {
	return snapshot.CurrentID >= 1
}

// IsOccupied reports whether the given workspace holds windows.
func (snapshot Snapshot) IsOccupied(id int) bool {
	if id < 1 || id > MaxWorkspaces {
		return false
	}
	return snapshot.Occupied[id]
}

// DotCount returns how many indicator dots to draw: at least the
// persistent slots, extended to the highest known workspace, capped at
// MaxWorkspaces.
func (snapshot Snapshot) DotCount() int {
	high := snapshot.MaxSeenID
	if snapshot.CurrentID > high {
		high = snapshot.CurrentID
	}
	if high < PersistentSlots {
		high = PersistentSlots
	}
	if high > MaxWorkspaces {
		high = MaxWorkspaces
	}
	return high
}
