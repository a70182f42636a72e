package mode

import "time"

// Mode is the homepage state: the full marketing site, or the gated
// drop signup page.
type Mode string

const (
	ModeNormal Mode = "NORMAL"
	ModeDrop   Mode = "DROP"
)

func FromBool(isDropActive bool) Mode {
	if isDropActive {
		return ModeDrop
	}
	return ModeNormal
}

func (m Mode) IsDrop() bool {
	return m == ModeDrop
}

// Settings is the single globally shared record behind the flag. The
// revision increments on every write so concurrent administrator writes
// are detectable.
type Settings struct {
	IsDropActive bool
	Revision     int64
	UpdatedAt    time.Time
}
