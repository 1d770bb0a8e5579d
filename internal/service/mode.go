package service

import "sync/atomic"

// Mode says where read operations get their data.
type Mode int32

const (
	ModeFixture Mode = iota
	ModeLive
)

func (m Mode) String() string {
	if m == ModeLive {
		return "live"
	}
	return "fixture"
}

// modeFlag is shared by every request. The only transition after construction
// is LIVE -> FIXTURE.
type modeFlag struct {
	v atomic.Int32
}

func (f *modeFlag) load() Mode {
	return Mode(f.v.Load())
}

func (f *modeFlag) init(m Mode) {
	f.v.Store(int32(m))
}

// downgrade reports whether this call performed the transition.
func (f *modeFlag) downgrade() bool {
	return f.v.CompareAndSwap(int32(ModeLive), int32(ModeFixture))
}
