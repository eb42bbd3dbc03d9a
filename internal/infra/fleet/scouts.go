package fleet

import (
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// HeavyRobot claims to be a RobotScout but is far too heavy to jump.
type HeavyRobot struct {
	state domain.RobotState
}

func NewHeavyRobot() *HeavyRobot { return &HeavyRobot{} }

var (
	_ ports.RobotScout = (*HeavyRobot)(nil)
	_ ports.Observable = (*HeavyRobot)(nil)
)

func (r *HeavyRobot) GoToLocation(lat, long float64) {
	r.state.Position = domain.Coordinates{Lat: lat, Long: long}
}

// Jump does nothing. Callers holding a RobotScout are left waiting.
func (r *HeavyRobot) Jump() {}

func (r *HeavyRobot) Snapshot() domain.RobotState { return r.state }

// NimbleRobot is a RobotScout that honours the whole contract.
type NimbleRobot struct {
	state domain.RobotState
}

func NewNimbleRobot() *NimbleRobot { return &NimbleRobot{} }

var (
	_ ports.RobotScout = (*NimbleRobot)(nil)
	_ ports.Observable = (*NimbleRobot)(nil)
)

func (r *NimbleRobot) GoToLocation(lat, long float64) {
	r.state.Position = domain.Coordinates{Lat: lat, Long: long}
}

func (r *NimbleRobot) Jump() { r.state.Jumps++ }

func (r *NimbleRobot) Snapshot() domain.RobotState { return r.state }
