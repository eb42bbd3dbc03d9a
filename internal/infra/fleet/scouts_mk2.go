package fleet

import (
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// cruiseAltitude is how far a drone climbs on each Fly call, in metres.
const cruiseAltitude = 120

// HeavyScout only spies. It never has to pretend it can fly or jump.
type HeavyScout struct {
	state domain.RobotState
}

func NewHeavyScout() *HeavyScout { return &HeavyScout{} }

var (
	_ ports.RobotScoutMk2 = (*HeavyScout)(nil)
	_ ports.Observable    = (*HeavyScout)(nil)
)

func (r *HeavyScout) SpyAtLocation(lat, long float64) {
	r.state.Position = domain.Coordinates{Lat: lat, Long: long}
	r.state.Reports++
}

func (r *HeavyScout) Snapshot() domain.RobotState { return r.state }

// Drone is a lightweight scout.
type Drone struct {
	state domain.RobotState
}

func NewDrone() *Drone { return &Drone{} }

var (
	_ ports.LightweightRobot = (*Drone)(nil)
	_ ports.Observable       = (*Drone)(nil)
)

func (d *Drone) SpyAtLocation(lat, long float64) {
	d.state.Position = domain.Coordinates{Lat: lat, Long: long}
	d.state.Reports++
}

func (d *Drone) Fly() { d.state.Altitude += cruiseAltitude }

func (d *Drone) Snapshot() domain.RobotState { return d.state }
