package usecase

import (
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// JumpDrill asks every first generation scout to go somewhere and jump.
// It has no way to tell a robot that jumped from one that ignored it.
type JumpDrill struct {
	scouts []ports.RobotScout
}

func NewJumpDrill(scouts ...ports.RobotScout) *JumpDrill {
	return &JumpDrill{scouts: scouts}
}

func (uc *JumpDrill) Execute(target domain.Coordinates) int {
	for _, s := range uc.scouts {
		s.GoToLocation(target.Lat, target.Long)
		s.Jump()
	}
	return len(uc.scouts)
}

// ScoutMission sends any RobotScoutMk2 to spy on a location.
type ScoutMission struct {
	scouts []ports.RobotScoutMk2
}

func NewScoutMission(scouts ...ports.RobotScoutMk2) *ScoutMission {
	return &ScoutMission{scouts: scouts}
}

// Execute dispatches every scout and returns how many were sent.
func (uc *ScoutMission) Execute(target domain.Coordinates) int {
	for _, s := range uc.scouts {
		s.SpyAtLocation(target.Lat, target.Long)
	}
	return len(uc.scouts)
}

// AirPatrol spies from above with lightweight robots only.
type AirPatrol struct {
	flyers []ports.LightweightRobot
}

func NewAirPatrol(flyers ...ports.LightweightRobot) *AirPatrol {
	return &AirPatrol{flyers: flyers}
}

func (uc *AirPatrol) Execute(target domain.Coordinates) int {
	for _, f := range uc.flyers {
		f.Fly()
		f.SpyAtLocation(target.Lat, target.Long)
	}
	return len(uc.flyers)
}
