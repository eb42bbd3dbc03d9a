package usecase

import (
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// Operation is one required method of a capability, bound to a variant.
// Setup, when set, runs before the "before" snapshot is taken. It puts the
// variant in a state where a correct Invoke must change something.
type Operation struct {
	Name   string
	Setup  func()
	Invoke func()
}

// Violation records an operation that left the variant exactly as it was.
type Violation struct {
	Variant   string
	Operation string
}

// CheckOperations invokes each operation in order and reports the ones with no
// observable effect on subject.
func CheckOperations(variant string, subject ports.Observable, ops []Operation) []Violation {
	var out []Violation
	for _, op := range ops {
		if op.Setup != nil {
			op.Setup()
		}
		before := subject.Snapshot()
		op.Invoke()
		if subject.Snapshot() == before {
			out = append(out, Violation{Variant: variant, Operation: op.Name})
		}
	}
	return out
}

// RobotScoutOperations lists every RobotScout method. Movement runs first so a
// later jump starts from the target. The move starts one degree off target, so
// a robot already parked there is not flagged.
func RobotScoutOperations(r ports.RobotScout, target domain.Coordinates) []Operation {
	return []Operation{
		{
			Name:   "go_to_location",
			Setup:  func() { r.GoToLocation(target.Lat+1, target.Long+1) },
			Invoke: func() { r.GoToLocation(target.Lat, target.Long) },
		},
		{Name: "jump", Invoke: r.Jump},
	}
}

func RobotScoutMk2Operations(r ports.RobotScoutMk2, target domain.Coordinates) []Operation {
	return []Operation{
		{Name: "spy_at_location", Invoke: func() { r.SpyAtLocation(target.Lat, target.Long) }},
	}
}

func LightweightRobotOperations(r ports.LightweightRobot, target domain.Coordinates) []Operation {
	return append(RobotScoutMk2Operations(r, target),
		Operation{Name: "fly", Invoke: r.Fly},
	)
}
