package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/fleet"
	"github.com/aalvaropc/solidbots/internal/usecase"
)

var rendezvous = domain.Coordinates{Lat: 51.5072, Long: -0.1276}

func substitutionLesson(deps Deps) func(context.Context, io.Writer) error {
	return func(_ context.Context, w io.Writer) error {
		heading(w, "Before: RobotScout{GoToLocation, Jump}")
		heavy := fleet.NewHeavyRobot()
		nimble := fleet.NewNimbleRobot()

		n := usecase.NewJumpDrill(heavy, nimble).Execute(rendezvous)
		fmt.Fprintf(w, "jump drill ran for %d scouts\n", n)
		fmt.Fprintf(w, "  nimble robot jumps: %d\n", nimble.Snapshot().Jumps)
		fmt.Fprintf(w, "  heavy robot jumps:  %d\n", heavy.Snapshot().Jumps)

		checked := fleet.NewHeavyRobot()
		before := usecase.CheckOperations("heavy_robot", checked, usecase.RobotScoutOperations(checked, rendezvous))
		for _, v := range before {
			fmt.Fprintf(w, "  silent no-op: %s.%s\n", v.Variant, v.Operation)
		}
		deps.Logger.Debug("lesson.substitution.before", "violations", len(before))

		heading(w, "After: RobotScoutMk2{SpyAtLocation} + LightweightRobot{Fly}")
		heavyScout := fleet.NewHeavyScout()
		drone := fleet.NewDrone()

		sent := usecase.NewScoutMission(heavyScout, drone).Execute(rendezvous)
		flown := usecase.NewAirPatrol(drone).Execute(rendezvous)
		fmt.Fprintf(w, "scout mission dispatched %d scouts, air patrol launched %d drones\n", sent, flown)

		checkedScout := fleet.NewHeavyScout()
		checkedDrone := fleet.NewDrone()
		var after []usecase.Violation
		after = append(after, usecase.CheckOperations("heavy_scout", checkedScout, usecase.RobotScoutMk2Operations(checkedScout, rendezvous))...)
		after = append(after, usecase.CheckOperations("drone", checkedDrone, usecase.LightweightRobotOperations(checkedDrone, rendezvous))...)
		if len(after) == 0 {
			fmt.Fprintln(w, "  every required operation has an observable effect")
		}
		for _, v := range after {
			fmt.Fprintf(w, "  silent no-op: %s.%s\n", v.Variant, v.Operation)
		}
		deps.Logger.Debug("lesson.substitution.after", "violations", len(after))
		return nil
	}
}
