package ports

import "github.com/aalvaropc/solidbots/internal/domain"

// Observable exposes a robot's visible state without widening its capabilities.
type Observable interface {
	Snapshot() domain.RobotState
}
