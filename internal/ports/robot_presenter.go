package ports

import "github.com/aalvaropc/solidbots/internal/domain"

// RobotPresenter turns a robot record into a greeting somewhere.
type RobotPresenter interface {
	Greet(robot domain.RobotMk2) error
}
