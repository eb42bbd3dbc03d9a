package domain

// Coordinates is a point a robot can be sent to.
type Coordinates struct {
	Lat  float64
	Long float64
}

// RobotState is a snapshot of everything an observer can see about a robot.
// It is comparable: two equal snapshots taken around an operation mean the
// operation had no observable effect.
type RobotState struct {
	Position Coordinates
	Altitude float64
	Jumps    int
	Reports  int
}
