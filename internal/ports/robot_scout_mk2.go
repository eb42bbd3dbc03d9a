package ports

// RobotScoutMk2 is the narrow scout capability every robot can honour.
type RobotScoutMk2 interface {
	SpyAtLocation(lat, long float64)
}

// Flyer is implemented by robots that can leave the ground.
type Flyer interface {
	Fly()
}

// LightweightRobot is a scout that can also fly.
type LightweightRobot interface {
	RobotScoutMk2
	Flyer
}
