package ports

// RobotScout is the first generation scout capability.
// It bundles movement and jumping, so every scout has to claim it can jump.
type RobotScout interface {
	GoToLocation(lat, long float64)
	Jump()
}
