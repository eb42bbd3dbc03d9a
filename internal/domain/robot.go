package domain

import (
	"fmt"
	"io"
	"os"
)

// RobotMk1 holds its own state and also decides how it talks to the outside world.
// Changing the greeting format, or where it goes, means changing the entity.
type RobotMk1 struct {
	name string
	kind string
	out  io.Writer
}

// NewRobotMk1 builds a first generation robot. A nil writer means stdout.
func NewRobotMk1(name, kind string, out io.Writer) RobotMk1 {
	if out == nil {
		out = os.Stdout
	}
	return RobotMk1{name: name, kind: kind, out: out}
}

func (r RobotMk1) Name() string { return r.name }
func (r RobotMk1) Type() string { return r.kind }

// Greet writes the greeting straight to the robot's writer.
func (r RobotMk1) Greet() {
	fmt.Fprintf(r.out, "Hello my name is %s and I am a %s robot\n", r.name, r.kind)
}

// RobotMk2 is an immutable record of a robot's name and type.
// Presenters consume it; it never presents itself.
type RobotMk2 struct {
	name string
	kind string
}

func NewRobotMk2(name, kind string) RobotMk2 {
	return RobotMk2{name: name, kind: kind}
}

func (r RobotMk2) Name() string { return r.name }
func (r RobotMk2) Type() string { return r.kind }
