package usecase

import (
	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/ports"
)

// Introducer greets robots through a presenter; it never formats anything itself.
type Introducer struct {
	presenter ports.RobotPresenter
}

func NewIntroducer(p ports.RobotPresenter) *Introducer {
	return &Introducer{presenter: p}
}

// Execute greets robots in order and stops at the first presenter error.
func (uc *Introducer) Execute(robots ...domain.RobotMk2) error {
	for _, r := range robots {
		if err := uc.presenter.Greet(r); err != nil {
			return err
		}
	}
	return nil
}
