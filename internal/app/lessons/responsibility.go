package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/solidbots/internal/domain"
	"github.com/aalvaropc/solidbots/internal/infra/printer"
	"github.com/aalvaropc/solidbots/internal/usecase"
)

func responsibilityLesson(deps Deps) func(context.Context, io.Writer) error {
	return func(_ context.Context, w io.Writer) error {
		heading(w, "Before: RobotMk1.Greet()")
		domain.NewRobotMk1("Ada", "scout", w).Greet()
		fmt.Fprintln(w, "RobotMk1 holds its state and also decides how and where it speaks.")

		heading(w, "After: RobotMk2 + RobotPrinter")
		ada := domain.NewRobotMk2("Ada", "scout")

		p, err := deps.Presenter(w)
		if err != nil {
			return err
		}
		if err := usecase.NewIntroducer(p).Execute(ada); err != nil {
			return err
		}

		fmt.Fprintln(w, "Same record, another presenter:")
		if err := usecase.NewIntroducer(printer.NewJSONPrinter(w)).Execute(ada); err != nil {
			return err
		}
		return nil
	}
}
