package shooter

import (
	"context"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// RunOptions configures a blocking session run.
type RunOptions struct {
	Clock    *core.Clock // paces ticks; nil runs as fast as possible
	MaxTicks int         // stop after this many ticks; 0 means no limit
	Surface  Surface     // optional draw target
	OnTick   func(res core.StepResult, events []Event)
}

// Run drives a session until it terminates, MaxTicks is reached or ctx is
// cancelled. Each iteration waits on the clock before ticking.
func Run(ctx context.Context, s *Session, src InputSource, opts RunOptions) (core.StepResult, error) {
	var res core.StepResult
	for n := 0; opts.MaxTicks <= 0 || n < opts.MaxTicks; n++ {
		if opts.Clock != nil {
			if err := opts.Clock.Wait(ctx); err != nil {
				return res, err
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}

		res = s.Tick(src.Next(s), opts.Surface)
		events := s.Events()
		if opts.OnTick != nil {
			opts.OnTick(res, events)
		}
		if res.Terminated {
			return res, nil
		}
	}
	return res, nil
}
