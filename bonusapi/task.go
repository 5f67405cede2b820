package bonusapi

import (
	"context"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/config"

	"github.com/jonboulle/clockwork"
)

// NewActivationTask builds the activation task: request the activation and,
// when the backend accepts it for asynchronous processing, poll until the
// bonus is active or the polling timeout expires.
func NewActivationTask(api Activator, clock clockwork.Clock, cfg config.PollingConfig) activation.Task {
	return func(ctx context.Context) activation.Result {
		out, err := api.StartActivation(ctx)
		if err != nil {
			l().Warnf("activation request failed: %v", err)
			return activation.Failure(err)
		}
		if out.Status != activation.StatusProgress {
			return activation.Success(out.Status, out.Bonus)
		}
		return poll(ctx, api, clock, cfg, out.AcceptedID)
	}
}

func poll(ctx context.Context, api Activator, clock clockwork.Clock, cfg config.PollingConfig, id string) activation.Result {
	deadline := clock.Now().Add(cfg.Timeout)

	for {
		timer := clock.NewTimer(cfg.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return activation.Failure(ctx.Err())
		case <-timer.Chan():
		}

		bonus, done, err := api.GetActivation(ctx, id)
		if err != nil {
			l().Warnf("polling activation %s failed: %v", id, err)
			return activation.Failure(err)
		}
		if done {
			return activation.Success(activation.StatusSuccess, bonus)
		}
		if !clock.Now().Before(deadline) {
			l().Infof("activation %s still processing after %s", id, cfg.Timeout)
			return activation.Success(activation.StatusTimeout, nil)
		}
	}
}
