package headless

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	applog "github.com/PasqualeAiello/io-app/utils/log"
)

// cancelGrace bounds how long an interrupt waits for the attempt to take
// the cancel event.
const cancelGrace = time.Second

func l() *applog.AppLogger {
	return applog.L().With("component", "headless")
}

// Run performs one activation attempt on c. Every line read from in fires
// the restart event; every value received on interrupts fires the cancel
// event. It returns when the attempt ends or ctx is done.
func Run(ctx context.Context, c *Console, task activation.Task, in io.Reader, interrupts <-chan os.Signal) (activation.Outcome, error) {
	defer c.Close()

	session := activation.NewSession(c, c)
	session.Start(ctx, task)

	lines := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- struct{}{}:
			case <-quit:
				return
			}
		}
	}()

	waitCtx, stopWait := context.WithCancel(ctx)
	defer stopWait()
	result := make(chan activation.Outcome, 1)
	go func() {
		o, _ := session.Wait(waitCtx)
		result <- o
	}()

	for {
		select {
		case o := <-result:
			if err := ctx.Err(); err != nil {
				session.Stop()
				return activation.OutcomeAborted, err
			}
			return o, nil
		case <-lines:
			if !session.Continue() {
				l().Debugf("restart ignored: attempt not waiting for it")
			}
		case <-interrupts:
			cctx, cancel := context.WithTimeout(ctx, cancelGrace)
			err := session.CancelContext(cctx)
			cancel()
			if err != nil {
				l().Infof("interrupt with no cancellable attempt; stopping")
				session.Stop()
			}
		}
	}
}
