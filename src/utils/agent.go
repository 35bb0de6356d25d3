package utils

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AgentTimeout caps def by the time left before the deadline of ctx.
func AgentTimeout(ctx context.Context, def time.Duration) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < def {
			return left
		}
	}
	return def
}

type agentResult struct {
	code int
	body []byte
	errs []error
}

// DoAgent sends a prepared fiber Agent and returns as soon as ctx is done.
// The agent is released either way.
func DoAgent(ctx context.Context, a *fiber.Agent, timeout time.Duration) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return 0, nil, err
	}
	a.Timeout(AgentTimeout(ctx, timeout))

	done := make(chan agentResult, 1)
	go func() {
		code, body, errs := a.Bytes()
		done <- agentResult{code: code, body: body, errs: errs}
	}()

	select {
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	case r := <-done:
		if len(r.errs) > 0 {
			return r.code, r.body, errors.Join(r.errs...)
		}
		return r.code, r.body, nil
	}
}
