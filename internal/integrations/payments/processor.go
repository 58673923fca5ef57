package payments

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// Processor имитирует асинхронную обработку отправки бронирования:
// задержка и сбой с заданной вероятностью. Настоящего списания денег нет.
type Processor struct {
	delay       time.Duration
	failureRate float64
	random      RandomSource
	log         Logger
}

// NewProcessor создает процессор; random = nil означает глобальный источник
func NewProcessor(delay time.Duration, failureRate float64, random RandomSource, log Logger) *Processor {
	if random == nil {
		random = globalSource{}
	}
	return &Processor{
		delay:       delay,
		failureRate: failureRate,
		random:      random,
		log:         log,
	}
}

// Submit ждет имитационную задержку и возвращает результат обработки
func (p *Processor) Submit(ctx context.Context, req SubmitRequest) (*Receipt, error) {
	p.log.Info("Submit: processing user=%s studio=%d amount=%s method=%s",
		req.UserID, req.StudioID, req.Amount.String(), req.PaymentMethod)

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			p.log.Warn("Submit: cancelled for user=%s: %v", req.UserID, ctx.Err())
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	if p.failureRate > 0 && p.random.Float64() < p.failureRate {
		p.log.Warn("Submit: simulated failure for user=%s studio=%d", req.UserID, req.StudioID)
		return nil, fmt.Errorf("%w: simulated processing error", ErrPaymentFailed)
	}

	return &Receipt{
		Amount:  req.Amount,
		Charged: req.PaymentMethod == "online",
	}, nil
}
