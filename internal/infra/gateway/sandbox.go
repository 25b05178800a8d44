package gateway

import (
	"context"
	"sync"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// SandboxGateway issues order ids in process. It stands in for a real provider in
// local runs and end-to-end tests.
type SandboxGateway struct {
	mu     sync.Mutex
	orders map[booking.OrderID]booking.Money
	// failNext makes the next CreateOrder call fail once.
	failNext bool
}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{orders: make(map[booking.OrderID]booking.Money)}
}

func (g *SandboxGateway) CreateOrder(ctx context.Context, amount booking.Money, _ string) (booking.OrderID, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Mark(err, errs.ErrGateway)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failNext {
		g.failNext = false
		return "", errs.Mark(errs.New("sandbox gateway rejected the order"), errs.ErrGateway)
	}

	id := booking.OrderID("order_sbx_" + uuid.NewString())
	g.orders[id] = amount
	return id, nil
}

func (g *SandboxGateway) FailNext() {
	g.mu.Lock()
	g.failNext = true
	g.mu.Unlock()
}

// Order returns the amount the sandbox recorded for id.
func (g *SandboxGateway) Order(id booking.OrderID) (booking.Money, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.orders[id]
	return m, ok
}
