// Package checkout converts the current cart into a submitted order. Placing
// an order directly and paying with a card both run through the single
// Checkout entry point, parameterized by payment method.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/code-differently/cs-25-2-team2/internal/auth"
	"github.com/code-differently/cs-25-2-team2/internal/cart"
	"github.com/code-differently/cs-25-2-team2/internal/orders"
)

var ErrEmptyCart = errors.New("cart is empty")

// Identity supplies the cached user, if any.
type Identity interface {
	CurrentUser() (*auth.User, bool)
}

// Orchestrator wires the cart store, totals calculator, identity and order
// gateway into the checkout flow.
type Orchestrator struct {
	store    *cart.Store
	calc     cart.Calculator
	identity Identity
	gateway  orders.Gateway
	now      func() time.Time
}

func New(store *cart.Store, calc cart.Calculator, identity Identity, gateway orders.Gateway) *Orchestrator {
	return &Orchestrator{
		store:    store,
		calc:     calc,
		identity: identity,
		gateway:  gateway,
		now:      time.Now,
	}
}

// AssembleOrder maps the current cart and the cached user into a
// backend-shaped order payload. It performs no network calls.
func (o *Orchestrator) AssembleOrder() (*orders.NewOrder, error) {
	user, ok := o.identity.CurrentUser()
	if !ok {
		return nil, auth.ErrNotLoggedIn
	}

	items := o.store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	totals := o.calc.Totals(items)

	lines := make([]orders.NewOrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, orders.NewOrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Subtotal:   item.Price * float64(item.Quantity),
		})
	}

	name := user.Name
	if name == "" {
		name = user.Username
	}
	return &orders.NewOrder{
		CustomerID:   user.ID,
		CustomerName: name,
		Items:        lines,
		TotalAmount:  totals.Total,
		Status:       orders.StatusPlaced,
	}, nil
}

// Checkout validates, assembles, submits and clears the cart, in that order.
// The cart is cleared only after the gateway reports a successful create, so
// a failed submission never loses the customer's lines. Card validation runs
// before any network call.
func (o *Orchestrator) Checkout(ctx context.Context, specialInstructions string, payment Payment) (*orders.Order, error) {
	if payment.Method == "" {
		payment.Method = MethodDirect
	}

	if payment.Method == MethodCreditCard {
		if payment.Card == nil {
			return nil, &ValidationError{Fields: []FieldError{{"card", "Card details are required"}}}
		}
		if err := ValidateCard(*payment.Card, o.now()); err != nil {
			return nil, err
		}
	}

	order, err := o.AssembleOrder()
	if err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(specialInstructions); s != "" {
		order.SpecialInstructions = s
	}
	if payment.Method == MethodCreditCard {
		digits := digitsOf(payment.Card.CardNumber)
		order.Payment = &orders.Payment{
			Method:        string(MethodCreditCard),
			CardLastFour:  digits[len(digits)-4:],
			CardType:      cardType(digits),
			Amount:        order.TotalAmount,
			TransactionID: newTransactionID(),
			ProcessedAt:   o.now().UTC(),
			Status:        "completed",
		}
	}

	created, err := o.gateway.Create(ctx, *order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if _, err := o.store.Clear(); err != nil {
		// The order exists remotely; report the local failure rather than
		// pretend the checkout never happened.
		return created, fmt.Errorf("order %d created but cart could not be cleared: %w", created.ID, err)
	}
	return created, nil
}

// newTransactionID produces the synthetic id attached to card payments.
func newTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
}
