package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team2/internal/auth"
	"github.com/code-differently/cs-25-2-team2/internal/cart"
	"github.com/code-differently/cs-25-2-team2/internal/orders"
	"github.com/code-differently/cs-25-2-team2/internal/storage"
)

type stubIdentity struct {
	user *auth.User
}

func (s *stubIdentity) CurrentUser() (*auth.User, bool) {
	return s.user, s.user != nil
}

// stubGateway records Create calls; the remaining Gateway methods are never
// reached from checkout.
type stubGateway struct {
	orders.Gateway
	created []orders.NewOrder
	err     error
}

func (s *stubGateway) Create(ctx context.Context, order orders.NewOrder) (*orders.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, order)
	return &orders.Order{
		ID:                  1001,
		Customer:            orders.Customer{ID: order.CustomerID, Name: order.CustomerName},
		TotalPrice:          order.TotalAmount,
		Status:              order.Status,
		SpecialInstructions: order.SpecialInstructions,
		Payment:             order.Payment,
	}, nil
}

func johnDoe() *auth.User {
	return &auth.User{ID: 1, Username: "customer", Name: "John Doe", Role: auth.RoleCustomer}
}

func newFixture(t *testing.T, user *auth.User) (*Orchestrator, *cart.Store, *stubGateway) {
	t.Helper()
	store := cart.NewStore(storage.NewMemory())
	gw := &stubGateway{}
	o := New(store, cart.NewCalculator(cart.DefaultTaxRate), &stubIdentity{user: user}, gw)
	return o, store, gw
}

func TestAssembleOrderMapsCartAndUser(t *testing.T) {
	o, store, _ := newFixture(t, johnDoe())
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 2)
	require.NoError(t, err)

	order, err := o.AssembleOrder()
	require.NoError(t, err)

	assert.Equal(t, 1, order.CustomerID)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.Equal(t, orders.StatusPlaced, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].MenuItemID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 7.98, order.Items[0].Subtotal)
	assert.Equal(t, 8.62, order.TotalAmount) // 7.98 plus 8% tax
}

func TestAssembleOrderFallsBackToUsername(t *testing.T) {
	user := johnDoe()
	user.Name = ""
	o, store, _ := newFixture(t, user)
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	order, err := o.AssembleOrder()
	require.NoError(t, err)
	assert.Equal(t, "customer", order.CustomerName)
}

func TestAssembleOrderRequiresLogin(t *testing.T) {
	o, store, _ := newFixture(t, nil)
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	_, err = o.AssembleOrder()
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestAssembleOrderRejectsEmptyCart(t *testing.T) {
	o, _, _ := newFixture(t, johnDoe())

	_, err := o.AssembleOrder()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutClearsCartOnSuccess(t *testing.T) {
	o, store, gw := newFixture(t, johnDoe())
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	cleared := 0
	store.Subscribe(func() { cleared++ })

	order, err := o.Checkout(context.Background(), "", Payment{})
	require.NoError(t, err)
	assert.Equal(t, 1001, order.ID)
	assert.Empty(t, store.Items())
	assert.Equal(t, 1, cleared)
	require.Len(t, gw.created, 1)
	assert.Nil(t, gw.created[0].Payment)
}

func TestCheckoutKeepsCartWhenCreateFails(t *testing.T) {
	o, store, gw := newFixture(t, johnDoe())
	gw.err = errors.New("backend down")
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	_, err = o.Checkout(context.Background(), "", Payment{})
	assert.Error(t, err)
	assert.Len(t, store.Items(), 1)
}

func TestCheckoutKeepsCartWhenNotLoggedIn(t *testing.T) {
	o, store, gw := newFixture(t, nil)
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	_, err = o.Checkout(context.Background(), "", Payment{})
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
	assert.Len(t, store.Items(), 1)
	assert.Empty(t, gw.created)
}

func TestCheckoutAttachesSpecialInstructions(t *testing.T) {
	o, store, gw := newFixture(t, johnDoe())
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	_, err = o.Checkout(context.Background(), "  extra crispy  ", Payment{})
	require.NoError(t, err)
	require.Len(t, gw.created, 1)
	assert.Equal(t, "extra crispy", gw.created[0].SpecialInstructions)
}

func TestCheckoutCardPaymentAttachesRecord(t *testing.T) {
	o, store, gw := newFixture(t, johnDoe())
	o.now = func() time.Time { return testNow }
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	card := validCard()
	order, err := o.Checkout(context.Background(), "", Payment{Method: MethodCreditCard, Card: &card})
	require.NoError(t, err)

	require.NotNil(t, order.Payment)
	assert.Equal(t, "credit_card", order.Payment.Method)
	assert.Equal(t, "4242", order.Payment.CardLastFour)
	assert.Equal(t, "Visa", order.Payment.CardType)
	assert.Equal(t, 4.31, order.Payment.Amount) // 3.99 plus 8% tax
	assert.Equal(t, "completed", order.Payment.Status)
	assert.Regexp(t, `^TXN-[0-9A-F]{16}$`, order.Payment.TransactionID)
	assert.Equal(t, testNow, order.Payment.ProcessedAt)
	require.Len(t, gw.created, 1)
	assert.Empty(t, store.Items())
}

func TestCheckoutInvalidCardFailsBeforeAnyCall(t *testing.T) {
	o, store, gw := newFixture(t, johnDoe())
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	card := validCard()
	card.CardNumber = "1234"
	_, err = o.Checkout(context.Background(), "", Payment{Method: MethodCreditCard, Card: &card})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, gw.created)
	assert.Len(t, store.Items(), 1)
}

func TestCheckoutCardMethodRequiresDetails(t *testing.T) {
	o, store, _ := newFixture(t, johnDoe())
	_, err := store.AddItem(cart.Item{ID: 1, Name: "French Fries", Price: 3.99}, 1)
	require.NoError(t, err)

	_, err = o.Checkout(context.Background(), "", Payment{Method: MethodCreditCard})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "card", verr.Fields[0].Field)
}
