package checkout

import (
	"context"
	"log/slog"
	"sync"

	"github.com/medicart/medicart-client/internal/actions"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

// Cart holds the customer's local view of the server cart. Mutations are
// applied optimistically: the local state changes first, the server call
// runs, and on failure the pre-mutation snapshot is restored.
type Cart struct {
	catalog *actions.Catalog
	logger  *slog.Logger

	mu    sync.Mutex
	items []models.CartItem
}

func NewCart(catalog *actions.Catalog, logger *slog.Logger) *Cart {

	if logger == nil {
		logger = slog.Default()
	}

	return &Cart{catalog: catalog, logger: logger}
}

// Load replaces local state with the server cart. An unauthenticated
// session fails here, before any cart operation runs; the caller redirects
// to login.
func (c *Cart) Load(ctx context.Context) error {

	items, err := c.catalog.GetCart(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return nil
}

// Items returns a copy of the current local state.
func (c *Cart) Items() []models.CartItem {

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)

	return out
}

func (c *Cart) Summary() Summary {
	return Summarize(c.Items())
}

// txn is the reusable snapshot/restore pairing behind every optimistic
// mutation. begin snapshots, rollback restores; commit is implicit in not
// rolling back.
type txn struct {
	cart     *Cart
	snapshot []models.CartItem
}

func (c *Cart) begin() *txn {

	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]models.CartItem, len(c.items))
	copy(snapshot, c.items)

	return &txn{cart: c, snapshot: snapshot}
}

func (t *txn) rollback() {

	t.cart.mu.Lock()
	t.cart.items = t.snapshot
	t.cart.mu.Unlock()
}

// Add puts a medicine in the cart. There is no optimistic placeholder for a
// brand-new line: the server mints the item id, so the confirmed item is
// appended on success.
func (c *Cart) Add(ctx context.Context, medicine *models.Medicine, quantity int) error {

	if quantity < 1 {
		quantity = 1
	}

	item, err := c.catalog.AddToCart(ctx, medicine.ID, quantity)
	if err != nil {
		return err
	}

	if item.Medicine == nil {
		item.Medicine = medicine
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = *item

			return nil
		}
	}

	c.items = append(c.items, *item)

	return nil
}

// SetQuantity applies the new quantity optimistically and rolls back if the
// server rejects it. Quantities below 1 are a local no-op.
func (c *Cart) SetQuantity(ctx context.Context, itemID string, quantity int) error {

	if quantity < 1 {
		return nil
	}

	t := c.begin()

	if !c.applyQuantity(itemID, quantity) {
		return errors.NotFoundError("Item not found in the cart")
	}

	confirmed, err := c.catalog.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		t.rollback()
		c.logger.Warn("cart quantity update failed, restored snapshot",
			slog.String("item_id", itemID), slog.String("error", err.Error()))

		return err
	}

	if confirmed != nil && confirmed.ID != "" {
		c.adopt(confirmed)
	}

	return nil
}

// IncrementQuantity raises the quantity by one.
func (c *Cart) IncrementQuantity(ctx context.Context, itemID string) error {

	current, ok := c.quantity(itemID)
	if !ok {
		return errors.NotFoundError("Item not found in the cart")
	}

	return c.SetQuantity(ctx, itemID, current+1)
}

// DecrementQuantity lowers the quantity by one with a floor of 1:
// decrementing a quantity of 1 leaves it at 1 and skips the server call.
func (c *Cart) DecrementQuantity(ctx context.Context, itemID string) error {

	current, ok := c.quantity(itemID)
	if !ok {
		return errors.NotFoundError("Item not found in the cart")
	}

	if current <= 1 {
		return nil
	}

	return c.SetQuantity(ctx, itemID, current-1)
}

// Remove drops the item optimistically. Removing an id that is not in the
// local cart is a no-op, and a not-found response from the server counts as
// success, so a double remove converges to the same state.
func (c *Cart) Remove(ctx context.Context, itemID string) error {

	t := c.begin()

	if !c.drop(itemID) {
		return nil
	}

	if err := c.catalog.RemoveCartItem(ctx, itemID); err != nil {

		if errors.IsNotFound(err) {
			return nil
		}

		t.rollback()
		c.logger.Warn("cart item removal failed, restored snapshot",
			slog.String("item_id", itemID), slog.String("error", err.Error()))

		return err
	}

	return nil
}

func (c *Cart) quantity(itemID string) (int, bool) {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			return c.items[i].Quantity, true
		}
	}

	return 0, false
}

func (c *Cart) applyQuantity(itemID string, quantity int) bool {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity

			return true
		}
	}

	return false
}

func (c *Cart) adopt(item *models.CartItem) {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			// Keep the embedded medicine when the server echoes a bare item.
			if item.Medicine == nil {
				item.Medicine = c.items[i].Medicine
			}

			c.items[i] = *item

			return
		}
	}
}

func (c *Cart) drop(itemID string) bool {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)

			return true
		}
	}

	return false
}
