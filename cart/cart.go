package cart

import (
	"encoding/json"
	"fmt"

	"monkey-boards/models"
)

// StorageKey is the fixed name the client persists the cart under. Only the
// items array is persisted; visibility and derived totals are not.
const StorageKey = "monkey-boards-cart"

// Cart holds the shopping cart lines and the drawer-visibility flag. Cart is
// not safe for concurrent use; like the planner board it lives on a single
// event loop.
type Cart struct {
	items  []models.CartItem
	isOpen bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// mergeable reports whether two lines may be collapsed into one. Only
// non-custom lines merge, on product identity, finish and tier. The accent
// color is deliberately not part of the key.
func mergeable(a, b models.CartItem) bool {
	return !a.IsCustom && !b.IsCustom &&
		a.ProductID == b.ProductID &&
		a.WoodFinish == b.WoodFinish &&
		a.Tier == b.Tier
}

// AddItem adds a line to the cart and opens the drawer. When a mergeable line
// already exists its quantity grows by the new line's quantity and its price
// and identity stay unchanged. Custom lines are always appended as distinct
// entries, even with identical configuration.
func (c *Cart) AddItem(item models.CartItem) {
	for i := range c.items {
		if mergeable(c.items[i], item) {
			c.items[i].Quantity += item.Quantity
			c.isOpen = true
			return
		}
	}
	c.items = append(c.items, item)
	c.isOpen = true
}

// RemoveItem deletes the line with the given id. Missing ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are ignored.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Open shows the cart drawer.
func (c *Cart) Open() { c.isOpen = true }

// Close hides the cart drawer.
func (c *Cart) Close() { c.isOpen = false }

// Toggle flips the drawer-visibility flag.
func (c *Cart) Toggle() { c.isOpen = !c.isOpen }

// IsOpen reports whether the cart drawer is visible.
func (c *Cart) IsOpen() bool { return c.isOpen }

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of quantity times unit price across all lines.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

// MarshalItems serializes the items array for persistence. The isOpen flag and
// derived totals are never persisted.
func (c *Cart) MarshalItems() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}
	return data, nil
}

// RestoreItems replaces the cart contents from a previously persisted items
// array. The drawer stays closed.
func (c *Cart) RestoreItems(data []byte) error {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to restore cart items: %w", err)
	}
	c.items = items
	return nil
}
