package cart

// Entry is one selected menu item with its quantity. Quantity is always at
// least 1; an entry that would reach 0 is evicted instead.
type Entry struct {
	MenuItemID uint    `json:"menu_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
}

// Cart accumulates selected menu items for one cashier session. It is not
// safe for concurrent use on its own; Registry serializes access.
type Cart struct {
	entries map[uint]*Entry
	order   []uint
}

func New() *Cart {
	return &Cart{entries: make(map[uint]*Entry)}
}

// Add increments the quantity of the item, inserting it with quantity 1 if
// it is not in the cart yet.
func (c *Cart) Add(id uint, name string, price float64) {
	if entry, ok := c.entries[id]; ok {
		entry.Qty++
		return
	}
	c.entries[id] = &Entry{MenuItemID: id, Name: name, Price: price, Qty: 1}
	c.order = append(c.order, id)
}

// Remove decrements the quantity of the item and evicts it when it reaches 0.
// Removing an item that is not in the cart is a no-op.
func (c *Cart) Remove(id uint) {
	entry, ok := c.entries[id]
	if !ok {
		return
	}
	entry.Qty--
	if entry.Qty <= 0 {
		c.evict(id)
	}
}

// RemoveAll evicts the item regardless of its current quantity.
func (c *Cart) RemoveAll(id uint) {
	if _, ok := c.entries[id]; !ok {
		return
	}
	c.evict(id)
}

// Clear evicts everything. Called after a successful order submission.
func (c *Cart) Clear() {
	c.entries = make(map[uint]*Entry)
	c.order = nil
}

// Qty reports the current quantity of the item, 0 if absent.
func (c *Cart) Qty(id uint) int {
	if entry, ok := c.entries[id]; ok {
		return entry.Qty
	}
	return 0
}

// Total recomputes the cart total on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, entry := range c.entries {
		total += entry.Price * float64(entry.Qty)
	}
	return total
}

// Items returns a snapshot of the entries in insertion order.
func (c *Cart) Items() []Entry {
	items := make([]Entry, 0, len(c.entries))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) evict(id uint) {
	delete(c.entries, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
