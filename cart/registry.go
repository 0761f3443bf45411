package cart

import "sync"

// Registry holds one cart per cashier. Gin serves each request on its own
// goroutine, so every cart access goes through the registry lock.
type Registry struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[uint]*Cart)}
}

// With runs fn against the user's cart, creating the cart on first use.
func (r *Registry) With(userID uint, fn func(*Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[userID]
	if !ok {
		c = New()
		r.carts[userID] = c
	}
	fn(c)
}

// Snapshot returns the user's current items and total.
func (r *Registry) Snapshot(userID uint) ([]Entry, float64) {
	var items []Entry
	var total float64
	r.With(userID, func(c *Cart) {
		items = c.Items()
		total = c.Total()
	})
	return items, total
}

// Clear empties the user's cart after a committed submission.
func (r *Registry) Clear(userID uint) {
	r.With(userID, func(c *Cart) { c.Clear() })
}
