package cart

import "sort"

// Item is a single cart line keyed by menu item id.
type Item struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Cart is the in-memory aggregate of a customer session. Quantities are
// always >= 1 while an entry is present; dropping to zero removes it.
type Cart struct {
	Lines map[int64]*Item `json:"lines"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: make(map[int64]*Item)}
}

// AddItem inserts the item with quantity 1, or increments the quantity when
// the item id is already present.
func (c *Cart) AddItem(id int64, name string, price int64) {
	if c.Lines == nil {
		c.Lines = make(map[int64]*Item)
	}
	if line, ok := c.Lines[id]; ok {
		line.Quantity++
		return
	}
	c.Lines[id] = &Item{MenuItemID: id, Name: name, Price: price, Quantity: 1}
}

// UpdateQuantity adjusts the quantity by delta. A resulting quantity of
// zero or below removes the entry entirely.
func (c *Cart) UpdateQuantity(id int64, delta int) {
	line, ok := c.Lines[id]
	if !ok {
		return
	}
	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(c.Lines, id)
	}
}

// RemoveItem drops the entry unconditionally.
func (c *Cart) RemoveItem(id int64) {
	delete(c.Lines, id)
}

// Total is the sum of price*quantity across all entries.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	var n int
	for _, line := range c.Lines {
		n += line.Quantity
	}
	return n
}

// Clear empties the cart. Invoked after a successful order submission.
func (c *Cart) Clear() {
	c.Lines = make(map[int64]*Item)
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Items returns a snapshot of the lines sorted by menu item id.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, *line)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].MenuItemID < items[j].MenuItemID })
	return items
}
