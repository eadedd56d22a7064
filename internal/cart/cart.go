// Package cart models the client-held shopping cart as an explicit value
// object with pure update functions. Every operation returns a new Cart;
// callers never mutate shared state.
package cart

type Item struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Add merges the item into the cart. An item for a product already in the
// cart increases that line's quantity instead of adding a duplicate line.
func (c Cart) Add(item Item) Cart {
	if item.Quantity < 1 {
		return c.clone()
	}
	next := c.clone()
	for i, existing := range next.Items {
		if existing.ProductID == item.ProductID {
			next.Items[i].Quantity += item.Quantity
			return next
		}
	}
	next.Items = append(next.Items, item)
	return next
}

// Remove drops the line for the given product. Removing an absent product
// is a no-op.
func (c Cart) Remove(productID uint) Cart {
	next := Cart{Items: make([]Item, 0, len(c.Items))}
	for _, item := range c.Items {
		if item.ProductID != productID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// removes the line.
func (c Cart) UpdateQuantity(productID uint, quantity int) Cart {
	if quantity < 1 {
		return c.Remove(productID)
	}
	next := c.clone()
	for i, item := range next.Items {
		if item.ProductID == productID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Line is the minimal shape the checkout endpoint accepts.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Lines projects the cart into checkout submission order.
func (c Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

func (c Cart) clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
