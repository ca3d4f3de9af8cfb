package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mercadito/storefront/internal/domain"
)

// ProductLookup resolves product ids against the locally cached catalog,
// typically the CatalogClient's cache.
type ProductLookup interface {
	KnownProduct(id string) (domain.Product, bool)
}

type LineItem struct {
	Product domain.Product
	Qty     int64
}

// Cart maps product ids to positive quantities. An entry never holds a
// quantity of zero or less; SetQuantity removes it instead. The cart starts
// empty and is never persisted.
//
// Cart is bound to a single session and is not safe for concurrent use.
type Cart struct {
	lookup     ProductLookup
	quantities map[string]int64
	order      []string
}

func CreateCart(lookup ProductLookup) *Cart {
	return &Cart{
		lookup:     lookup,
		quantities: make(map[string]int64),
	}
}

// Add puts one more unit of the product in the cart. Stock is not checked
// here; gating the affordance on availability is the view's concern.
func (c *Cart) Add(product domain.Product) {
	c.SetQuantity(product.ID, c.Quantity(product.ID)+1)
}

// SetQuantity is the single mutation primitive. A quantity of zero or less
// removes the entry entirely.
func (c *Cart) SetQuantity(id string, qty int64) {
	if qty <= 0 {
		if _, ok := c.quantities[id]; ok {
			delete(c.quantities, id)
			c.dropFromOrder(id)
		}
		return
	}

	if _, ok := c.quantities[id]; !ok {
		c.order = append(c.order, id)
	}
	c.quantities[id] = qty
}

func (c *Cart) Increment(id string) {
	c.SetQuantity(id, c.Quantity(id)+1)
}

func (c *Cart) Decrement(id string) {
	c.SetQuantity(id, c.Quantity(id)-1)
}

func (c *Cart) Remove(id string) {
	c.SetQuantity(id, 0)
}

// Quantity returns the current quantity for id, zero when absent.
func (c *Cart) Quantity(id string) int64 {
	return c.quantities[id]
}

// LineItems joins the quantity map against the product lookup in insertion
// order. Entries whose product is not yet known are dropped; they reappear
// once the product shows up in a query response.
func (c *Cart) LineItems() []LineItem {
	items := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		product, ok := c.lookup.KnownProduct(id)
		if !ok {
			continue
		}
		items = append(items, LineItem{Product: product, Qty: c.quantities[id]})
	}

	return items
}

// Total sums price times quantity over the joinable line items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.LineItems() {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(item.Qty)))
	}

	return total
}

// ItemCount sums every quantity in the cart, including entries whose product
// is not yet cached. The badge therefore counts items the total does not;
// that asymmetry is long-standing observed behavior and is kept as is.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, qty := range c.quantities {
		count += qty
	}

	return count
}

func (c *Cart) dropFromOrder(id string) {
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
