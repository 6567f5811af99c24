package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Item errors.
var (
	// ErrItemNameIsRequired is returned when a line item has no product name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is a line-item snapshot captured at checkout. Name, price, and image
// are copied from the product at purchase time, not referenced live, so later
// catalog edits never rewrite an order's history.
type Item struct {
	productID kernel.UUID
	name      string
	price     float64
	quantity  int
	image     string
}

// NewItem creates a validated line-item snapshot.
//
// Parameters:
//   - productID: the product purchased (must be a valid UUID)
//   - name: product name at purchase time (must be non-empty)
//   - price: unit price at purchase time (must be ≥ 0)
//   - quantity: units purchased (must be ≥ 1)
//   - image: product image URL at purchase time (optional)
func NewItem(productID kernel.UUID, name string, price float64, quantity int, image string) (Item, error) {
	var joined []error

	if err := productID.Validate(); err != nil {
		joined = append(joined, err)
	}
	if name == "" {
		joined = append(joined, ErrItemNameIsRequired)
	}
	if price < 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded"))
	}
	if quantity < 1 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if len(joined) > 0 {
		return Item{}, errors.Join(joined...)
	}

	return Item{
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
		image:     image,
	}, nil
}

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name at purchase time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price at purchase time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// Image returns the product image URL at purchase time.
func (i Item) Image() string {
	return i.image
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
