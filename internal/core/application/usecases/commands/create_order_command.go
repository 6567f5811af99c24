package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a checkout request. It carries the validated
// line-item and shipping-address snapshots together with the payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, userID, items, address, order.PaymentUPI)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	items           []order.Item
	shippingAddress kernel.Address
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, requires a non-empty item snapshot, a valid address,
// and a known payment method.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []order.Item,
	shippingAddress kernel.Address,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the purchasing customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the line-item snapshot.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ShippingAddress returns the delivery address snapshot.
func (c CreateOrderCommand) ShippingAddress() kernel.Address {
	return c.shippingAddress
}

// PaymentMethod returns how the customer paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
