// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and delivery person assignment.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Items            []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	TotalAmount      float64    `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    int        `gorm:"type:smallint;not null"`
	PaymentStatus    int        `gorm:"type:smallint;not null"`
	Status           int        `gorm:"type:smallint;not null;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedDelivery *time.Time
	DeliveryNotes    string `gorm:"type:text"`
	DeliveryProof    string `gorm:"type:text"`
	DeliveryDate     *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line item row. Line items are an immutable
// snapshot taken at checkout, so rows are written once with the order.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
	Quantity  int       `gorm:"type:int;not null"`
	Image     string    `gorm:"type:text"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(128);not null;index"`
	State    string `gorm:"type:varchar(128);not null"`
	Pincode  string `gorm:"type:varchar(16);not null;index"`
	Landmark string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the line-item snapshot and optional
// delivery assignment state.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
		})
	}

	var deliveryPersonID *uuid.UUID
	if id := aggregate.AssignedDeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:     orderID,
		UserID: aggregate.UserID().Bytes(),
		Items:  items,
		ShippingAddress: AddressDTO{
			Street:   address.Street(),
			City:     address.City(),
			State:    address.State(),
			Pincode:  address.Pincode(),
			Landmark: address.Landmark(),
			Phone:    address.Phone(),
		},
		TotalAmount:       aggregate.TotalAmount(),
		PaymentMethod:     int(aggregate.PaymentMethod()),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		Status:            int(aggregate.Status()),
		DeliveryPersonID:  deliveryPersonID,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		DeliveryNotes:     aggregate.DeliveryNotes(),
		DeliveryProof:     aggregate.DeliveryProof(),
		DeliveryDate:      aggregate.DeliveryDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and delivery
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := kernel.NewAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.Pincode,
		dto.ShippingAddress.Landmark,
		dto.ShippingAddress.Phone,
	)
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		pID, personErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if personErr != nil {
			return nil, personErr
		}
		deliveryPersonID = &pID
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		address,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		deliveryPersonID,
		dto.EstimatedDelivery,
		dto.DeliveryNotes,
		dto.DeliveryProof,
		dto.DeliveryDate,
	)
}

// itemToDomain converts a line-item DTO back into its domain value object.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Name, dto.Price, dto.Quantity, dto.Image)
}
