package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	UserID          string             `json:"user_id"`
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress AddressRequest     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

// OrderItemRequest is one line item of the checkout payload.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// AddressRequest is the address payload shared by checkout and zone matching.
type AddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
	Phone    string `json:"phone"`
}

// CreateOrderResponse reports the created order together with the outcome of
// the immediate assignment attempt.
type CreateOrderResponse struct {
	OrderID  string                 `json:"order_id"`
	Delivery DeliveryResultResponse `json:"delivery"`
}

// DeliveryResultResponse describes an assignment attempt. When no courier
// could be assigned the order stays pending and Reason explains why.
type DeliveryResultResponse struct {
	Assigned            bool       `json:"assigned"`
	Reason              string     `json:"reason,omitempty"`
	DeliveryPersonID    *string    `json:"delivery_person_id,omitempty"`
	DeliveryPersonName  string     `json:"delivery_person_name,omitempty"`
	DeliveryPersonPhone string     `json:"delivery_person_phone,omitempty"`
	Zone                string     `json:"zone,omitempty"`
	TrackingID          *string    `json:"tracking_id,omitempty"`
	EstimatedDelivery   *time.Time `json:"estimated_delivery,omitempty"`
}

// CreateOrder handles POST /orders/create - checkout plus an immediate
// delivery assignment attempt.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return s.badRequest(ctx, "Invalid user id: "+err.Error())
	}

	address, err := kernel.NewAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.Pincode,
		req.ShippingAddress.Landmark,
		req.ShippingAddress.Phone,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		productID, idErr := kernel.UUIDFromString(it.ProductID)
		if idErr != nil {
			return s.badRequest(ctx, "Invalid product id: "+idErr.Error())
		}

		item, itemErr := order.NewItem(productID, it.Name, it.Price, it.Quantity, it.Image)
		if itemErr != nil {
			return s.badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return s.badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, items, address, paymentMethod)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:  orderID.String(),
		Delivery: s.attemptAssignment(ctx, orderID),
	})
}

// attemptAssignment runs the coordinator for a freshly created order. The
// order is already committed at this point, so an assignment failure is
// reported as an unassigned result and left for the retry job rather than
// failing the checkout.
func (s *Server) attemptAssignment(ctx echo.Context, orderID kernel.UUID) DeliveryResultResponse {
	cmd, err := commands.NewAssignDeliveryCommand(orderID)
	if err != nil {
		return DeliveryResultResponse{Assigned: false, Reason: err.Error()}
	}

	result, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return DeliveryResultResponse{
			Assigned: false,
			Reason:   "assignment could not be completed and will be retried",
		}
	}

	return toDeliveryResult(result)
}

func toDeliveryResult(result commands.AssignmentResult) DeliveryResultResponse {
	resp := DeliveryResultResponse{
		Assigned:            result.Assigned,
		Reason:              result.Reason,
		DeliveryPersonName:  result.DeliveryPersonName,
		DeliveryPersonPhone: result.DeliveryPersonPhone,
		Zone:                result.ZoneName,
		EstimatedDelivery:   result.EstimatedDelivery,
	}
	if result.DeliveryPersonID != nil {
		id := result.DeliveryPersonID.String()
		resp.DeliveryPersonID = &id
	}
	if result.TrackingID != nil {
		id := result.TrackingID.String()
		resp.TrackingID = &id
	}
	return resp
}

// UnassignedOrder is one row of the unassigned-orders listing.
type UnassignedOrder struct {
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	Street        string  `json:"street"`
	City          string  `json:"city"`
	Pincode       string  `json:"pincode"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
}

// GetUnassignedOrders handles GET /admin/unassigned-orders - lists pending
// orders that have no delivery person yet.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.unassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	response := make([]UnassignedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnassignedOrder{
			OrderID:       o.ID.String(),
			UserID:        o.UserID.String(),
			Street:        o.Street,
			City:          o.City,
			Pincode:       o.Pincode,
			TotalAmount:   o.TotalAmount,
			PaymentMethod: o.PaymentMethod,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
