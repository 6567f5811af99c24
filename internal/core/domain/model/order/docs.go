// Package order contains the Order aggregate: the customer purchase with its
// line-item and shipping-address snapshots, payment state, and lifecycle
// status.
//
// The order owns its snapshots outright; nothing in it references live
// catalog or cart data. Delivery progress past assignment is owned by the
// tracking aggregate, and the order status past that point is a projection
// applied through ApplyDeliveryProgress.
package order
