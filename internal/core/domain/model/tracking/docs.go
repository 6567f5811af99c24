// Package tracking contains the DeliveryTracking aggregate: the authoritative
// record of an order's delivery progress from assignment to its terminal
// state. Status moves along an explicit transition table, each stage stamps
// its milestone timestamp once, and failed attempts carry a classified
// reason. Order status is recomputed from this record, never the reverse.
package tracking
