// Package person contains the DeliveryPerson aggregate: a courier's identity,
// working status, sanction flags, and the cumulative delivery counters the
// assignment selector ranks candidates by.
//
// Counters are intentionally append-only and mutated solely by the delivery
// coordinator, making them a reliable basis for the success-rate tie-break
// during assignment and for performance reporting.
package person
