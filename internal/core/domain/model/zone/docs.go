// Package zone contains the Zone aggregate: a city-plus-pincodes delivery
// area and the capacity assignments linking delivery persons to it.
//
// The zone is the unit of consistency for capacity accounting. All load
// mutations flow through the aggregate, and the persistence layer locks the
// zone row while the coordinator works on it, so the currentLoad never
// exceeds maxCapacity even under concurrent assignment requests.
package zone
