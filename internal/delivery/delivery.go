// Package delivery computes the delivery-time estimate from the accepted
// order lines and a fixed table of delivery zones.
package delivery

import "github.com/ninjafood/ordering/internal/order"

// Zone travel times in minutes. Zone 6 and any unrecognized selector
// fall through to the default.
const defaultTravelMinutes = 8

var travelMinutes = map[int]int{
	1: 5,
	2: 5,
	3: 6,
	4: 10,
	5: 9,
}

var zoneNames = map[int]string{
	1: "Cahaya Gemilang",
	2: "Aman Damai",
	3: "Indah Kembara",
	4: "Restu",
	5: "Saujana",
}

const defaultZoneName = "Tekun"

// PrepMinutes totals the preparation time over the lines, counting each
// line's quantity.
func PrepMinutes(lines []order.ReceiptLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity * l.PrepMinutes
	}
	return total
}

// TravelMinutes returns the fixed travel time for the zone.
func TravelMinutes(zone int) int {
	if m, ok := travelMinutes[zone]; ok {
		return m
	}
	return defaultTravelMinutes
}

// ZoneName returns the delivery-area name for the zone.
func ZoneName(zone int) string {
	if name, ok := zoneNames[zone]; ok {
		return name
	}
	return defaultZoneName
}

// Estimate returns the delivery ETA in minutes (total preparation time
// plus zone travel time) and the zone name.
func Estimate(lines []order.ReceiptLine, zone int) (etaMinutes int, zoneName string) {
	return PrepMinutes(lines) + TravelMinutes(zone), ZoneName(zone)
}
