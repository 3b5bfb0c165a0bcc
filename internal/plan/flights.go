package plan

import "strings"

// ArrivalTime is the mocked flight-number lookup. Real schedule integration
// never shipped; KE123 and the KE prefix cover the demo flows.
func ArrivalTime(flightNumber string) string {
	upper := strings.ToUpper(strings.TrimSpace(flightNumber))
	if upper == "KE123" {
		return "14:30"
	}
	if strings.HasPrefix(upper, "KE") {
		return "15:00"
	}
	return ""
}
