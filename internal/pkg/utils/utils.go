package utils

import (
	"fmt"
	"strconv"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertHourToDuration convert hour to duration format string
// Example: 2.5 -> "2h 30m"
func ConvertHourToDuration(durationInHours float64) string {
	return ConvertMinutesToDuration(int64(durationInHours * 60))
}

// FormatRupee formats an amount with Indian digit grouping.
// Example: 1234567 -> "₹12,34,567"
func FormatRupee(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	if len(str) > 3 {
		head, tail := str[:len(str)-3], str[len(str)-3:]

		var grouped []byte
		for i, c := range []byte(head) {
			if i > 0 && (len(head)-i)%2 == 0 {
				grouped = append(grouped, ',')
			}
			grouped = append(grouped, c)
		}

		str = string(grouped) + "," + tail
	}

	if negative {
		return "-₹" + str
	}

	return "₹" + str
}
