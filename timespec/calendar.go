/* Copyright (c) 2021 David Bulkow */

package timespec

func isLeapYear(year int) bool {
	if year%4 == 0 {
		if year%100 == 0 {
			return year%400 == 0
		}
		return true
	}
	return false
}

// months with 31 days
var months31 = map[int]bool{
	1:  true,
	3:  true,
	5:  true,
	7:  true,
	8:  true,
	10: true,
	12: true,
}

func daysInMonth(year, month int) int {
	switch {
	case month == 2 && isLeapYear(year):
		return 29
	case month == 2:
		return 28
	case months31[month]:
		return 31
	default:
		return 30
	}
}
