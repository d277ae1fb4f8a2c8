package models

import "strconv"

// FormatNumber выводит число в кратчайшей десятичной записи без экспоненты: 53.5, 10, 186.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
