package services

import (
	"fmt"
	"strings"
)

// NormalizePrice приводит цену из выгрузки к целочисленной строке для API
// маркетплейсов. Дробная часть отбрасывается без округления, всё кроме цифр
// удаляется: "5'990.00 руб." -> "5990", "12.50" -> "12".
// Пустая цена или строка без цифр считается испорченной строкой выгрузки.
func NormalizePrice(raw string) (string, error) {
	head, _, _ := strings.Cut(raw, ".")
	var digits strings.Builder
	for _, r := range head {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", fmt.Errorf("malformed price %q", raw)
	}
	return digits.String(), nil
}
