package services

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	plentyIndicator   = ">10"
	lastUnitIndicator = "1"

	plentyStock = 100
)

// ResolveQuantity переводит индикатор количества из выгрузки в остаток для
// маркетплейса. ">10" у поставщика означает свободный остаток и выставляется
// как 100. "1" означает последнюю единицу, которую нельзя продавать, поэтому 0.
// Остальные значения трактуются как точное число.
func ResolveQuantity(indicator string) (int, error) {
	switch indicator {
	case plentyIndicator:
		return plentyStock, nil
	case lastUnitIndicator:
		return 0, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(indicator))
	if err != nil {
		return 0, fmt.Errorf("unrecognized quantity indicator %q", indicator)
	}
	return count, nil
}
