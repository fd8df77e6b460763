package logic

import (
	"transferlist/internal/domain"
)

// Transfer moves the source items whose value is in values to the end of dest.
// Both lists keep their relative order. An empty values set returns the inputs
// unchanged and no moved values.
func Transfer(source, dest []domain.Item, values Selection) (newSource, newDest []domain.Item, moved []string) {
	if values.Len() == 0 {
		return source, dest, nil
	}

	newSource = make([]domain.Item, 0, len(source))
	newDest = make([]domain.Item, len(dest), len(dest)+values.Len())
	copy(newDest, dest)

	for _, item := range source {
		if values.Has(item.Value) {
			newDest = append(newDest, item)
			moved = append(moved, item.Value)
		} else {
			newSource = append(newSource, item)
		}
	}
	return newSource, newDest, moved
}

// TransferValue applies Transfer to a two-list value, moving items away from side from
func TransferValue(v domain.Value, from domain.Side, values Selection) (domain.Value, []string) {
	to := from.Other()
	newSource, newDest, moved := Transfer(v.Side(from), v.Side(to), values)
	if len(moved) == 0 {
		return v, nil
	}

	var out domain.Value
	out[from.Index()] = newSource
	out[to.Index()] = newDest
	return out, moved
}

// ValidatePartition checks that every value appears exactly once across both lists
func ValidatePartition(v domain.Value) error {
	seen := make(map[string]struct{}, v.Len())
	for _, side := range domain.Sides {
		for _, item := range v.Side(side) {
			if _, dup := seen[item.Value]; dup {
				return domain.DuplicateValueError{Value: item.Value}
			}
			seen[item.Value] = struct{}{}
		}
	}
	return nil
}
