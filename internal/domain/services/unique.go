package services

import "github.com/reglet-dev/ariasheet/internal/domain/entities"

// Unique drops entries whose name was already seen. The first occurrence
// wins and the input order is kept.
func Unique[T entities.Named](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		name := item.GetName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, item)
	}
	return out
}
