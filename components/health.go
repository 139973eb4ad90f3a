package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damaged reports whether the entity lost any health.
func (h *HealthData) Damaged() bool {
	return h.Current < h.Max
}

var Health = donburi.NewComponentType[HealthData]()
