package planning

import (
	"sort"
	"strings"
	"time"
)

// ScheduleItem es una línea del calendario de pedidos: para recibir el
// material en need-by date hay que ordenarlo lead_time días antes.
type ScheduleItem struct {
	Material     string
	NeedByDate   time.Time
	LeadTimeDays int
	OrderDate    time.Time // NeedByDate - LeadTimeDays
}

// LeadTimeFunc resuelve el lead time en días para un nombre de material
// (0 = desconocido). El catálogo satisface esta firma.
type LeadTimeFunc func(name string) int

// OrderingSchedule calcula la fecha óptima de pedido por material.
// El lead time se resuelve en orden: override explícito → catálogo.
// Los overrides se comparan por nombre en minúsculas, igual que el
// catálogo, así "Steel" y "steel" refieren al mismo material. Overrides
// no positivos se ignoran. El resultado queda ordenado por fecha de
// pedido ascendente (desempate por nombre de material) para lectura y
// aserciones deterministas.
func OrderingSchedule(needBy map[string]time.Time, leadTime LeadTimeFunc, overrides map[string]int) []ScheduleItem {
	normalized := make(map[string]int, len(overrides))
	for name, ov := range overrides {
		normalized[strings.ToLower(name)] = ov
	}

	items := make([]ScheduleItem, 0, len(needBy))
	for material, date := range needBy {
		lt := 0
		if ov, ok := normalized[strings.ToLower(material)]; ok && ov > 0 {
			lt = ov
		} else {
			lt = leadTime(material)
		}
		items = append(items, ScheduleItem{
			Material:     material,
			NeedByDate:   date,
			LeadTimeDays: lt,
			OrderDate:    date.AddDate(0, 0, -lt),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].OrderDate.Equal(items[j].OrderDate) {
			return items[i].OrderDate.Before(items[j].OrderDate)
		}
		return items[i].Material < items[j].Material
	})
	return items
}
