// Package catalog implementa el catálogo estático de materiales:
// dato de referencia compartido por el reconciliador (unidades) y el
// planificador (lead times). Se construye una vez al arrancar y después
// solo se lee, por lo que es seguro para acceso concurrente sin locks.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// Catalog indexa materiales por id y por nombre (case-insensitive).
type Catalog struct {
	byID   map[string]*entity.Material
	byName map[string]*entity.Material
	sorted []*entity.Material // orden estable por id ascendente
}

// New construye el catálogo validando unicidad de id y nombre y que el
// lead time sea positivo.
func New(materials []*entity.Material) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[string]*entity.Material, len(materials)),
		byName: make(map[string]*entity.Material, len(materials)),
	}
	for _, m := range materials {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("material sin id o nombre: %w", domain.ErrInvalidInput)
		}
		if m.LeadTimeDays <= 0 {
			return nil, fmt.Errorf("material %s: lead time debe ser positivo: %w", m.ID, domain.ErrInvalidInput)
		}
		if _, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("material %s: %w", m.ID, domain.ErrDuplicate)
		}
		nameKey := strings.ToLower(m.Name)
		if _, ok := c.byName[nameKey]; ok {
			return nil, fmt.Errorf("material %s: nombre repetido: %w", m.Name, domain.ErrDuplicate)
		}
		c.byID[m.ID] = m
		c.byName[nameKey] = m
		c.sorted = append(c.sorted, m)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].ID < c.sorted[j].ID })
	return c, nil
}

// Default devuelve el catálogo canónico de los siete materiales de
// infraestructura de transmisión con sus lead times de reposición.
func Default() *Catalog {
	c, err := New([]*entity.Material{
		{ID: "steel", Name: "Steel", Unit: entity.UnitTons, LeadTimeDays: 75},
		{ID: "conductor", Name: "Conductor", Unit: entity.UnitKm, LeadTimeDays: 90},
		{ID: "transformers", Name: "Transformers", Unit: entity.UnitUnits, LeadTimeDays: 120},
		{ID: "earthwire", Name: "Earthwire", Unit: entity.UnitKm, LeadTimeDays: 60},
		{ID: "foundation", Name: "Foundation", Unit: entity.UnitUnits, LeadTimeDays: 45},
		{ID: "reactors", Name: "Reactors", Unit: entity.UnitUnits, LeadTimeDays: 120},
		{ID: "tower", Name: "Tower", Unit: entity.UnitUnits, LeadTimeDays: 60},
	})
	if err != nil {
		// Solo posible por error de programación en la tabla literal.
		panic(err)
	}
	return c
}

// Lookup busca un material por id. Retorna domain.ErrNotFound si no existe.
func (c *Catalog) Lookup(materialID string) (*entity.Material, error) {
	m, ok := c.byID[materialID]
	if !ok {
		return nil, fmt.Errorf("material %q: %w", materialID, domain.ErrNotFound)
	}
	return m, nil
}

// LookupByName busca por nombre (caso común: eventos y pronósticos llegan
// por nombre, no por id). Case-insensitive. domain.ErrNotFound si no existe.
func (c *Catalog) LookupByName(name string) (*entity.Material, error) {
	m, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("material %q: %w", name, domain.ErrNotFound)
	}
	return m, nil
}

// LeadTimeDays devuelve el lead time por nombre, o 0 si el material es
// desconocido (el forecaster trata 0 como "sin dato", nunca como error).
func (c *Catalog) LeadTimeDays(name string) int {
	m, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return 0
	}
	return m.LeadTimeDays
}

// Materials devuelve los materiales en orden estable (id ascendente).
// El slice es compartido: los llamadores no deben mutarlo.
func (c *Catalog) Materials() []*entity.Material {
	return c.sorted
}

// Len cantidad de materiales en el catálogo.
func (c *Catalog) Len() int { return len(c.sorted) }
