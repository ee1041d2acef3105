package entity

// Unidades de medida de materiales de infraestructura eléctrica.
const (
	UnitTons  = "tons"  // acero, fundaciones
	UnitKm    = "km"    // conductor, cable de guarda
	UnitUnits = "units" // transformadores, reactores, torres
)

// Material es dato de referencia del catálogo: nombre estable, unidad de
// medida y plazo de reposición (lead time) en días. Se carga una vez al
// arrancar y nunca se muta durante la vida del proceso.
type Material struct {
	ID           string
	Name         string // clave estable; eventos y pronósticos suelen venir por nombre
	Unit         string
	LeadTimeDays int // días entre ordenar y recibir; siempre > 0 en catálogo válido
}
