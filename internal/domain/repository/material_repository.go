package repository

import (
	"context"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// MaterialRepository carga el dato de referencia del catálogo desde la
// base. Solo se usa en el arranque; después el catálogo vive en memoria.
type MaterialRepository interface {
	ListAll(ctx context.Context) ([]*entity.Material, error)
}
