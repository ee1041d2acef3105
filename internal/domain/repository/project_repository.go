package repository

import (
	"context"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// ProjectRepository acceso de SOLO LECTURA a los proyectos: el ciclo de
// vida del proyecto (creación, aprobación, cierre) pertenece al
// subsistema de gestión, externo a este núcleo.
type ProjectRepository interface {
	// GetByID retorna (nil, nil) si el proyecto no existe.
	GetByID(ctx context.Context, projectID string) (*entity.Project, error)
	// Exists chequeo barato para validación de eventos del ledger.
	Exists(ctx context.Context, projectID string) (bool, error)
}
