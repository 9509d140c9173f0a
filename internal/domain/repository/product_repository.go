package repository

import (
	"context"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// El motor de analítica no lo conoce: la capa de aplicación carga las
// colecciones completas y se las entrega al motor como datos en memoria.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve el catálogo completo. category vacío => sin filtro.
	List(ctx context.Context, category string) ([]entity.Product, error)
}
