package repository

import (
	"context"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// SaleRepository define el puerto de lectura del historial de ventas.
type SaleRepository interface {
	// List devuelve todas las ventas ordenadas por fecha ascendente.
	List(ctx context.Context) ([]entity.Sale, error)
	// ListByProduct devuelve las ventas de un producto ordenadas por fecha ascendente.
	ListByProduct(ctx context.Context, productID string) ([]entity.Sale, error)
}
