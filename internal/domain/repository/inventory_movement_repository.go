package repository

import (
	"context"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de lectura de movimientos de inventario.
type InventoryMovementRepository interface {
	// List devuelve todos los movimientos ordenados por fecha ascendente.
	List(ctx context.Context) ([]entity.InventoryMovement, error)
	// ListByProduct devuelve los movimientos de un producto ordenados por fecha ascendente.
	ListByProduct(ctx context.Context, productID string) ([]entity.InventoryMovement, error)
}
