package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "in"     // entrada
	MovementTypeOut    = "out"    // salida
	MovementTypeAdjust = "adjust" // ajuste
)

// InventoryMovement representa un movimiento de inventario (entrada, salida o ajuste).
// Es append-only: lo crean las operaciones de stock externas; el motor de
// analítica solo lee el movimiento más reciente por producto.
type InventoryMovement struct {
	ID        string
	ProductID string
	Type      string // in, out, adjust
	Quantity  int    // positivo entrada/ajuste+, negativo salida
	Date      time.Time
	CreatedAt time.Time
}
