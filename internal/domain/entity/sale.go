package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada de un producto.
// Append-only; el motor de analítica agrega por producto.
type Sale struct {
	ID          string
	ProductID   string
	Quantity    int             // unidades vendidas
	TotalAmount decimal.Decimal // monto total de la venta
	Date        time.Time
	CreatedAt   time.Time
}
