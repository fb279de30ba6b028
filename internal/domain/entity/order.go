package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// Estados del ciclo de vida de un pedido.
//
//	OPEN ──(checkout)──▶ FINALIZING ──▶ COMMITTED
//	  │                      │
//	  │                      └──(validación falla)──▶ OPEN
//	  └──(cancel)──▶ CANCELLED
//
// CANCELLED solo es alcanzable desde OPEN y nunca toca el stock: con el
// modelo de débito diferido nada fue descontado mientras el pedido se editaba.
const (
	OrderStatusOpen       = "OPEN"
	OrderStatusFinalizing = "FINALIZING"
	OrderStatusCommitted  = "COMMITTED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderLine es una línea del pedido: un ítem del menú y cuántas unidades.
// El Order dueño es su único mutador.
type OrderLine struct {
	Item     *MenuItem
	Quantity int64
}

// Subtotal devuelve precio unitario × cantidad.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Order acumula las líneas (ítem, cantidad) de un cliente o mesa y orquesta la
// validación y el consumo de stock en el checkout. Invariante: nunca hay dos
// líneas para el mismo ítem; agregar un ítem ya presente incrementa su línea.
type Order struct {
	ID        string
	Table     string // mesa o etiqueta del cliente
	Lines     []*OrderLine
	Status    string
	Notes     map[string]string // metadatos libres (ej. observaciones de cocina)
	CreatedAt time.Time
}

// NewOrder crea un pedido vacío en estado OPEN.
func NewOrder(table string) *Order {
	return &Order{
		ID:        uuid.New().String(),
		Table:     table,
		Status:    OrderStatusOpen,
		Notes:     make(map[string]string),
		CreatedAt: time.Now(),
	}
}

// AddItem agrega qty unidades de un ítem al pedido. Si el ítem ya tiene línea,
// incrementa su cantidad en lugar de duplicarla. Solo válido en OPEN.
func (o *Order) AddItem(item *MenuItem, qty int64) error {
	if o.Status != OrderStatusOpen {
		return fmt.Errorf("%w: estado %s", domain.ErrOrderNotOpen, o.Status)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}
	for _, l := range o.Lines {
		if NormalizeName(l.Item.Name) == NormalizeName(item.Name) {
			l.Quantity += qty
			return nil
		}
	}
	o.Lines = append(o.Lines, &OrderLine{Item: item, Quantity: qty})
	return nil
}

// RemoveItem quita unidades de la línea del ítem nombrado. Con qty nil o mayor
// o igual a la cantidad actual elimina la línea completa; si el ítem no está,
// no hace nada. Solo válido en OPEN.
func (o *Order) RemoveItem(name string, qty *int64) error {
	if o.Status != OrderStatusOpen {
		return fmt.Errorf("%w: estado %s", domain.ErrOrderNotOpen, o.Status)
	}
	key := NormalizeName(name)
	for i, l := range o.Lines {
		if NormalizeName(l.Item.Name) != key {
			continue
		}
		if qty == nil || *qty >= l.Quantity {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		} else if *qty > 0 {
			l.Quantity -= *qty
		}
		return nil
	}
	return nil
}

// Cancel vacía las líneas y pasa a CANCELLED. Solo desde OPEN; no interactúa
// con el stock porque en OPEN nunca se descontó nada.
func (o *Order) Cancel() error {
	if o.Status != OrderStatusOpen {
		return fmt.Errorf("%w: estado %s", domain.ErrOrderNotOpen, o.Status)
	}
	o.Lines = nil
	o.Status = OrderStatusCancelled
	return nil
}

// Subtotal suma precio × cantidad de todas las líneas.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TotalWithTax devuelve subtotal × (1 + rate). El impuesto es un parámetro de
// facturación del caller, no estado intrínseco del pedido.
func (o *Order) TotalWithTax(rate decimal.Decimal) decimal.Decimal {
	return o.Subtotal().Mul(decimal.NewFromInt(1).Add(rate))
}

// Requirements acumula los requerimientos de ingredientes de todas las líneas.
func (o *Order) Requirements() Requirements {
	total := make(Requirements)
	for _, l := range o.Lines {
		l.Item.Requirements(l.Quantity).MergeInto(total)
	}
	return total
}

// Checkout ejecuta el protocolo de dos fases contra el stock.
//
// Fase 1 — validar: se chequea la disponibilidad de cada línea (refrescando la
// caché Available de cada ítem) y además el agregado de todas las líneas, para
// que dos líneas que comparten un ingrediente no pasen la validación por
// separado y revienten en el commit. Si algo falta, el pedido vuelve a OPEN y
// se devuelve un *domain.ShortageError con la lista completa de faltantes y de
// líneas afectadas; el stock queda intacto.
//
// Fase 2 — commit: solo si la validación pasó, se consume línea por línea. Un
// fallo aquí no debería ocurrir bajo el modelo de actor único; si ocurre
// (extensión multi-actor futura) se detiene el consumo y se reporta
// ErrConsistency con el detalle: el estado parcialmente descontado se hace
// visible, no se traga. El pedido queda en FINALIZING para impedir reintentos
// a ciegas.
//
// Con éxito total el pedido pasa a COMMITTED y queda inmutable, listo para
// entregarse al generador de boletas.
func (o *Order) Checkout(stock *Stock) error {
	if o.Status != OrderStatusOpen {
		return fmt.Errorf("%w: estado %s", domain.ErrOrderNotOpen, o.Status)
	}
	if len(o.Lines) == 0 {
		return domain.ErrOrderEmpty
	}
	o.Status = OrderStatusFinalizing

	for _, l := range o.Lines {
		l.Item.IsAvailable(stock, l.Quantity)
	}
	shortages := stock.Shortages(o.Requirements())
	if len(shortages) > 0 {
		o.Status = OrderStatusOpen
		return &domain.ShortageError{
			Shortages: shortages,
			Lines:     o.linesTouching(shortages),
		}
	}

	for i, l := range o.Lines {
		if err := l.Item.ConsumeFor(stock, l.Quantity); err != nil {
			return fmt.Errorf("%w: línea %d (%s): %v", domain.ErrConsistency, i+1, l.Item.Name, err)
		}
	}
	o.Status = OrderStatusCommitted
	return nil
}

// linesTouching identifica las líneas cuya receta usa algún ingrediente en falta.
func (o *Order) linesTouching(shortages []domain.Shortage) []domain.LineShortage {
	short := make(map[string]bool, len(shortages))
	for _, s := range shortages {
		short[s.Ingredient] = true
	}
	var out []domain.LineShortage
	for _, l := range o.Lines {
		for ing := range l.Item.Recipe {
			if short[ing] {
				out = append(out, domain.LineShortage{Item: l.Item.Name, Requested: l.Quantity})
				break
			}
		}
	}
	return out
}
