// Package orders orquesta el ciclo de vida de los pedidos: creación, edición
// de líneas, cancelación y el checkout en dos fases contra el stock, seguido
// de la generación de la boleta.
package orders

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/internal/domain/menu"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// UseCase mantiene los pedidos de la sesión en memoria y coordina el consumo
// de stock. Comparte el mutex con el caso de uso de inventario para serializar
// la secuencia validar-luego-descontar (ver comentario en inventory.UseCase).
type UseCase struct {
	mu       *sync.Mutex
	stock    *entity.Stock
	catalog  *menu.Catalog
	receipts ReceiptPDFGenerator
	info     RestaurantInfo
	taxRate  decimal.Decimal
	outDir   string
	orders   map[string]*entity.Order
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. taxRate es la tasa de IVA (ej. 0.19);
// outDir el directorio donde se escriben las boletas.
func NewUseCase(
	mu *sync.Mutex,
	stock *entity.Stock,
	catalog *menu.Catalog,
	receipts ReceiptPDFGenerator,
	info RestaurantInfo,
	taxRate decimal.Decimal,
	outDir string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		mu:       mu,
		stock:    stock,
		catalog:  catalog,
		receipts: receipts,
		info:     info,
		taxRate:  taxRate,
		outDir:   outDir,
		orders:   make(map[string]*entity.Order),
		log:      log,
	}
}

// CreateOrder abre un pedido nuevo para una mesa o etiqueta de cliente.
func (uc *UseCase) CreateOrder(table string) *entity.Order {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	order := entity.NewOrder(table)
	uc.orders[order.ID] = order
	uc.log.Info().Str("pedido", order.ID).Str("mesa", table).Msg("pedido creado")
	return order
}

// Get devuelve un pedido por ID. Los pedidos COMMITTED o CANCELLED siguen
// siendo consultables.
func (uc *UseCase) Get(id string) (*entity.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	order, ok := uc.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// AddItem agrega qty unidades de un ítem de la carta al pedido.
// ErrNotFound si el pedido o el ítem no existen.
func (uc *UseCase) AddItem(id, itemName string, qty int64) (*entity.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	order, ok := uc.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item, ok := uc.catalog.Get(itemName)
	if !ok {
		return nil, fmt.Errorf("%w: ítem %q no está en la carta", domain.ErrNotFound, itemName)
	}
	if err := order.AddItem(item, qty); err != nil {
		return nil, err
	}
	return order, nil
}

// RemoveItem quita unidades (o la línea completa con qty nil) de un ítem del
// pedido. Quitar un ítem ausente no es error.
func (uc *UseCase) RemoveItem(id, itemName string, qty *int64) (*entity.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	order, ok := uc.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := order.RemoveItem(itemName, qty); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel anula un pedido OPEN. No toca el stock: nada fue descontado.
func (uc *UseCase) Cancel(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	order, ok := uc.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	if err := order.Cancel(); err != nil {
		return err
	}
	uc.log.Info().Str("pedido", id).Msg("pedido cancelado")
	return nil
}

// CheckoutResult es el resultado de un checkout exitoso. BoletaPath queda
// vacío si el pedido se cobró pero la boleta no pudo generarse (el cobro no se
// revierte por una falla del documento; la falla queda en el log).
type CheckoutResult struct {
	Order      *entity.Order
	Totals     BoletaTotals
	BoletaPath string
}

// Checkout ejecuta el protocolo de dos fases del pedido contra el stock y, si
// el cobro queda COMMITTED, genera y escribe la boleta en disco.
//
// Los errores de validación llegan como *domain.ShortageError con la lista
// completa de faltantes; el stock queda intacto y el pedido vuelve a OPEN para
// que el caller decida reintentar tras reponer.
func (uc *UseCase) Checkout(ctx context.Context, id string) (*CheckoutResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	order, ok := uc.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := order.Checkout(uc.stock); err != nil {
		uc.log.Warn().Str("pedido", id).Err(err).Msg("checkout rechazado")
		return nil, err
	}

	totals := uc.totalsFor(order)
	result := &CheckoutResult{Order: order, Totals: totals}

	path, err := uc.writeBoleta(ctx, order, totals)
	if err != nil {
		// El stock ya se descontó y el pedido está COMMITTED: la boleta es un
		// colaborador externo y su falla no revierte el cobro.
		uc.log.Error().Str("pedido", id).Err(err).Msg("no se pudo generar la boleta")
		return result, nil
	}
	result.BoletaPath = path

	uc.log.Info().
		Str("pedido", id).
		Str("total", totals.Total.String()).
		Str("boleta", path).
		Msg("pedido cobrado")
	return result, nil
}

// totalsFor aplica la convención chilena: el precio de carta incluye IVA, el
// neto es total/(1+tasa) redondeado a peso y el IVA es la diferencia.
func (uc *UseCase) totalsFor(order *entity.Order) BoletaTotals {
	total := order.Subtotal()
	neto := total.Div(decimal.NewFromInt(1).Add(uc.taxRate)).Round(0)
	return BoletaTotals{Neto: neto, IVA: total.Sub(neto), Total: total}
}

func (uc *UseCase) writeBoleta(ctx context.Context, order *entity.Order, totals BoletaTotals) (string, error) {
	pdfBytes, err := uc.receipts.GenerateBoletaPDF(ctx, order, uc.info, totals)
	if err != nil {
		return "", fmt.Errorf("boleta: generar PDF: %w", err)
	}
	if err := os.MkdirAll(uc.outDir, 0o755); err != nil {
		return "", fmt.Errorf("boleta: crear directorio de salida: %w", err)
	}
	name := fmt.Sprintf("boleta_%s_%s.pdf", order.ID[:8], time.Now().Format("20060102_150405"))
	path := filepath.Join(uc.outDir, name)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("boleta: escribir %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
