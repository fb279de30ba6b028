// Package menuuc expone la carta al exterior: listado con disponibilidad
// refrescada y generación de la carta en PDF.
package menuuc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/internal/domain/menu"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// CartaPDFGenerator renderiza la carta del restaurante a un documento.
type CartaPDFGenerator interface {
	GenerateCartaPDF(ctx context.Context, items []entity.MenuItem) ([]byte, error)
}

// UseCase consulta el catálogo. Comparte el mutex de la sesión porque el
// refresco de disponibilidad lee el stock.
type UseCase struct {
	mu      *sync.Mutex
	stock   *entity.Stock
	catalog *menu.Catalog
	carta   CartaPDFGenerator
	outDir  string
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(mu *sync.Mutex, stock *entity.Stock, catalog *menu.Catalog, carta CartaPDFGenerator, outDir string, log *logger.Logger) *UseCase {
	return &UseCase{mu: mu, stock: stock, catalog: catalog, carta: carta, outDir: outDir, log: log}
}

// ListMenu devuelve la carta con la caché de disponibilidad recién calculada.
// La disponibilidad es consultiva, para habilitar o deshabilitar botones de
// compra; el checkout siempre re-valida contra el stock. Devuelve copias.
func (uc *UseCase) ListMenu() []entity.MenuItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.catalog.RefreshAvailability(uc.stock)
	items := uc.catalog.Items()
	out := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

// CartaPDF genera la carta en PDF, la escribe en el directorio de salida y
// devuelve la ruta absoluta.
func (uc *UseCase) CartaPDF(ctx context.Context) (string, error) {
	items := uc.ListMenu()

	pdfBytes, err := uc.carta.GenerateCartaPDF(ctx, items)
	if err != nil {
		return "", fmt.Errorf("carta: generar PDF: %w", err)
	}
	if err := os.MkdirAll(uc.outDir, 0o755); err != nil {
		return "", fmt.Errorf("carta: crear directorio de salida: %w", err)
	}
	path := filepath.Join(uc.outDir, "carta_restaurante.pdf")
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("carta: escribir %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	uc.log.Info().Str("carta", abs).Msg("carta generada")
	return abs, nil
}
