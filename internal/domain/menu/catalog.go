// Package menu define el catálogo de ítems vendibles: un registro de solo
// lectura construido explícitamente e inyectado donde se necesita, en lugar de
// estado global mutable.
package menu

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// Catalog es el conjunto inmutable de ítems del menú, indexado por nombre
// normalizado y con orden de inserción estable para la carta.
type Catalog struct {
	names []string
	items map[string]*entity.MenuItem
}

// NewCatalog construye el catálogo; rechaza nombres duplicados (tras
// normalizar) con ErrDuplicate.
func NewCatalog(items ...*entity.MenuItem) (*Catalog, error) {
	c := &Catalog{items: make(map[string]*entity.MenuItem, len(items))}
	for _, item := range items {
		key := entity.NormalizeName(item.Name)
		if _, ok := c.items[key]; ok {
			return nil, fmt.Errorf("%w: ítem del menú %q", domain.ErrDuplicate, item.Name)
		}
		c.items[key] = item
		c.names = append(c.names, key)
	}
	return c, nil
}

// Get busca un ítem por nombre (normalizado).
func (c *Catalog) Get(name string) (*entity.MenuItem, bool) {
	item, ok := c.items[entity.NormalizeName(name)]
	return item, ok
}

// Items devuelve los ítems en orden de carta.
func (c *Catalog) Items() []*entity.MenuItem {
	out := make([]*entity.MenuItem, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name])
	}
	return out
}

// Len devuelve cuántos ítems tiene la carta.
func (c *Catalog) Len() int { return len(c.names) }

// RefreshAvailability recalcula la caché de disponibilidad de cada ítem para
// una unidad. Solo lectura sobre el stock.
func (c *Catalog) RefreshAvailability(stock *entity.Stock) {
	for _, name := range c.names {
		c.items[name].IsAvailable(stock, 1)
	}
}

// DefaultCarta devuelve la carta estándar del restaurante con sus precios
// (IVA incluido, en pesos) y recetas.
func DefaultCarta() *Catalog {
	mk := func(name string, price int64, recipe entity.Recipe, image string) *entity.MenuItem {
		item, err := entity.NewMenuItem(name, decimal.NewFromInt(price), recipe, image)
		if err != nil {
			panic(fmt.Sprintf("carta por defecto inválida: %v", err))
		}
		return item
	}
	q := decimal.NewFromInt

	catalog, err := NewCatalog(
		mk("Papas fritas", 500, entity.Recipe{"papas": q(5)}, "assets/papas.png"),
		mk("Pepsi", 1100, entity.Recipe{"pepsi": q(1)}, "assets/pepsi.png"),
		mk("Completo", 1800, entity.Recipe{
			"vienesa":         q(1),
			"pan de completo": q(1),
			"tomate":          q(1),
			"palta":           q(1),
		}, "assets/completo.png"),
		mk("Hamburguesa", 3500, entity.Recipe{
			"pan de hamburguesa": q(1),
			"lámina de queso":    q(1),
			"churrasco de carne": q(1),
		}, "assets/hamburguesa.png"),
		mk("Panqueques", 2000, entity.Recipe{
			"panqueques":  q(2),
			"manjar":      q(1),
			"azúcar flor": q(1),
		}, "assets/panqueques.png"),
		mk("Pollo frito", 2800, entity.Recipe{
			"presa de pollo":    q(1),
			"porción de harina": q(1),
			"porción de aceite": q(1),
		}, "assets/pollo.png"),
		mk("Ensalada mixta", 1500, entity.Recipe{
			"lechuga":           q(1),
			"tomate":            q(1),
			"zanahoria rallada": q(1),
		}, "assets/ensalada.png"),
	)
	if err != nil {
		panic(fmt.Sprintf("carta por defecto inválida: %v", err))
	}
	return catalog
}
