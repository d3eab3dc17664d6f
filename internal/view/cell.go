// Package view derives how each dish cell should look from table state. It
// carries no styling; the TUI maps categories to colors.
package view

import (
	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/menu"
)

type Category int

const (
	Pending Category = iota
	Current
	Served
)

func (c Category) String() string {
	switch c {
	case Current:
		return "current"
	case Served:
		return "served"
	default:
		return "pending"
	}
}

// SpecialMark describes the special-dish badge on a cell.
type SpecialMark struct {
	Memo     string
	Provided bool
}

// Cell is the derived appearance of one table/dish intersection. The
// allergy and special overlays are independent of Category.
type Cell struct {
	Dish     int
	Category Category
	Allergy  *floor.Note
	Special  *SpecialMark
}

func (c Cell) HasAllergy() bool { return c.Allergy != nil }
func (c Cell) HasSpecial() bool { return c.Special != nil }

// CategoryOf classifies dish for a table. Indices outside the menu are
// Pending.
func CategoryOf(st floor.TableState, dish int) Category {
	switch {
	case !menu.ValidDish(dish):
		return Pending
	case st.CurrentDish == dish+1:
		return Current
	case st.Served[dish]:
		return Served
	default:
		return Pending
	}
}

// CellOf derives the category and overlays of one cell.
func CellOf(st floor.TableState, dish int) Cell {
	c := Cell{Dish: dish, Category: CategoryOf(st, dish)}
	if n, ok := st.Allergy(dish); ok {
		c.Allergy = &n
	}
	if sp, ok := st.Special(dish); ok {
		c.Special = &SpecialMark{Memo: sp.Memo, Provided: sp.Provided}
	}
	return c
}

// Column derives every cell of a table in course order.
func Column(st floor.TableState) []Cell {
	out := make([]Cell, menu.DishCount)
	for i := range out {
		out[i] = CellOf(st, i)
	}
	return out
}

// Progress returns served and total course counts.
func Progress(st floor.TableState) (served, total int) {
	return st.ServedCount(), menu.DishCount
}
