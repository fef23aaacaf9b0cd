package cart

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Line is one cart entry. Name and Price are snapshots taken when the
// product was first added; a later catalog price change does not touch
// them (what you saw is what you pay).
type Line struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart maps product id (as string key) to its line. It lives in the
// shopper's session, never in the database.
type Cart map[string]Line

func Key(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}

// ViewLine is a Line with its recomputed subtotal.
type ViewLine struct {
	Line
	Subtotal decimal.Decimal `json:"subtotal"`
}

type View struct {
	Lines []ViewLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// BuildView recomputes per-line subtotals and the grand total with
// decimal arithmetic. Lines come out ordered by product id.
func BuildView(c Cart) *View {
	view := &View{
		Lines: make([]ViewLine, 0, len(c)),
		Total: decimal.Zero,
	}

	for _, line := range c {
		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Total = view.Total.Add(subtotal)
		view.Lines = append(view.Lines, ViewLine{Line: line, Subtotal: subtotal})
	}

	sort.Slice(view.Lines, func(i, j int) bool {
		return view.Lines[i].ProductID < view.Lines[j].ProductID
	})

	return view
}
