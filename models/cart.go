package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type SelectedModification struct {
	GroupID  string  `json:"groupId"`
	OptionID string  `json:"optionId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

type CartLine struct {
	ID            string                 `json:"id"`
	ItemID        string                 `json:"itemId"`
	Name          string                 `json:"name"`
	BasePrice     float64                `json:"price"`
	Quantity      int                    `json:"quantity"`
	Modifications []SelectedModification `json:"modifications"`
	LineTotal     float64                `json:"totalPrice"`
}

// ModificationPrice is the per-unit increment from all selected modifications.
func (l *CartLine) ModificationPrice() float64 {
	sum := 0.0
	for _, m := range l.Modifications {
		sum += m.Price
	}
	return sum
}

// Recompute derives LineTotal from base price, modifications and quantity.
// LineTotal is never trusted as stored state.
func (l *CartLine) Recompute() {
	l.LineTotal = RoundCents((l.BasePrice + l.ModificationPrice()) * float64(l.Quantity))
}

type Cart struct {
	InstitutionID string     `json:"institutionId"`
	Lines         []CartLine `json:"lines"`
}

func (c *Cart) Total() float64 {
	sum := 0.0
	for i := range c.Lines {
		sum += c.Lines[i].LineTotal
	}
	return RoundCents(sum)
}

func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Lines {
		count += c.Lines[i].Quantity
	}
	return count
}

func (c *Cart) FindLine(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// BuildLineID derives the merge key for a cart line: the item id plus the
// canonical form of its selections. Tokens are sorted so the id does not
// depend on the order the user picked options in.
func BuildLineID(itemID string, mods []SelectedModification) string {
	tokens := make([]string, 0, len(mods))
	for _, m := range mods {
		tokens = append(tokens, fmt.Sprintf("%s:%s", m.GroupID, m.OptionID))
	}
	sort.Strings(tokens)
	return itemID + "-" + strings.Join(tokens, "|")
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
