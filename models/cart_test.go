package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLineIDIsOrderIndependent(t *testing.T) {
	a := BuildLineID("item-1", []SelectedModification{
		{GroupID: "variant", OptionID: "large"},
		{GroupID: "addons", OptionID: "chicken"},
	})
	b := BuildLineID("item-1", []SelectedModification{
		{GroupID: "addons", OptionID: "chicken"},
		{GroupID: "variant", OptionID: "large"},
	})

	assert.Equal(t, a, b)
	assert.Equal(t, "item-1-addons:chicken|variant:large", a)
}

func TestBuildLineIDDistinguishesSelections(t *testing.T) {
	plain := BuildLineID("item-1", nil)
	large := BuildLineID("item-1", []SelectedModification{{GroupID: "variant", OptionID: "large"}})

	assert.Equal(t, "item-1-", plain)
	assert.NotEqual(t, plain, large)
}

func TestRecompute(t *testing.T) {
	line := CartLine{
		BasePrice: 16.50,
		Quantity:  2,
		Modifications: []SelectedModification{
			{GroupID: "addons", OptionID: "chicken", Price: 2.00},
		},
	}
	line.Recompute()
	assert.Equal(t, 37.00, line.LineTotal)

	line.Quantity = 3
	line.Recompute()
	assert.Equal(t, 55.50, line.LineTotal)
}

func TestRecomputeAlwaysMatchesComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		line := CartLine{
			BasePrice: RoundCents(rng.Float64() * 50),
			Quantity:  1 + rng.Intn(9),
		}
		for j := 0; j < rng.Intn(4); j++ {
			line.Modifications = append(line.Modifications, SelectedModification{
				Price: RoundCents(rng.Float64() * 5),
			})
		}
		line.Recompute()

		want := RoundCents((line.BasePrice + line.ModificationPrice()) * float64(line.Quantity))
		assert.Equal(t, want, line.LineTotal)
	}
}

func TestCartTotals(t *testing.T) {
	cart := Cart{Lines: []CartLine{
		{BasePrice: 10.00, Quantity: 2},
		{BasePrice: 5.50, Quantity: 1},
	}}
	for i := range cart.Lines {
		cart.Lines[i].Recompute()
	}

	assert.Equal(t, 25.50, cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 49.49, RoundCents(46.50+2.99))
	assert.Equal(t, 0.30, RoundCents(0.1+0.2))
	assert.Equal(t, 2.00, RoundCents(1.999))
}
