package surcharge

import (
	"encoding/json"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewLedger(node)
}

func input(name string, unitPrice int64, qty int) Input {
	return Input{Name: name, UnitPrice: decimal.NewFromInt(unitPrice), Quantity: qty}
}

func sumAmounts(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	return total
}

func TestLedger_AddComputesAmount(t *testing.T) {
	l := newTestLedger(t)

	item, err := l.Add(input("Cleaning fee", 20, 2))
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.True(t, decimal.NewFromInt(40).Equal(item.Amount()))
	assert.True(t, decimal.NewFromInt(40).Equal(l.Total()))
}

func TestLedger_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"empty name", input("  ", 10, 1), "name"},
		{"negative price", input("Fee", -1, 1), "unit_price"},
		{"price not a number", Input{Name: "Fee", Quantity: 1, UnitPriceNaN: true}, "unit_price"},
		{"zero quantity", input("Fee", 10, 0), "quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			notified := 0
			l.Subscribe(func(decimal.Decimal) { notified++ })

			_, err := l.Add(tt.in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Violations, tt.field)
			assert.Equal(t, 0, l.Len())
			assert.Equal(t, 0, notified)
		})
	}
}

func TestLedger_UpdateKeepsPosition(t *testing.T) {
	l := newTestLedger(t)
	a, _ := l.Add(input("A", 10, 1))
	b, _ := l.Add(input("B", 20, 1))
	c, _ := l.Add(input("C", 30, 1))

	updated, err := l.Update(b.ID, input("B2", 15, 3))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(updated.Amount()))

	items := l.All()
	require.Len(t, items, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "B2", items[1].Name)
	assert.True(t, decimal.NewFromInt(85).Equal(l.Total()))
}

func TestLedger_UpdateUnknownID(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(input("A", 10, 1))

	_, err := l.Update(42, input("X", 1, 1))
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.True(t, decimal.NewFromInt(10).Equal(l.Total()))
}

func TestLedger_UpdateRejectsInvalidInput(t *testing.T) {
	l := newTestLedger(t)
	a, _ := l.Add(input("A", 10, 2))

	_, err := l.Update(a.ID, input("A", 10, 0))
	require.Error(t, err)

	got, ok := l.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Quantity)
}

func TestLedger_Remove(t *testing.T) {
	l := newTestLedger(t)
	a, _ := l.Add(input("A", 10, 1))
	b, _ := l.Add(input("B", 20, 1))

	assert.True(t, l.Remove(a.ID))
	for _, it := range l.All() {
		assert.NotEqual(t, a.ID, it.ID)
	}
	assert.True(t, decimal.NewFromInt(20).Equal(l.Total()))

	before := l.Total()
	assert.False(t, l.Remove(a.ID))
	assert.True(t, before.Equal(l.Total()))
	_, ok := l.Get(b.ID)
	assert.True(t, ok)
}

func TestLedger_Clear(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(input("A", 10, 1))
	_, _ = l.Add(input("B", 20, 1))

	l.Clear()
	assert.Empty(t, l.All())
	assert.True(t, l.Total().IsZero())
}

func TestLedger_TotalMatchesItemsAfterEveryMutation(t *testing.T) {
	l := newTestLedger(t)
	check := func() {
		t.Helper()
		assert.True(t, sumAmounts(l.All()).Equal(l.Total()))
	}

	check()
	a, _ := l.Add(input("A", 7, 3))
	check()
	b, _ := l.Add(input("B", 11, 2))
	check()
	_, _ = l.Update(a.ID, input("A", 5, 5))
	check()
	l.Remove(b.ID)
	check()
	l.Clear()
	check()
}

func TestLedger_AllReturnsCopy(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(input("A", 10, 1))

	items := l.All()
	items[0].Name = "mutated"
	items[0].Quantity = 99

	got := l.All()
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, 1, got[0].Quantity)
}

func TestLedger_ObserversNotifiedInOrder(t *testing.T) {
	l := newTestLedger(t)
	var calls []string
	var seen decimal.Decimal
	l.Subscribe(func(total decimal.Decimal) {
		calls = append(calls, "first")
		seen = total
	})
	l.Subscribe(func(decimal.Decimal) {
		calls = append(calls, "second")
		// observers may read the ledger
		_ = l.Total()
	})

	a, _ := l.Add(input("A", 10, 2))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.True(t, decimal.NewFromInt(20).Equal(seen))

	_, _ = l.Update(a.ID, input("A", 10, 3))
	l.Remove(a.ID)
	l.Clear()
	assert.Len(t, calls, 8)
	assert.True(t, seen.IsZero())
}

func TestLedger_UniqueIDs(t *testing.T) {
	l := newTestLedger(t)
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		item, err := l.Add(input("Fee", 1, 1))
		require.NoError(t, err)
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}

func TestItem_MarshalJSON(t *testing.T) {
	item := Item{ID: 7, Name: "Late fee", UnitPrice: decimal.NewFromInt(15), Quantity: 2}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "30", decoded["amount"])
	assert.Equal(t, "7", decoded["id"])
	assert.NotContains(t, decoded, "note")
}
