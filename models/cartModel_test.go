package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLineOutOfStock(t *testing.T) {
	cart := NewCart()
	product := Product{ID: 1, Name: "Notebook Set", Price: 899, TotalItemsInStock: 0}

	err := cart.AddLine(product)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, cart.IsEmpty())
}

func TestAddLineMergesUpToStock(t *testing.T) {
	cart := NewCart()
	product := Product{ID: 2, Name: "Organic Apple", Price: 299, TotalItemsInStock: 2}

	require.NoError(t, cart.AddLine(product))
	require.NoError(t, cart.AddLine(product))

	err := cart.AddLine(product)
	assert.ErrorIs(t, err, ErrStockExceeded)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestTotalRecomputesAfterMutations(t *testing.T) {
	cart := NewCart()
	apple := Product{ID: 1, Name: "Organic Apple", Price: 299, TotalItemsInStock: 10}
	phone := Product{ID: 2, Name: "iPhone 15 Pro", Price: 134900, TotalItemsInStock: 5}

	require.NoError(t, cart.AddLine(apple))
	require.NoError(t, cart.AddLine(phone))
	assert.Equal(t, 135199.0, cart.Total())

	cart.SetQuantity(1, 3)
	assert.Equal(t, 299*3+134900.0, cart.Total())

	cart.RemoveLine(2)
	assert.Equal(t, 299*3.0, cart.Total())

	// Recomputing without mutation must not drift.
	assert.Equal(t, cart.Total(), cart.Total())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	product := Product{ID: 7, Name: "Sony Headphones", Price: 24999, TotalItemsInStock: 4}

	removed := NewCart()
	require.NoError(t, removed.AddLine(product))
	removed.RemoveLine(7)

	zeroed := NewCart()
	require.NoError(t, zeroed.AddLine(product))
	zeroed.SetQuantity(7, 0)

	assert.Equal(t, removed.Lines, zeroed.Lines)
	assert.True(t, zeroed.IsEmpty())
}

func TestSetQuantityAcceptsAnyPositiveValue(t *testing.T) {
	cart := NewCart()
	product := Product{ID: 3, Name: "Notebook Set", Price: 899, TotalItemsInStock: 2}
	require.NoError(t, cart.AddLine(product))

	// Clamping against stock is the caller's responsibility.
	cart.SetQuantity(3, 50)
	assert.Equal(t, 50, cart.Lines[0].Quantity)
}

func TestRemoveLineIsIdempotent(t *testing.T) {
	cart := NewCart()
	product := Product{ID: 5, Name: "Organic Apple", Price: 299, TotalItemsInStock: 3}
	require.NoError(t, cart.AddLine(product))

	cart.RemoveLine(99)
	require.Len(t, cart.Lines, 1)

	cart.RemoveLine(5)
	cart.RemoveLine(5)
	assert.True(t, cart.IsEmpty())
}

// Two handler goroutines can share one session cart; run with -race.
func TestCartIsSafeForConcurrentUse(t *testing.T) {
	cart := NewCart()
	product := Product{ID: 1, Name: "Organic Apple", Price: 299, TotalItemsInStock: 100}

	const adders = 40
	var wg sync.WaitGroup
	wg.Add(adders)
	for i := 0; i < adders; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, cart.AddLine(product))
			_ = cart.Total()
			_ = cart.Snapshot()
		}()
	}
	wg.Wait()

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, adders, cart.Lines[0].Quantity)
	assert.Equal(t, 299*float64(adders), cart.Total())
}

func TestClearEmptiesAllLines(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(Product{ID: 1, Name: "A", Price: 10, TotalItemsInStock: 1}))
	require.NoError(t, cart.AddLine(Product{ID: 2, Name: "B", Price: 20, TotalItemsInStock: 1}))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total())
}
