package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(variantID string, price float64, quantity int) Item {
	return Item{
		VariantID: variantID,
		ProductID: "prod-1",
		Name:      "Cinematic Hoodie",
		Price:     price,
		Quantity:  quantity,
		Image:     "https://cdn.example/front.jpg",
	}
}

func TestStore_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("MergesQuantitiesForSameVariant", func(t *testing.T) {
		store := NewStore(ctx, "s1", NewMemoryStorage())

		assert.NoError(t, store.AddItem(ctx, item("v1", 50, 2)))
		assert.NoError(t, store.AddItem(ctx, item("v1", 50, 2)))

		items := store.Items()
		assert.Len(t, items, 1, "same variant must merge, not duplicate")
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("DistinctVariantsGetDistinctLines", func(t *testing.T) {
		store := NewStore(ctx, "s2", NewMemoryStorage())

		assert.NoError(t, store.AddItem(ctx, item("v1", 50, 1)))
		assert.NoError(t, store.AddItem(ctx, item("v2", 60, 1)))

		assert.Len(t, store.Items(), 2)
	})

	t.Run("RejectsQuantityBelowOne", func(t *testing.T) {
		store := NewStore(ctx, "s3", NewMemoryStorage())

		assert.ErrorIs(t, store.AddItem(ctx, item("v1", 50, 0)), ErrInvalidQuantity)
		assert.ErrorIs(t, store.AddItem(ctx, item("v1", 50, -3)), ErrInvalidQuantity)
		assert.Empty(t, store.Items())
	})
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "s1", NewMemoryStorage())

	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 2)))

	t.Run("ReplacesNotAdds", func(t *testing.T) {
		store.UpdateQuantity(ctx, "v1", 5)
		assert.Equal(t, 5, store.Items()[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		store.UpdateQuantity(ctx, "v1", 0)
		assert.Empty(t, store.Items())
	})
}

func TestStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "s1", NewMemoryStorage())

	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 1)))

	store.RemoveItem(ctx, "v1")
	assert.Empty(t, store.Items())

	// Removing an absent line is a no-op, not an error.
	store.RemoveItem(ctx, "v-ghost")
	assert.Empty(t, store.Items())
}

func TestStore_Totals(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "s1", NewMemoryStorage())

	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 2)))
	assert.NoError(t, store.AddItem(ctx, item("v2", 19.99, 3)))

	assert.Equal(t, 5, store.ItemCount())
	assert.InDelta(t, 50*2+19.99*3, store.Total(), 1e-9)

	store.UpdateQuantity(ctx, "v2", 1)
	assert.Equal(t, 3, store.ItemCount())
	assert.InDelta(t, 50*2+19.99, store.Total(), 1e-9)
}

// add, set to 3, remove: the cart must end empty.
func TestStore_AddUpdateRemoveScenario(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "s1", NewMemoryStorage())

	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 1)))
	store.UpdateQuantity(ctx, "v1", 3)
	store.RemoveItem(ctx, "v1")

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, 0.0, store.Total())
}

func TestStore_RoundTripPersistence(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store := NewStore(ctx, "session", storage)
	withOptions := item("v1", 50, 2)
	withOptions.Size = "S"
	withOptions.Color = "Blue"
	assert.NoError(t, store.AddItem(ctx, withOptions))
	assert.NoError(t, store.AddItem(ctx, item("v2", 19.99, 1)))

	// A fresh store over the same storage must reload every line.
	reloaded := NewStore(ctx, "session", storage)
	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.ItemCount(), reloaded.ItemCount())
	assert.Equal(t, store.Total(), reloaded.Total())
	assert.Equal(t, "Blue", reloaded.Items()[0].Color)
}

func TestStore_CorruptPersistedValue(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	assert.NoError(t, storage.Save(ctx, "session", []byte("{not json")))

	store := NewStore(ctx, "session", storage)
	assert.Empty(t, store.Items(), "corrupt blob initializes empty, not fatal")
}

// failingStorage simulates unavailable persistence (quota, disabled
// storage backend).
type failingStorage struct{}

func (failingStorage) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage offline")
}

func (failingStorage) Save(context.Context, string, []byte) error {
	return errors.New("storage offline")
}

func (failingStorage) Delete(context.Context, string) error {
	return errors.New("storage offline")
}

func TestStore_DegradesToMemoryOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "session", failingStorage{})

	// The user action still succeeds; state is held in memory.
	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 1)))
	assert.Len(t, store.Items(), 1)

	store.UpdateQuantity(ctx, "v1", 2)
	assert.Equal(t, 2, store.ItemCount())
}

func TestStore_ClearEmptiesCollection(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(ctx, "session", storage)

	assert.NoError(t, store.AddItem(ctx, item("v1", 50, 2)))
	store.Clear(ctx)

	assert.Empty(t, store.Items())

	reloaded := NewStore(ctx, "session", storage)
	assert.Empty(t, reloaded.Items(), "clear must persist the empty collection")
}

func TestManager_ReusesStorePerSession(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStorage())

	a := manager.StoreFor(ctx, "session-a")
	b := manager.StoreFor(ctx, "session-b")
	assert.NotSame(t, a, b)

	assert.Same(t, a, manager.StoreFor(ctx, "session-a"))
}
