package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teapos/models"
)

func testItem(name string, price float64) models.Item {
	return models.Item{
		ID:        primitive.NewObjectID(),
		Name:      name,
		UnitPrice: price,
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	cart := models.Cart{}
	tea := testItem("Milk Tea", 50)

	require.NoError(t, AddItem(&cart, tea, 1))
	require.NoError(t, AddItem(&cart, tea, 1))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 100.00, CartTotal(&cart))
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	cart := models.Cart{}
	tea := testItem("Milk Tea", 50)

	require.NoError(t, AddItem(&cart, tea, 1))

	tea.UnitPrice = 60
	assert.Equal(t, 50.00, cart.Lines[0].UnitPrice)
}

func TestAddItemInvalidQuantity(t *testing.T) {
	cart := models.Cart{}
	err := AddItem(&cart, testItem("Tea", 50), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, cart.Lines)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := models.Cart{}
	tea := testItem("Milk Tea", 50)
	require.NoError(t, AddItem(&cart, tea, 2))

	RemoveItem(&cart, "nonexistent")
	assert.Len(t, cart.Lines, 1)

	RemoveItem(&cart, tea.ID.Hex())
	assert.Empty(t, cart.Lines)
}

func TestSetQuantity(t *testing.T) {
	cart := models.Cart{}
	tea := testItem("Milk Tea", 50)
	require.NoError(t, AddItem(&cart, tea, 1))

	require.NoError(t, SetQuantity(&cart, tea.ID.Hex(), 5))
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	assert.ErrorIs(t, SetQuantity(&cart, tea.ID.Hex(), 0), ErrInvalidQuantity)
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	// Absent item is a no-op.
	require.NoError(t, SetQuantity(&cart, "nonexistent", 3))
	assert.Len(t, cart.Lines, 1)
}

func TestClear(t *testing.T) {
	cart := models.Cart{}
	require.NoError(t, AddItem(&cart, testItem("Milk Tea", 50), 2))

	Clear(&cart)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0.00, CartTotal(&cart))
}

func TestCartTotal(t *testing.T) {
	cart := models.Cart{}
	require.NoError(t, AddItem(&cart, testItem("Milk Tea", 50), 2))
	require.NoError(t, AddItem(&cart, testItem("Fries", 30), 1))

	assert.Equal(t, 130.00, CartTotal(&cart))
}
