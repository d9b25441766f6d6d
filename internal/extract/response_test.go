package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBatch_BareJSON(t *testing.T) {
	batch, err := decodeBatch(`{"restaurantName":"Quán A","categories":[{"categoryName":"Cà phê","items":[{"name":"Đen","price":"20000"}]}]}`)
	require.NoError(t, err)

	assert.Equal(t, "Quán A", batch.RestaurantName)
	require.Len(t, batch.Categories, 1)
	require.Len(t, batch.Categories[0].Items, 1)
	assert.Equal(t, "Đen", batch.Categories[0].Items[0].Name)
}

func TestDecodeBatch_StripsMarkdownFences(t *testing.T) {
	batch, err := decodeBatch("```json\n{\"categories\":[]}\n```")
	require.NoError(t, err)
	assert.Empty(t, batch.Categories)
}

func TestDecodeBatch_MissingFieldsAreEmpty(t *testing.T) {
	batch, err := decodeBatch(`{}`)
	require.NoError(t, err)
	assert.Empty(t, batch.RestaurantName)
	assert.Empty(t, batch.Categories)
}

func TestDecodeBatch_RejectsNonJSON(t *testing.T) {
	_, err := decodeBatch("Sorry, I cannot read this menu.")
	assert.Error(t, err)
}
