package menu

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDGenerator hands out deterministic ids for tests.
type seqIDGenerator struct {
	cats, items int
}

func (g *seqIDGenerator) NextCategoryID() string {
	g.cats++
	return fmt.Sprintf("cat_test_%d", g.cats)
}

func (g *seqIDGenerator) NextItemID() string {
	g.items++
	return fmt.Sprintf("item_test_%d", g.items)
}

func twoItemDoc() *MenuData {
	return &MenuData{
		RestaurantName: "Quán A",
		Categories: []MenuCategory{
			{
				ID:           "ca-phe",
				CategoryName: "Cà phê",
				Items: []MenuItem{
					{ID: "item_1", Name: "Đen", Price: "20000"},
					{ID: "item_2", Name: "Sữa", Price: "25000"},
				},
			},
			{
				ID:           "tra",
				CategoryName: "Trà",
				Items: []MenuItem{
					{ID: "item_1", Name: "Trà đá", Price: "5000"},
				},
			},
		},
	}
}

func TestRenameCategory(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, RenameCategory(doc, "ca-phe", "Cà phê máy"))
	assert.Equal(t, "Cà phê máy", doc.Categories[0].CategoryName)
	assert.Equal(t, "ca-phe", doc.Categories[0].ID, "rename must not touch the id")

	assert.ErrorIs(t, RenameCategory(doc, "nope", "x"), ErrCategoryNotFound)
}

func TestRenameCategory_DuplicateNamesAllowedPostReconcile(t *testing.T) {
	doc := twoItemDoc()
	require.NoError(t, RenameCategory(doc, "tra", "Cà phê"))

	// No re-merge happens at edit time.
	assert.Len(t, doc.Categories, 2)
}

func TestUpdateItemField(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, UpdateItemField(doc, "ca-phe", "item_1", FieldPrice, "22000"))
	assert.Equal(t, "22000", doc.Categories[0].Items[0].Price)

	require.NoError(t, UpdateItemField(doc, "ca-phe", "item_1", FieldDescription, "đậm đà"))
	assert.Equal(t, "đậm đà", doc.Categories[0].Items[0].Description)

	assert.ErrorIs(t, UpdateItemField(doc, "ca-phe", "item_9", FieldName, "x"), ErrItemNotFound)
	assert.ErrorIs(t, UpdateItemField(doc, "nope", "item_1", FieldName, "x"), ErrCategoryNotFound)
}

func TestParseItemField(t *testing.T) {
	for _, ok := range []string{"name", "price", "description"} {
		f, err := ParseItemField(ok)
		require.NoError(t, err)
		assert.Equal(t, ItemField(ok), f)
	}

	_, err := ParseItemField("id")
	assert.Error(t, err, "ids are not editable")
}

func TestAddItem_UsesGeneratorNotPosition(t *testing.T) {
	doc := twoItemDoc()
	gen := &seqIDGenerator{}

	added, err := AddItem(doc, gen, "tra")
	require.NoError(t, err)
	assert.Equal(t, "item_test_1", added.ID)
	assert.Equal(t, "Món mới", added.Name)
	assert.Len(t, doc.Categories[1].Items, 2)

	_, err = AddItem(doc, gen, "nope")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteItem_KeepsSiblingIDs(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, DeleteItem(doc, "ca-phe", "item_1"))

	require.Len(t, doc.Categories[0].Items, 1)
	// No renumbering outside a reconciliation pass.
	assert.Equal(t, "item_2", doc.Categories[0].Items[0].ID)
}

func TestDeleteItem_CascadesEmptyCategory(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, DeleteItem(doc, "tra", "item_1"))

	require.Len(t, doc.Categories, 1)
	assert.Nil(t, doc.FindCategory("tra"))
}

func TestDeleteItem_Missing(t *testing.T) {
	doc := twoItemDoc()
	assert.ErrorIs(t, DeleteItem(doc, "tra", "item_9"), ErrItemNotFound)
	assert.ErrorIs(t, DeleteItem(doc, "nope", "item_1"), ErrCategoryNotFound)
}

func TestAddCategory(t *testing.T) {
	doc := twoItemDoc()
	gen := &seqIDGenerator{}

	added := AddCategory(doc, gen)
	assert.Equal(t, "cat_test_1", added.ID)
	assert.Equal(t, "Nhóm món mới", added.CategoryName)
	require.Len(t, added.Items, 1)
	assert.Equal(t, "item_test_1", added.Items[0].ID)
	assert.Len(t, doc.Categories, 3)
}

func TestDeleteCategory(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, DeleteCategory(doc, "ca-phe"))
	assert.Len(t, doc.Categories, 1)
	assert.Nil(t, doc.FindCategory("ca-phe"))

	assert.ErrorIs(t, DeleteCategory(doc, "ca-phe"), ErrCategoryNotFound)
}

func TestMoveItem(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, MoveItem(doc, "ca-phe", "item_2", MoveUp))
	assert.Equal(t, "Sữa", doc.Categories[0].Items[0].Name)
	assert.Equal(t, "Đen", doc.Categories[0].Items[1].Name)

	require.NoError(t, MoveItem(doc, "ca-phe", "item_2", MoveDown))
	assert.Equal(t, "Đen", doc.Categories[0].Items[0].Name)
	assert.Equal(t, "Sữa", doc.Categories[0].Items[1].Name)
}

func TestMoveItem_NoOpAtBoundaries(t *testing.T) {
	doc := twoItemDoc()

	require.NoError(t, MoveItem(doc, "ca-phe", "item_1", MoveUp))
	assert.Equal(t, "Đen", doc.Categories[0].Items[0].Name)

	require.NoError(t, MoveItem(doc, "ca-phe", "item_2", MoveDown))
	assert.Equal(t, "Sữa", doc.Categories[0].Items[1].Name)
}

func TestClockIDGenerator(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	gen := &ClockIDGenerator{now: func() time.Time { return fixed }}

	assert.Equal(t, "cat_1700000000000", gen.NextCategoryID())
	assert.Equal(t, "item_1700000000000", gen.NextItemID())
}
