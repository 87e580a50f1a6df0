package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
)

func newApp(t *testing.T, texts ...string) *App {
	t.Helper()
	a := New(store.New(), false, logging.Discard())
	for _, text := range texts {
		require.True(t, a.AddItem(text))
	}
	return a
}

func texts(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestVisibleFollowsSearch(t *testing.T) {
	a := newApp(t, "buy milk", "walk dog")

	assert.Equal(t, []string{"buy milk", "walk dog"}, texts(a.Visible()))
	a.SetSearch("dog")
	assert.Equal(t, []string{"walk dog"}, texts(a.Visible()))
	a.SetSearch("")
	assert.Len(t, a.Visible(), 2)
}

func TestActionsUseVisibleRows(t *testing.T) {
	a := newApp(t, "buy milk", "walk dog", "feed dog")
	a.SetSearch("dog")

	// row 1 of the filtered view is "feed dog", position 2 in the store
	require.True(t, a.ToggleVisible(1))
	items := a.Store.Items()
	assert.False(t, items[1].Done)
	assert.True(t, items[2].Done)

	require.True(t, a.RemoveVisible(0))
	assert.Equal(t, []string{"buy milk", "feed dog"}, texts(a.Store.Items()))
}

func TestInvalidInputIsNoop(t *testing.T) {
	a := newApp(t, "buy milk")
	a.SetSearch("zzz")

	assert.False(t, a.AddItem("   "))
	assert.False(t, a.ToggleVisible(0))
	assert.False(t, a.RemoveVisible(0))
	assert.False(t, a.RemoveVisible(-1))
	assert.Equal(t, 1, a.Store.Len())
	assert.False(t, a.Store.Items()[0].Done)
}

func TestToggleTheme(t *testing.T) {
	a := newApp(t, "x")
	before := a.Store.Items()

	a.ToggleTheme()
	assert.True(t, a.Dark)
	a.ToggleTheme()
	assert.False(t, a.Dark)
	assert.Equal(t, before, a.Store.Items())
}

func TestSeed(t *testing.T) {
	a := newApp(t)
	n := a.Seed([]jsonstore.Seed{
		{Text: "buy milk"},
		{Text: "  "},
		{Text: "walk dog", Done: true},
	})

	assert.Equal(t, 2, n)
	items := a.Store.Items()
	require.Len(t, items, 2)
	assert.False(t, items[0].Done)
	assert.True(t, items[1].Done)
}
