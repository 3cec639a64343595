package fehwiki_test

import (
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Set(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		r := fehwiki.NewRecord("Marth")
		r.Set("Rarities", "5★", true)
		r.Set("BST", "150", true)
		r.Set("Weapon Type", "Red Sword", true)

		assert.Equal(t, []string{"Rarities", "BST", "Weapon Type"}, r.Keys())
		assert.Equal(t, 3, r.Len())
	})

	t.Run("replacing a key keeps its position", func(t *testing.T) {
		t.Parallel()

		r := fehwiki.NewRecord("Marth")
		r.Set("A", "1", true)
		r.Set("B", "2", true)
		r.Set("A", "3", false)

		assert.Equal(t, []string{"A", "B"}, r.Keys())
		f, ok := r.Get("A")
		require.True(t, ok)
		assert.Equal(t, fehwiki.Field{Key: "A", Value: "3", Inline: false}, f)
	})

	t.Run("missing keys report absence", func(t *testing.T) {
		t.Parallel()

		r := fehwiki.NewRecord("Marth")

		_, ok := r.Get("Nope")
		assert.False(t, ok)
		assert.Empty(t, r.Value("Nope"))
	})
}

func TestAssembly_Record(t *testing.T) {
	t.Parallel()

	var nilAssembly *fehwiki.Assembly
	assert.Nil(t, nilAssembly.Record())
	assert.Nil(t, (&fehwiki.Assembly{}).Record())

	r := fehwiki.NewRecord("Fury 1")
	a := &fehwiki.Assembly{Records: []*fehwiki.Record{r, fehwiki.NewRecord("Fury 2")}}
	assert.Same(t, r, a.Record())
}
