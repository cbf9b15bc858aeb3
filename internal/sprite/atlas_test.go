package sprite

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestDefaultAtlasHasEverySprite(t *testing.T) {
	a := DefaultAtlas()

	ids := []string{EnemyBug, WaterBlock, StoneBlock, GrassBlock}
	for _, av := range Avatars() {
		ids = append(ids, av.Sprite)
	}

	for _, id := range ids {
		s, err := a.Get(id)
		require.NoError(t, err, id)
		assert.Positive(t, s.Height(), id)
		assert.Positive(t, s.Width(), id)
	}
}

func TestTilesCoverOneTile(t *testing.T) {
	a := DefaultAtlas()
	for _, id := range []string{WaterBlock, StoneBlock, GrassBlock} {
		s, err := a.Get(id)
		require.NoError(t, err)
		assert.Equal(t, TileCols, s.Width(), id)
		assert.Equal(t, TileRows, s.Height(), id)
	}
}

func TestGetUnknownSprite(t *testing.T) {
	_, err := DefaultAtlas().Get("images/char-ghost.png")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSprite)
	assert.Contains(t, err.Error(), "char-ghost")
}

func TestRegisterReplaces(t *testing.T) {
	a := NewAtlas()
	a.Register("x", Sprite{Rows: []string{"a"}, Color: core.ColorRed})
	a.Register("x", Sprite{Rows: []string{"bb"}, Color: core.ColorBlue})

	s, err := a.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, core.ColorBlue, s.Color)
}

func TestWidthCountsRunes(t *testing.T) {
	s := Sprite{Rows: []string{"≈≈≈", "▒"}}
	assert.Equal(t, 3, s.Width())
}

func TestAtlasConcurrentAccess(t *testing.T) {
	a := DefaultAtlas()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = a.Get(EnemyBug)
				a.Register("extra", Sprite{Rows: []string{"?"}})
			}
		}()
	}
	wg.Wait()

	_, err := a.Get("extra")
	assert.NoError(t, err)
}
