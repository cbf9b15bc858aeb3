package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "crossing.yaml")
	writeFile(t, path, "player:\n  lives: 4\n")

	initial, _, err := Load(path)
	require.NoError(t, err)
	ApplyPreset(&initial, DifficultyHard)

	errs := make(chan error, 8)
	w, err := NewWatcher(path, initial, DifficultyHard, func(_ CrossingConfig, err error) {
		if err != nil {
			errs <- err
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer func() { assert.NoError(t, w.Stop()) }()

	assert.Equal(t, 2, w.Current().Player.Lives, "hard preset applied by the caller")

	writeFile(t, path, "player:\n  sprite: images/char-princess-girl.png\n")

	require.Eventually(t, func() bool {
		return w.Current().Player.Sprite == "images/char-princess-girl.png"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, 2, w.Current().Player.Lives, "preset applied to reloads")
	assert.Equal(t, 60.0, w.Current().Enemies[1].Speed)

	writeFile(t, path, "enemies: []\n")

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInvalidConfig)
	case <-time.After(3 * time.Second):
		t.Fatal("invalid config was not reported")
	}
	assert.Equal(t, "images/char-princess-girl.png", w.Current().Player.Sprite, "last good config kept")
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "crossing.yaml"), DefaultCrossingConfig(), DifficultyNormal, nil)
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
}

func TestWatcherMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "crossing.yaml"), DefaultCrossingConfig(), DifficultyNormal, nil)
	require.NoError(t, err)

	assert.Error(t, w.Start(context.Background()))
	assert.NoError(t, w.Stop())
}
