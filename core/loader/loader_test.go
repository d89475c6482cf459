package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &fakeFeature{name: "on", enabled: true}
		off := &fakeFeature{name: "off"}
		m := NewManager(nil)
		m.Register(on)
		m.Register(off)

		assert.NoError(t, m.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, m.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		bad := &fakeFeature{name: "bad", enabled: true, err: errors.New("boom")}
		after := &fakeFeature{name: "after", enabled: true}
		m := NewManager(nil)
		m.Register(bad)
		m.Register(after)

		err := m.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "bad")
		assert.False(t, after.loaded)
	})
}
