package registry

import (
	"testing"

	"github.com/nfrund/courseboard/internal/view/layouts"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := New(nil)

	_, ok := Get(r, SiteConfigKey)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(r, SiteConfigKey) })

	Set(r, SiteConfigKey, layouts.SiteConfig{Title: "Courseboard"})
	got := MustGet(r, SiteConfigKey)
	assert.Equal(t, "Courseboard", got.Title)

	var other Key[int] = "site.config"
	_, ok = Get(r, other)
	assert.False(t, ok, "a key of the wrong type must not match")
}
