package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	s := makeSlug("My First Post")

	assert.True(t, strings.HasPrefix(s, "my-first-post-"))

	suffix := strings.TrimPrefix(s, "my-first-post-")
	assert.NotEmpty(t, suffix)
	assert.LessOrEqual(t, len(suffix), 6)

	// Suffixes are random, so two slugs from the same title differ
	assert.NotEqual(t, s, makeSlug("My First Post"))
}

func TestTagListRoundTrip(t *testing.T) {
	assert.Equal(t, "go,web", joinTags([]string{"go", "web"}))
	assert.Equal(t, []string{"go", "web"}, splitTags("go,web"))
	assert.Equal(t, []string{}, splitTags(""))
}
