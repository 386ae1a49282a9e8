package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlog_Excerpt(t *testing.T) {
	t.Run("prefers summary when present", func(t *testing.T) {
		blog := &Blog{Summary: "a short summary", Content: strings.Repeat("x", 500)}
		assert.Equal(t, "a short summary", blog.Excerpt())
	})

	t.Run("short content returned as-is", func(t *testing.T) {
		blog := &Blog{Content: "short content"}
		assert.Equal(t, "short content", blog.Excerpt())
		assert.True(t, strings.HasPrefix(blog.Content, blog.Excerpt()))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		blog := &Blog{Content: strings.Repeat("a", 200)}
		excerpt := blog.Excerpt()
		assert.Equal(t, strings.Repeat("a", 150)+"...", excerpt)
	})

	t.Run("truncation is rune-safe", func(t *testing.T) {
		blog := &Blog{Content: strings.Repeat("日", 200)}
		excerpt := blog.Excerpt()
		assert.Equal(t, strings.Repeat("日", 150)+"...", excerpt)
	})
}
