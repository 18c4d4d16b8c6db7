package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func listWithOneBlog() []Blog {
	return []Blog{
		{Title: "Go Concurrency Patterns", Author: "Edsger W. Dijkstra", URL: "https://example.com/patterns", Likes: 5},
	}
}

func listWithManyBlogs() []Blog {
	return []Blog{
		{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "https://example.com/goto", Likes: 5},
		{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "https://example.com/canonical", Likes: 12},
		{Title: "First class tests", Author: "Robert C. Martin", URL: "https://example.com/tests", Likes: 10},
		{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "https://example.com/tdd", Likes: 0},
		{Title: "Type wars", Author: "Robert C. Martin", URL: "https://example.com/typewars", Likes: 2},
	}
}

func TestTotalLikes(t *testing.T) {
	testCases := []struct {
		name     string
		blogs    []Blog
		expected int
	}{
		{
			name:     "empty list",
			blogs:    []Blog{},
			expected: 0,
		},
		{
			name:     "one blog",
			blogs:    listWithOneBlog(),
			expected: 5,
		},
		{
			name:     "many blogs",
			blogs:    listWithManyBlogs(),
			expected: 36,
		},
		{
			name: "two seeded blogs",
			blogs: []Blog{
				{Title: "HTML is easy", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
				{Title: "Browser can execute only Javascript", Author: "Edsger W. Dijkstra", URL: "https://www.google.com/", Likes: 5},
			},
			expected: 12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalLikes(tc.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, FavoriteBlog([]Blog{}))
	})

	t.Run("one blog", func(t *testing.T) {
		blogs := listWithOneBlog()
		favorite := FavoriteBlog(blogs)
		assert.NotNil(t, favorite)
		assert.Equal(t, "Go Concurrency Patterns", favorite.Title)
	})

	t.Run("many blogs", func(t *testing.T) {
		blogs := listWithManyBlogs()
		favorite := FavoriteBlog(blogs)
		assert.NotNil(t, favorite)
		assert.Equal(t, "Canonical string reduction", favorite.Title)
		assert.Equal(t, 12, favorite.Likes)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, MostBlogs([]Blog{}))
	})

	t.Run("one blog", func(t *testing.T) {
		most := MostBlogs(listWithOneBlog())
		assert.NotNil(t, most)
		assert.Equal(t, "Edsger W. Dijkstra", most.Author)
		assert.Equal(t, 1, most.Blogs)
	})

	t.Run("many blogs", func(t *testing.T) {
		most := MostBlogs(listWithManyBlogs())
		assert.NotNil(t, most)
		assert.Equal(t, "Robert C. Martin", most.Author)
		assert.Equal(t, 3, most.Blogs)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, MostLikes([]Blog{}))
	})

	t.Run("one blog", func(t *testing.T) {
		most := MostLikes(listWithOneBlog())
		assert.NotNil(t, most)
		assert.Equal(t, "Edsger W. Dijkstra", most.Author)
		assert.Equal(t, 5, most.Likes)
	})

	t.Run("many blogs", func(t *testing.T) {
		most := MostLikes(listWithManyBlogs())
		assert.NotNil(t, most)
		assert.Equal(t, "Edsger W. Dijkstra", most.Author)
		assert.Equal(t, 17, most.Likes)
	})
}
