package blogservice

// Pure aggregation helpers over an in-memory slice of blogs. They never touch
// persistence and never fail; empty input yields the zero result.

func TotalLikes(blogs []Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// slice. Ties keep the first blog seen.
func FavoriteBlog(blogs []Blog) *Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := range blogs[1:] {
		if blogs[i+1].Likes > favorite.Likes {
			favorite = &blogs[i+1]
		}
	}

	return favorite
}

// MostBlogs returns the author with the highest number of blogs, or nil for
// an empty slice. Ties keep the author that appears first in the slice.
func MostBlogs(blogs []Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, blog := range blogs {
		if _, seen := counts[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		counts[blog.Author]++
	}

	best := &AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > best.Blogs {
			best = &AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}

	return best
}

// MostLikes returns the author with the highest summed likes, or nil for an
// empty slice. Ties keep the author that appears first in the slice.
func MostLikes(blogs []Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int)
	var order []string
	for _, blog := range blogs {
		if _, seen := likes[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		likes[blog.Author] += blog.Likes
	}

	best := &AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, author := range order[1:] {
		if likes[author] > best.Likes {
			best = &AuthorLikes{Author: author, Likes: likes[author]}
		}
	}

	return best
}
