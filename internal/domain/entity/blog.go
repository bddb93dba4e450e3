package entity

import "time"

// Blog is an admin-authored article with ordered content sections.
type Blog struct {
	Slug      string
	Title     string
	Excerpt   string
	MainImage string
	Tags      []string
	Author    BlogAuthor
	CreatedAt time.Time
	// PublishedAt is an ISO date string authored alongside the article;
	// lexical order matches chronological order.
	PublishedAt string
	Sections    []BlogSection
}

// BlogAuthor identifies the article's author.
type BlogAuthor struct {
	Name string `json:"name"`
}

// BlogSection is one ordered content block of a blog article.
type BlogSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Order   int    `json:"order"`
}
