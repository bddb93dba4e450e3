package model

import "time"

// BlogModel is the Firestore-specific struct for an admin blog document.
type BlogModel struct {
	Title       string          `firestore:"title"`
	Excerpt     string          `firestore:"excerpt"`
	MainImage   string          `firestore:"main_image"`
	Tags        []string        `firestore:"tags"`
	Author      BlogAuthorModel `firestore:"author"`
	CreatedAt   time.Time       `firestore:"created_at"`
	PublishedAt string          `firestore:"published_at"`
}

// BlogAuthorModel is the nested author map of a blog document.
type BlogAuthorModel struct {
	Name string `firestore:"name"`
}

// BlogSectionModel is one document of a blog's sections subcollection.
type BlogSectionModel struct {
	Title   string `firestore:"title"`
	Content string `firestore:"content"`
	Image   string `firestore:"image"`
	Order   int    `firestore:"order"`
}
