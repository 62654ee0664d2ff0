package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/blog-platform/internal/models"
)

// InMemoryPostRepository is an in-memory implementation of PostRepository.
type InMemoryPostRepository struct {
	mu     sync.Mutex
	posts  []models.Post
	nextID int
}

// NewInMemoryPostRepository creates a new instance of InMemoryPostRepository.
func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{
		posts:  []models.Post{},
		nextID: 1,
	}
}

func (r *InMemoryPostRepository) Create(_ context.Context, p models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *InMemoryPostRepository) GetAll(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]models.Post, len(r.posts))
	copy(posts, r.posts)
	return posts, nil
}

func (r *InMemoryPostRepository) GetByID(_ context.Context, id int) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrPostNotFound
}

func (r *InMemoryPostRepository) Update(_ context.Context, id, authorID int, title, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id && p.AuthorID == authorID {
			r.posts[i].Title = title
			r.posts[i].Content = content
			return nil
		}
	}
	return ErrPostNotFound
}

func (r *InMemoryPostRepository) Delete(_ context.Context, id, authorID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id && p.AuthorID == authorID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrPostNotFound
}

func (r *InMemoryPostRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = []models.Post{}
	r.nextID = 1
}
