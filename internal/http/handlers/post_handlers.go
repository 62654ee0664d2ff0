package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/blog-platform/internal/auth"
	"github.com/rogerio-castellano/blog-platform/internal/models"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

// CreatePostHandler godoc
// @Summary Create a new post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body PostRequest true "title and content"
// @Success 201 {object} PostResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Missing token"
// @Failure 403 {string} string "Invalid token"
// @Failure 500 {string} string "Server error"
// @Router /posts [post]
func (s *Server) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var req PostRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := s.posts.Create(r.Context(), models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: identity.UserID,
	})
	if err != nil {
		s.log.WithError(err).Error("failed to create post")
		http.Error(w, "could not create post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{
		ID:       created.ID,
		Title:    created.Title,
		Content:  created.Content,
		AuthorID: created.AuthorID,
	})
}

// GetPostsHandler godoc
// @Summary List all posts
// @Tags posts
// @Produce json
// @Success 200 {array} PostResponse
// @Failure 500 {string} string "Server error"
// @Router /posts [get]
func (s *Server) GetPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.GetAll(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to fetch posts")
		http.Error(w, "could not fetch posts", http.StatusInternalServerError)
		return
	}

	response := make([]PostResponse, len(posts))
	for i, p := range posts {
		response[i] = PostResponse{
			ID:       p.ID,
			Title:    p.Title,
			Content:  p.Content,
			AuthorID: p.AuthorID,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// GetPostByIDHandler godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} MessageResponse "Not found"
// @Failure 500 {string} string "Server error"
// @Router /posts/{id} [get]
func (s *Server) GetPostByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.Error(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := s.posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrPostNotFound) {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Post not found"})
			return
		}
		s.log.WithError(err).Error("failed to fetch post")
		http.Error(w, "could not fetch post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, PostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		AuthorID: post.AuthorID,
	})
}

// UpdatePostHandler godoc
// @Summary Update a post owned by the caller
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param post body PostRequest true "title and content"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Missing token"
// @Failure 403 {string} string "Invalid token"
// @Failure 404 {object} MessageResponse "Not found or not authorized"
// @Failure 500 {string} string "Server error"
// @Router /posts/{id} [put]
func (s *Server) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := postID(r)
	if err != nil {
		http.Error(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	var req PostRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := s.posts.Update(r.Context(), id, identity.UserID, req.Title, req.Content); err != nil {
		if errors.Is(err, repo.ErrPostNotFound) {
			// A foreign post and a missing post answer identically.
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Post not found or not authorized"})
			return
		}
		s.log.WithError(err).Error("failed to update post")
		http.Error(w, "could not update post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Post updated successfully"})
}

// DeletePostHandler godoc
// @Summary Delete a post owned by the caller
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Missing token"
// @Failure 403 {string} string "Invalid token"
// @Failure 404 {object} MessageResponse "Not found or not authorized"
// @Failure 500 {string} string "Server error"
// @Router /posts/{id} [delete]
func (s *Server) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id, err := postID(r)
	if err != nil {
		http.Error(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	if err := s.posts.Delete(r.Context(), id, identity.UserID); err != nil {
		if errors.Is(err, repo.ErrPostNotFound) {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Post not found or not authorized"})
			return
		}
		s.log.WithError(err).Error("failed to delete post")
		http.Error(w, "could not delete post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}

func postID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
