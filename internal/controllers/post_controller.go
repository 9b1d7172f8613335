package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type PostController struct {
	postService *services.PostService
	validate    *validator.Validate
}

func NewPostController(ps *services.PostService) *PostController {
	return &PostController{postService: ps, validate: newValidator()}
}

// GET /api/posts
func (c *PostController) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := c.postService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// POST /api/posts
func (c *PostController) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := c.postService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// GET /api/posts/{id}
func (c *PostController) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	post, err := c.postService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

// PUT /api/posts/{id}
func (c *PostController) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePostRequest
	if !decodeJSON(w, r, &req) || !validateBody(w, c.validate, req) {
		return
	}
	post, err := c.postService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

// DELETE /api/posts/{id}
func (c *PostController) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	if err := c.postService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
