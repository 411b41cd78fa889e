package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devconnect/devconnect-go/internal/middleware"
	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/service"
)

// PostHandler handles HTTP requests for feed posts.
type PostHandler struct {
	service *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

// HandleCreatePost handles POST /api/posts requests.
func (h *PostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	var req model.CreatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleListPosts handles GET /api/posts requests.
func (h *PostHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// HandleGetPost handles GET /api/posts/{post_id} requests.
func (h *PostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.service.Get(r.Context(), postID)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleDeletePost handles DELETE /api/posts/{post_id} requests. Owner only.
func (h *PostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, postID); err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Post removed"})
}

// HandleLikePost handles PUT /api/posts/like/{post_id} requests.
func (h *PostHandler) HandleLikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.service.Like(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post.Likes)
}

// HandleUnlikePost handles PUT /api/posts/unlike/{post_id} requests.
func (h *PostHandler) HandleUnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.service.Unlike(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post.Likes)
}

// HandleAddComment handles POST /api/posts/comment/{post_id} requests.
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	var req model.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.Comment(r.Context(), userID, postID, req)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post.Comments)
}

// HandleDeleteComment handles DELETE /api/posts/comment/{post_id}/{comment_id}
// requests. Comment author only.
func (h *PostHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrCommentNotFound.Error()))
		return
	}

	post, err := h.service.RemoveComment(r.Context(), userID, postID, commentID)
	if err != nil {
		h.writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post.Comments)
}

// postIDParam parses the post_id path parameter. A malformed id is reported
// as a missing post rather than echoing parse detail.
func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil || postID <= 0 {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrPostNotFound.Error()))
		return 0, false
	}
	return postID, true
}

func (h *PostHandler) writePostError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrCommentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotOwner):
		writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrAlreadyLiked), errors.Is(err, service.ErrNotYetLiked):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeServerError(w, err)
	}
}
