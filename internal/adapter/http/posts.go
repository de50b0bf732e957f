package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodshare/internal/core/port"
)

func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req port.CreatePostReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	post, err := h.svc.Posts.CreatePost(r.Context(), actorFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusCreated, "post created", post)
}

// handleListPosts pages open donations, filtered by ?city= and ?state=.
func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	resp, err := h.svc.Posts.ListPosts(r.Context(), port.PostListReq{
		ViewerID: actorFrom(r.Context()).ID,
		City:     q.Get("city"),
		State:    q.Get("state"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", resp)
}

func (h *Handler) handleMyPosts(w http.ResponseWriter, r *http.Request) {
	h.userPosts(w, r, actorFrom(r.Context()).ID)
}

func (h *Handler) handleUserPosts(w http.ResponseWriter, r *http.Request) {
	h.userPosts(w, r, chi.URLParam(r, "userID"))
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request, userID string) {
	page, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.svc.Posts.UserPosts(r.Context(), port.UserPostsReq{
		ViewerID: actorFrom(r.Context()).ID,
		UserID:   userID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", resp)
}

func (h *Handler) handleMarkClaimed(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Posts.MarkClaimed(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "post marked as claimed", res)
}

// handleToggleLike likes the post, or removes the like when one exists.
func (h *Handler) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Posts.ToggleLike(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	msg := "post unliked"
	if view.LikedByUser {
		msg = "post liked"
	}
	h.ok(w, http.StatusOK, msg, view)
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Posts.DeletePost(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "postID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "post deleted", nil)
}
