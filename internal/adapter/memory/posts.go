package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// PostRepository returns the store as a port.PostRepository.
func (s *Store) PostRepository() port.PostRepository { return (*postRepo)(s) }

type postRepo Store

func (r *postRepo) store() *Store { return (*Store)(r) }

func (r *postRepo) CreatePost(_ context.Context, post *domain.Post) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreatePost"); err != nil {
		return err
	}
	if post.ID == "" {
		post.ID = newID()
	}
	stamp(&post.CreatedAt, &post.UpdatedAt)
	s.posts[post.ID] = clonePost(*post)
	return nil
}

func (r *postRepo) GetPost(_ context.Context, id string) (*domain.Post, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetPost"); err != nil {
		return nil, err
	}
	post, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: post %s", domain.ErrNotFound, id)
	}
	post = clonePost(post)
	return &post, nil
}

func (r *postRepo) ClaimPost(_ context.Context, post *domain.Post) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ClaimPost"); err != nil {
		return err
	}
	stored, ok := s.posts[post.ID]
	if !ok {
		return fmt.Errorf("%w: post %s", domain.ErrNotFound, post.ID)
	}
	if stored.IsClaimed {
		return fmt.Errorf("%w: post already marked as claimed", domain.ErrInvalidState)
	}
	stored.IsClaimed = true
	stored.ClaimedAt = cloneTime(post.ClaimedAt)
	stored.UpdatedAt = post.UpdatedAt
	s.posts[post.ID] = stored
	return nil
}

func (r *postRepo) DeletePost(_ context.Context, id string) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("DeletePost"); err != nil {
		return err
	}
	if _, ok := s.posts[id]; !ok {
		return fmt.Errorf("%w: post %s", domain.ErrNotFound, id)
	}
	delete(s.posts, id)
	maps.DeleteFunc(s.likes, func(k likeKey, _ time.Time) bool { return k.postID == id })
	return nil
}

func (r *postRepo) FindArchivablePosts(_ context.Context, now time.Time) ([]domain.Post, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("FindArchivablePosts"); err != nil {
		return nil, err
	}
	var out []domain.Post
	for _, post := range s.posts {
		if post.Archivable(now) {
			out = append(out, clonePost(post))
		}
	}
	return out, nil
}

func (r *postRepo) ArchivePosts(_ context.Context, posts []domain.Post) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ArchivePosts"); err != nil {
		return err
	}
	for _, post := range posts {
		s.archivedPosts = append(s.archivedPosts, clonePost(post))
	}
	return nil
}

func (r *postRepo) DeletePosts(_ context.Context, ids []string) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("DeletePosts"); err != nil {
		return err
	}
	for _, id := range ids {
		delete(s.posts, id)
	}
	return nil
}

func (r *postRepo) ListOpenPosts(_ context.Context, q port.PostQuery) ([]domain.Post, int64, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Post
	for _, post := range s.posts {
		if post.IsClaimed || !post.ExpiryTime.After(q.Now) {
			continue
		}
		if q.City != "" && post.Location.City != q.City {
			continue
		}
		if q.State != "" && post.Location.State != q.State {
			continue
		}
		matched = append(matched, clonePost(post))
	}
	slices.SortFunc(matched, func(a, b domain.Post) int {
		if c := a.ExpiryTime.Compare(b.ExpiryTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return page(matched, q.Limit, q.Offset), int64(len(matched)), nil
}

func (r *postRepo) ListUserPosts(_ context.Context, userID string, limit, offset int) ([]domain.Post, int64, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Post
	for _, post := range s.posts {
		if post.PostedBy == userID {
			matched = append(matched, clonePost(post))
		}
	}
	for _, post := range s.archivedPosts {
		if post.PostedBy == userID {
			matched = append(matched, clonePost(post))
		}
	}
	slices.SortFunc(matched, func(a, b domain.Post) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return page(matched, limit, offset), int64(len(matched)), nil
}

type likeKey struct {
	postID string
	userID string
}

func (r *postRepo) ToggleLike(_ context.Context, postID, userID string) (bool, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ToggleLike"); err != nil {
		return false, err
	}
	post, ok := s.posts[postID]
	if !ok {
		return false, fmt.Errorf("%w: post %s", domain.ErrNotFound, postID)
	}
	key := likeKey{postID: postID, userID: userID}
	_, liked := s.likes[key]
	if liked {
		delete(s.likes, key)
		post.LikeCount--
	} else {
		s.likes[key] = time.Now().UTC()
		post.LikeCount++
	}
	s.posts[postID] = post
	return !liked, nil
}

func (r *postRepo) LikedPostIDs(_ context.Context, userID string, postIDs []string) (map[string]bool, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("LikedPostIDs"); err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	for _, id := range postIDs {
		if _, ok := s.likes[likeKey{postID: id, userID: userID}]; ok {
			out[id] = true
		}
	}
	return out, nil
}

// LivePosts returns a copy of the live post collection.
func (s *Store) LivePosts() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, 0, len(s.posts))
	for _, post := range s.posts {
		out = append(out, clonePost(post))
	}
	return out
}

// ArchivedPosts returns a copy of the post archive.
func (s *Store) ArchivedPosts() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, 0, len(s.archivedPosts))
	for _, post := range s.archivedPosts {
		out = append(out, clonePost(post))
	}
	return out
}
