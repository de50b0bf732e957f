package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

const postColumns = `id, title, description, servings, expiry_time, street, city, state,
    media_key, posted_by, is_claimed, claimed_at, like_count, created_at, updated_at`

var postColumnNames = []string{
	"id", "title", "description", "servings", "expiry_time", "street", "city", "state",
	"media_key", "posted_by", "is_claimed", "claimed_at", "like_count", "created_at", "updated_at",
}

// PostRepository implements port.PostRepository on the posts and
// archived_posts tables.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	_, err := db(ctx, r.pool).Exec(ctx, `INSERT INTO posts (`+postColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`, postValues(post)...)
	if err != nil {
		return storeErr("insert post", err)
	}
	return nil
}

func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get post", err)
	}
	post, err := pgx.CollectExactlyOneRow(rows, scanPost)
	if err != nil {
		return nil, storeErr("post "+id, err)
	}
	return &post, nil
}

// ClaimPost flips is_claimed only while it is still false, so concurrent
// claims cannot both succeed.
func (r *PostRepository) ClaimPost(ctx context.Context, post *domain.Post) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `UPDATE posts
SET is_claimed = true, claimed_at = $2, updated_at = $3
WHERE id = $1 AND is_claimed = false`, post.ID, post.ClaimedAt, post.UpdatedAt)
	if err != nil {
		return storeErr("claim post", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post already marked as claimed", domain.ErrInvalidState)
	}
	return nil
}

// DeletePost removes a live post together with its likes.
func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	conn := db(ctx, r.pool)
	tag, err := conn.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post %s", domain.ErrNotFound, id)
	}
	if _, err = conn.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
		return storeErr("delete post likes", err)
	}
	return nil
}

// ToggleLike locks the post row, then removes the user's like or inserts
// one and moves like_count by the same step.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	conn := db(ctx, r.pool)
	var locked string
	err := conn.QueryRow(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&locked)
	if err != nil {
		return false, storeErr("post "+postID, err)
	}
	tag, err := conn.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, storeErr("unlike post", err)
	}
	liked, delta := false, -1
	if tag.RowsAffected() == 0 {
		tag, err = conn.Exec(ctx, `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, postID, userID)
		if err != nil {
			return false, storeErr("like post", err)
		}
		liked, delta = true, int(tag.RowsAffected())
	}
	if delta == 0 {
		return liked, nil
	}
	if _, err = conn.Exec(ctx, `UPDATE posts SET like_count = like_count + $2 WHERE id = $1`, postID, delta); err != nil {
		return false, storeErr("update like count", err)
	}
	return liked, nil
}

// LikedPostIDs returns which of postIDs the user has liked.
func (r *PostRepository) LikedPostIDs(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT post_id FROM post_likes
WHERE user_id = $1 AND post_id = ANY($2)`, userID, postIDs)
	if err != nil {
		return nil, storeErr("liked posts", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, storeErr("scan liked posts", err)
	}
	liked := make(map[string]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// FindArchivablePosts locks claimed and expired posts for the sweep.
func (r *PostRepository) FindArchivablePosts(ctx context.Context, now time.Time) ([]domain.Post, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+postColumns+` FROM posts
WHERE is_claimed OR expiry_time < $1
FOR UPDATE`, now)
	if err != nil {
		return nil, storeErr("find archivable posts", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, storeErr("scan archivable posts", err)
	}
	return posts, nil
}

func (r *PostRepository) ArchivePosts(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}
	_, err := db(ctx, r.pool).CopyFrom(ctx, pgx.Identifier{"archived_posts"}, postColumnNames,
		pgx.CopyFromSlice(len(posts), func(i int) ([]any, error) {
			return postValues(&posts[i]), nil
		}))
	if err != nil {
		return storeErr("archive posts", err)
	}
	return nil
}

func (r *PostRepository) DeletePosts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM posts WHERE id = ANY($1)`, ids); err != nil {
		return storeErr("delete posts", err)
	}
	return nil
}

// ListOpenPosts pages unclaimed, unexpired posts soonest expiry first.
func (r *PostRepository) ListOpenPosts(ctx context.Context, q port.PostQuery) ([]domain.Post, int64, error) {
	const where = `WHERE NOT is_claimed AND expiry_time > $1
  AND ($2 = '' OR city = $2) AND ($3 = '' OR state = $3)`
	conn := db(ctx, r.pool)

	var total int64
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM posts `+where, q.Now, q.City, q.State).Scan(&total); err != nil {
		return nil, 0, storeErr("count posts", err)
	}
	rows, err := conn.Query(ctx, `SELECT `+postColumns+` FROM posts `+where+`
ORDER BY expiry_time, id LIMIT $4 OFFSET $5`, q.Now, q.City, q.State, limitOrAll(q.Limit), q.Offset)
	if err != nil {
		return nil, 0, storeErr("list posts", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, 0, storeErr("scan posts", err)
	}
	return posts, total, nil
}

// ListUserPosts pages a user's live and archived posts, newest first.
func (r *PostRepository) ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int64, error) {
	const union = `(SELECT ` + postColumns + ` FROM posts WHERE posted_by = $1
  UNION ALL
  SELECT ` + postColumns + ` FROM archived_posts WHERE posted_by = $1) p`
	conn := db(ctx, r.pool)

	var total int64
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM `+union, userID).Scan(&total); err != nil {
		return nil, 0, storeErr("count user posts", err)
	}
	rows, err := conn.Query(ctx, `SELECT `+postColumns+` FROM `+union+`
ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, userID, limitOrAll(limit), offset)
	if err != nil {
		return nil, 0, storeErr("list user posts", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, 0, storeErr("scan user posts", err)
	}
	return posts, total, nil
}

func postValues(p *domain.Post) []any {
	return []any{
		p.ID, p.Title, p.Description, p.Servings, p.ExpiryTime, p.Location.Street, p.Location.City, p.Location.State,
		p.MediaKey, p.PostedBy, p.IsClaimed, p.ClaimedAt, p.LikeCount, p.CreatedAt, p.UpdatedAt,
	}
}

func scanPost(row pgx.CollectableRow) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Servings,
		&p.ExpiryTime,
		&p.Location.Street,
		&p.Location.City,
		&p.Location.State,
		&p.MediaKey,
		&p.PostedBy,
		&p.IsClaimed,
		&p.ClaimedAt,
		&p.LikeCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
