package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/sheets"
	"github.com/maheshrc27/sheetcal/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	sheetRange   = "Sheet1!A:H"
	headerRange  = "Sheet1!A1:H1"
	headerMarker = "ID"
)

var headerRow = []string{"ID", "Date", "Time", "Category", "Caption", "Image_URL", "Status", "Posted_At"}

// PostRepository is the spreadsheet-backed post store. Row positions in the
// sheet are transient (a delete shifts everything below it up), so every
// mutation re-resolves the row from the post id against the current table
// state. Not-found is an outcome ((nil, nil) or false), never an error.
//
// Two callers mutating the same sheet race at fetch-then-mutate granularity
// and the last writer wins; callers needing stronger guarantees must
// serialize access per sheet externally.
type PostRepository interface {
	List(ctx context.Context, sheetID string) ([]*models.Post, error)
	Create(ctx context.Context, sheetID string, form *transfer.PostForm) (*models.Post, error)
	Update(ctx context.Context, sheetID, postID string, upd *transfer.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, sheetID, postID string) (bool, error)
	MarkPosted(ctx context.Context, sheetID, postID, postedAt string) (*models.Post, error)
	EnsureHeader(ctx context.Context, sheetID string) error
}

type postRepository struct {
	rows sheets.RowStore
}

func NewPostRepository(rows sheets.RowStore) PostRepository {
	return &postRepository{rows: rows}
}

func (r *postRepository) List(ctx context.Context, sheetID string) ([]*models.Post, error) {
	rows, err := r.rows.GetRows(ctx, sheetID, sheetRange)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == headerMarker {
		rows = rows[1:]
	}

	posts := make([]*models.Post, 0, len(rows))
	for _, row := range rows {
		post, ok := models.PostFromRow(row)
		if !ok {
			continue
		}
		posts = append(posts, &post)
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, sheetID string, form *transfer.PostForm) (*models.Post, error) {
	// The header must be in place before the row lands; a failure here
	// aborts the create without appending anything.
	if err := r.EnsureHeader(ctx, sheetID); err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	post := models.Post{
		ID:       id,
		Date:     form.Date,
		Time:     form.Time,
		Category: form.Category,
		Caption:  form.Caption,
		ImageURL: form.ImageURL,
		Status:   models.NormalizeStatus(form.Status),
	}

	if err := r.rows.AppendRow(ctx, sheetID, sheetRange, post.Row()); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, sheetID, postID string, upd *transfer.PostUpdate) (*models.Post, error) {
	rows, idx, err := r.findRow(ctx, sheetID, postID)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, nil
	}

	existing, _ := models.PostFromRow(rows[idx])
	merged := mergePost(existing, upd)

	if err := r.rows.UpdateRow(ctx, sheetID, rowRange(idx), merged.Row()); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &merged, nil
}

func (r *postRepository) Delete(ctx context.Context, sheetID, postID string) (bool, error) {
	_, idx, err := r.findRow(ctx, sheetID, postID)
	if err != nil {
		return false, err
	}
	if idx == -1 {
		return false, nil
	}

	if err := r.rows.DeleteRows(ctx, sheetID, int64(idx), int64(idx+1)); err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return true, nil
}

// MarkPosted stamps a post as published. This is the only path that writes
// Posted_At; the public Update preserves it verbatim.
func (r *postRepository) MarkPosted(ctx context.Context, sheetID, postID, postedAt string) (*models.Post, error) {
	rows, idx, err := r.findRow(ctx, sheetID, postID)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, nil
	}

	post, _ := models.PostFromRow(rows[idx])
	post.Status = models.PostStatusPosted
	post.PostedAt = postedAt

	if err := r.rows.UpdateRow(ctx, sheetID, rowRange(idx), post.Row()); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &post, nil
}

// EnsureHeader writes the header row only when the first cell of the sheet
// is not already the header marker. Calling it repeatedly is a no-op.
func (r *postRepository) EnsureHeader(ctx context.Context, sheetID string) error {
	rows, err := r.rows.GetRows(ctx, sheetID, headerRange)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == headerMarker {
		return nil
	}

	if err := r.rows.UpdateRow(ctx, sheetID, headerRange, headerRow); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// findRow fetches the whole table and scans for the row whose first cell is
// postID. The index is resolved fresh on every call and never reused across
// calls: a delete above the row invalidates any earlier observation. idx is
// -1 when the id is absent.
func (r *postRepository) findRow(ctx context.Context, sheetID, postID string) (rows [][]string, idx int, err error) {
	rows, err = r.rows.GetRows(ctx, sheetID, sheetRange)
	if err != nil {
		slog.Info(err.Error())
		return nil, -1, err
	}

	idx = -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == postID {
			idx = i
			break
		}
	}
	return rows, idx, nil
}

// rowRange converts a zero-based row index into the 1-based A1 range of the
// row's full cell span.
func rowRange(idx int) string {
	return fmt.Sprintf("Sheet1!A%d:H%d", idx+1, idx+1)
}

func mergePost(existing models.Post, upd *transfer.PostUpdate) models.Post {
	merged := existing
	if upd == nil {
		return merged
	}
	if upd.Date != nil {
		merged.Date = *upd.Date
	}
	if upd.Time != nil {
		merged.Time = *upd.Time
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}
	if upd.Caption != nil {
		merged.Caption = *upd.Caption
	}
	if upd.ImageURL != nil {
		merged.ImageURL = *upd.ImageURL
	}
	if upd.Status != nil {
		merged.Status = models.NormalizeStatus(*upd.Status)
	}
	return merged
}
