package queue

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/service"
	"github.com/maheshrc27/sheetcal/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, sheetID string) ([]*models.Post, error) {
	args := m.Called(ctx, sheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, sheetID string, form *transfer.PostForm) (*models.Post, error) {
	args := m.Called(ctx, sheetID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, sheetID, postID string, upd *transfer.PostUpdate) (*models.Post, error) {
	args := m.Called(ctx, sheetID, postID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, sheetID, postID string) (bool, error) {
	args := m.Called(ctx, sheetID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) MarkPosted(ctx context.Context, sheetID, postID, postedAt string) (*models.Post, error) {
	args := m.Called(ctx, sheetID, postID, postedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) EnsureHeader(ctx context.Context, sheetID string) error {
	args := m.Called(ctx, sheetID)
	return args.Error(0)
}

func newTestQueue(t *testing.T) (*Queue, *MockPostRepository) {
	t.Setenv("BRAND_1_NAME", "Acme")
	t.Setenv("BRAND_1_SHEET_ID", "sheet-acme")

	repo := new(MockPostRepository)
	return NewQueue(service.NewBrandService(), repo), repo
}

func TestDueAt(t *testing.T) {
	withTime, err := DueAt(&models.Post{Date: "2024-03-01", Time: "09:30"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local), withTime)

	dateOnly, err := DueAt(&models.Post{Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), dateOnly)

	_, err = DueAt(&models.Post{Date: "soon"})
	assert.Error(t, err)
}

func TestPublishPostMarksDueReadyPost(t *testing.T) {
	ctx := context.Background()
	q, repo := newTestQueue(t)

	due := &models.Post{ID: "A", Date: "2020-01-01", Time: "09:00", Status: models.PostStatusReady}
	repo.On("List", ctx, "sheet-acme").Return([]*models.Post{due}, nil).Once()
	repo.On("MarkPosted", ctx, "sheet-acme", "A", mock.AnythingOfType("string")).
		Return(&models.Post{ID: "A", Status: models.PostStatusPosted}, nil).Once()

	require.NoError(t, q.PublishPost(ctx, "acme", "A"))
	repo.AssertExpectations(t)
}

func TestPublishPostSkipsIneligible(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		posts []*models.Post
	}{
		{"post deleted", []*models.Post{}},
		{"still a draft", []*models.Post{{ID: "A", Date: "2020-01-01", Status: models.PostStatusDraft}}},
		{"already stamped", []*models.Post{{ID: "A", Date: "2020-01-01", Status: models.PostStatusReady, PostedAt: "2020-01-01T09:00:00Z"}}},
		{"rescheduled into the future", []*models.Post{{ID: "A", Date: "2999-01-01", Status: models.PostStatusReady}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, repo := newTestQueue(t)
			repo.On("List", ctx, "sheet-acme").Return(tt.posts, nil).Once()

			require.NoError(t, q.PublishPost(ctx, "acme", "A"))
			repo.AssertNotCalled(t, "MarkPosted")
		})
	}
}

func TestPublishPostUnknownBrandDropsTask(t *testing.T) {
	ctx := context.Background()
	q, repo := newTestQueue(t)

	require.NoError(t, q.PublishPost(ctx, "ghost", "A"))
	repo.AssertNotCalled(t, "List")
}
