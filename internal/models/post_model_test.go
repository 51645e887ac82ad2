package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFromRow(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		want   Post
		wantOk bool
	}{
		{
			name: "full row",
			row:  []string{"abc", "2024-03-01", "09:30", "Promo", "hello", "https://img/x.png", "Ready", "2024-03-01T09:30:00Z"},
			want: Post{
				ID:       "abc",
				Date:     "2024-03-01",
				Time:     "09:30",
				Category: "Promo",
				Caption:  "hello",
				ImageURL: "https://img/x.png",
				Status:   "Ready",
				PostedAt: "2024-03-01T09:30:00Z",
			},
			wantOk: true,
		},
		{
			name:   "short row is padded",
			row:    []string{"abc", "2024-03-01"},
			want:   Post{ID: "abc", Date: "2024-03-01", Status: PostStatusDraft},
			wantOk: true,
		},
		{
			name:   "unrecognized status falls back to draft",
			row:    []string{"abc", "2024-03-01", "", "", "", "", "scheduled", ""},
			want:   Post{ID: "abc", Date: "2024-03-01", Status: PostStatusDraft},
			wantOk: true,
		},
		{
			name:   "blank id row is discarded",
			row:    []string{"", "2024-03-01", "", "", "caption", "", "Ready", ""},
			wantOk: false,
		},
		{
			name:   "empty row is discarded",
			row:    nil,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PostFromRow(tt.row)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPostRowWidth(t *testing.T) {
	row := Post{ID: "abc", Date: "2024-03-01"}.Row()
	assert.Len(t, row, PostColumns)
	assert.Equal(t, "abc", row[0])
	assert.Equal(t, "2024-03-01", row[1])
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, PostStatusReady, NormalizeStatus("Ready"))
	assert.Equal(t, PostStatusPosted, NormalizeStatus("Posted"))
	assert.Equal(t, PostStatusDraft, NormalizeStatus(""))
	assert.Equal(t, PostStatusDraft, NormalizeStatus("ready"))
	assert.Equal(t, PostStatusDraft, NormalizeStatus("published"))
}
