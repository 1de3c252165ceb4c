package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageBounds(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name                string
		page, size          int
		wantSkip, wantLimit int
	}{
		{"first page", 1, 20, 0, 20},
		{"second page", 2, 20, 20, 20},
		{"single item pages", 5, 1, 4, 1},
		{"page clamped to 1", 0, 10, 0, 10},
		{"size clamped to 1", 3, 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := PageBounds(tt.page, tt.size)
			req.Equal(tt.wantSkip, skip)
			req.Equal(tt.wantLimit, limit)
		})
	}
}

// TestNewPage_WindowProperty checks the pagination contract: for any valid
// (page, size, total), the item count equals
// min(size, max(0, total-(page-1)*size)) and totalPages is ceil(total/size).
func TestNewPage_WindowProperty(t *testing.T) {
	req := require.New(t)

	for _, total := range []int64{0, 1, 19, 20, 21, 100, 101} {
		for _, size := range []int{1, 7, 20, 100} {
			for _, page := range []int{1, 2, 3, 50} {
				skip, limit := PageBounds(page, size)

				// Simulate the repository fetching the window out of an
				// ordered set of `total` items.
				count := int(total) - skip
				if count < 0 {
					count = 0
				}
				if count > limit {
					count = limit
				}

				p := NewPage(make([]struct{}, count), total, page, size)

				wantPages := int((total + int64(size) - 1) / int64(size))
				req.Equal(wantPages, p.TotalPages, "total=%d size=%d", total, size)
				req.Equal(total, p.TotalCount)
				req.Len(p.Items, count, "total=%d size=%d page=%d", total, size, page)

				// Beyond-last-page requests return empty items, not an error.
				if int64(skip) >= total {
					req.Empty(p.Items)
				}
			}
		}
	}
}

func TestResult(t *testing.T) {
	req := require.New(t)

	ok := Ok("payload")
	req.True(ok.IsCompleted())
	req.Equal("payload", ok.Value)

	fail := Fail[string](NotFound)
	req.False(fail.IsCompleted())
	req.Equal(NotFound, fail.Status)
	req.Empty(fail.Value)
}

func TestStatusString(t *testing.T) {
	req := require.New(t)

	req.Equal("Completed", Completed.String())
	req.Equal("RelatedEntityDoesNotExists", RelatedEntityDoesNotExists.String())
	req.Equal("PhotoFailedToSave", PhotoFailedToSave.String())
	req.Equal("Unknown", Status(99).String())
}
