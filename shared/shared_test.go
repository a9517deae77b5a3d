package shared_test

import (
	"hotel/shared"
	"hotel/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

type roomChange struct {
	Price    *int   `db:"price"`
	ImageURL string `db:"imageurl"`
	Note     string
}

func intPtr(v int) *int { return &v }

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name     string
		input    roomChange
		expected map[string]any
	}{
		{
			name:     "price only",
			input:    roomChange{Price: intPtr(120)},
			expected: map[string]any{"price": 120},
		},
		{
			name:     "zero price is still written",
			input:    roomChange{Price: intPtr(0)},
			expected: map[string]any{"price": 0},
		},
		{
			name:     "image only, untagged ignored",
			input:    roomChange{ImageURL: "http://img/5.png", Note: "x"},
			expected: map[string]any{"imageurl": "http://img/5.png"},
		},
		{
			name:     "nothing set",
			input:    roomChange{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.input))
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(4), "hotelid", "hotel")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel.hotelid = :hotelid)", where)
	assert.Equal(t, map[string]any{"hotelid": int64(4)}, args)
}

func TestFilterByFields(t *testing.T) {
	group := shared.FilterByFields("hotel",
		dto.Filter{Field: "hotelid", Value: int64(1)},
		dto.Filter{Field: "manageruserid", Value: int64(9)},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel.hotelid = :hotelid AND hotel.manageruserid = :manageruserid)", where)
	assert.Equal(t, map[string]any{"hotelid": int64(1), "manageruserid": int64(9)}, args)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 10.0, shared.Distance(0, 0, 0, 10), 1e-9)
	assert.InDelta(t, 30.0, shared.Distance(0, 0, 0, 30), 1e-9)
	assert.InDelta(t, 5.0, shared.Distance(1, 1, 4, 5), 1e-9)
	assert.Greater(t, shared.Distance(0, 0, 100, 100), 141.0)
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, shared.Truncate(items, 5))
	assert.Equal(t, []int{1, 2}, shared.Truncate([]int{1, 2}, 5))
	assert.Empty(t, shared.Truncate([]int{}, 5))
	assert.Equal(t, items, shared.Truncate(items, -1))
}
