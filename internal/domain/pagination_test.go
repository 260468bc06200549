package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name       string
		params     PaginationParams
		wantLimit  int
		wantOffset int
	}{
		{"defaults pass through", PaginationParams{Limit: 10, Offset: 0}, 10, 0},
		{"zero limit reset", PaginationParams{Limit: 0, Offset: 5}, 10, 5},
		{"negative offset reset", PaginationParams{Limit: 20, Offset: -3}, 20, 0},
		{"limit capped", PaginationParams{Limit: 500, Offset: 0}, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantLimit, tt.params.Limit)
			assert.Equal(t, tt.wantOffset, tt.params.Offset)
		})
	}
}
