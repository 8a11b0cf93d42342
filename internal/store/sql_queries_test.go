// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

func TestBuildListExamplesQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.ExampleFilter
		wantContains []string
		wantArgs     []interface{}
	}{
		{
			name:         "empty filter",
			filter:       models.ExampleFilter{},
			wantContains: []string{"SELECT", "FROM examples", "deleted = $1", "ORDER BY created_at DESC"},
			wantArgs:     []interface{}{false},
		},
		{
			name:         "model filter",
			filter:       models.ExampleFilter{Models: []string{"phi-3.5-mini-instruct", "mistral-7b-instruct"}},
			wantContains: []string{"model IN ($2,$3)"},
			wantArgs:     []interface{}{false, "phi-3.5-mini-instruct", "mistral-7b-instruct"},
		},
		{
			name:         "title substring is lowercased",
			filter:       models.ExampleFilter{TitleLike: "AI Explanation"},
			wantContains: []string{"LOWER(title) LIKE $2"},
			wantArgs:     []interface{}{false, "%ai explanation%"},
		},
		{
			name:         "limit applied",
			filter:       models.ExampleFilter{Limit: 10},
			wantContains: []string{"LIMIT 10"},
			wantArgs:     []interface{}{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListExamplesQuery(tt.filter)
			require.NoError(t, err)

			for _, fragment := range tt.wantContains {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
