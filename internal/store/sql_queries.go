// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

const (
	saveExample = `
		INSERT INTO examples (
			example_id,
			title,
			model,
			prompt,
			response,
			fingerprint,
			token_count,
			elapsed_ms,
			created_at,
			deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getExample = `
		SELECT
			example_id,
			title,
			model,
			prompt,
			response,
			fingerprint,
			token_count,
			elapsed_ms,
			created_at,
			deleted
		FROM examples
		WHERE example_id = $1 AND deleted = false;`

	softDeleteExample = `
		UPDATE examples SET
			deleted = true
		WHERE example_id = $1 AND deleted = false;`

	purgeDeletedExamples = `
		DELETE FROM examples
		WHERE deleted = true;`

	saveCredential = `
		INSERT INTO credentials (
			name,
			salt,
			ciphertext,
			created_at
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			salt       = excluded.salt,
			ciphertext = excluded.ciphertext,
			created_at = excluded.created_at;`

	getCredential = `
		SELECT
			name,
			salt,
			ciphertext,
			created_at
		FROM credentials
		WHERE name = $1;`

	deleteCredential = `
		DELETE FROM credentials
		WHERE name = $1;`
)

var exampleColumns = []string{
	"example_id",
	"title",
	"model",
	"prompt",
	"response",
	"fingerprint",
	"token_count",
	"elapsed_ms",
	"created_at",
	"deleted",
}

// buildListExamplesQuery assembles the filtered library listing. Filters are
// optional and combined with AND; both drivers accept dollar placeholders.
func buildListExamplesQuery(filter models.ExampleFilter) (string, []interface{}, error) {
	builder := sq.
		Select(exampleColumns...).
		From("examples").
		Where(sq.Eq{"deleted": false}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.Models) > 0 {
		builder = builder.Where(sq.Eq{"model": filter.Models})
	}
	if filter.TitleLike != "" {
		pattern := "%" + strings.ToLower(filter.TitleLike) + "%"
		builder = builder.Where(sq.Like{"LOWER(title)": pattern})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
