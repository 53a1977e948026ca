package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bunpou/bunpou/store"
)

func (d *DB) CreateGrammar(ctx context.Context, create *store.Grammar) (*store.Grammar, error) {
	examples, err := json.Marshal(create.Examples)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal examples")
	}

	stmt := `INSERT INTO grammar (id, level, lesson, pattern, meaning, usage, notes, examples)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := d.db.ExecContext(ctx, stmt,
		create.ID,
		create.Level,
		create.Lesson,
		create.Pattern,
		create.Meaning,
		create.Usage,
		create.Notes,
		string(examples),
	); err != nil {
		return nil, errors.Wrap(err, "failed to create grammar entry")
	}

	return create, nil
}

func (d *DB) ListGrammars(ctx context.Context, find *store.FindGrammar) ([]*store.Grammar, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "grammar.id = ?"), append(args, *v)
	}
	if v := find.Level; v != nil {
		where, args = append(where, "grammar.level = ?"), append(args, *v)
	}
	if v := find.Lesson; v != nil {
		where, args = append(where, "grammar.lesson = ?"), append(args, *v)
	}
	if v := find.Search; v != nil {
		needle := "%" + strings.ToLower(*v) + "%"
		fields := []string{"pattern", "meaning", "usage", "notes", "examples"}
		likes := make([]string, 0, len(fields))
		for _, f := range fields {
			likes = append(likes, "LOWER(grammar."+f+") LIKE ?")
			args = append(args, needle)
		}
		where = append(where, "("+strings.Join(likes, " OR ")+")")
	}

	// Full-text search results are grouped by level; catalog browsing keeps
	// the lesson order within a level.
	orderBy := "ORDER BY grammar.lesson ASC, grammar.id ASC"
	if find.Search != nil {
		orderBy = "ORDER BY grammar.level ASC, grammar.lesson ASC"
	}

	query := `
		SELECT id, level, lesson, pattern, meaning, usage, notes, examples
		FROM grammar
		WHERE ` + strings.Join(where, " AND ") + ` ` + orderBy
	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query grammar entries")
	}
	defer rows.Close()

	list := make([]*store.Grammar, 0)
	for rows.Next() {
		var grammar store.Grammar
		var examples string
		if err := rows.Scan(
			&grammar.ID,
			&grammar.Level,
			&grammar.Lesson,
			&grammar.Pattern,
			&grammar.Meaning,
			&grammar.Usage,
			&grammar.Notes,
			&examples,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan grammar entry")
		}
		if err := json.Unmarshal([]byte(examples), &grammar.Examples); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal examples for %s", grammar.ID)
		}
		list = append(list, &grammar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
