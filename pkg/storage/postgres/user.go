package postgres

import (
	"context"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

// UpsertUser inserts the user or refreshes its profile and last_seen_at.
func (p *PgSQL) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var res PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"email":        goqu.L("EXCLUDED.email"),
			"name":         goqu.L("EXCLUDED.name"),
			"role":         goqu.L("EXCLUDED.role"),
			"last_seen_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &res)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user in pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert of user %s returned no row", user.ID)
	}

	return res.ToDomain(), nil
}

// UserByID returns a user by ID, or nil when unknown.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Users returns a page of users ordered by created_at DESC, id DESC.
func (p *PgSQL) Users(ctx context.Context, cursor storage.Cursor, limit uint) (storage.UserPage, error) {
	ds := p.Builder.From(usersTable)
	if !cursor.IsZero() {
		ds = ds.Where(afterCursor(cursor))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgUser
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit && limit > 0 {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].ToDomain())
	}

	return storage.UserPage{Users: users, NextCursor: nextCursor}, nil
}

// CountUsers returns the number of users.
func (p *PgSQL) CountUsers(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users: %w", err)
	}

	return n, nil
}

// RecipientEmails returns lowercased distinct emails ordered by the first
// account that used them.
func (p *PgSQL) RecipientEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := p.Builder.From(usersTable).
		Select(goqu.L("lower(email)").As("email")).
		Where(goqu.I("email").Neq("")).
		GroupBy(goqu.L("lower(email)")).
		Order(goqu.MIN("created_at").Asc(), goqu.L("lower(email)").Asc()).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch recipient emails: %w", err)
	}

	return emails, nil
}
