package storage

import (
	"context"
	"guidiqo/pkg/domain"
)

// UserPage groups a page of users together with an optional NextCursor.
type UserPage struct {
	Users      []domain.User
	NextCursor *Cursor
}

// UserStorage persists the local mirror of authenticated users.
type UserStorage interface {
	// UpsertUser inserts the user or refreshes email, name, role and
	// last_seen_at of an existing one. created_at is kept.
	UpsertUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when unknown.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// Users returns users after the optional cursor, newest first.
	Users(ctx context.Context, cursor Cursor, limit uint) (UserPage, error)
	// CountUsers returns the number of known users.
	CountUsers(ctx context.Context) (int64, error)
	// RecipientEmails returns the distinct non-empty user emails, lowercased,
	// oldest account first so that the order is stable while new users sign up.
	RecipientEmails(ctx context.Context) ([]string, error)
}
