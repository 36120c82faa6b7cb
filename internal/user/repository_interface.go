package user

import "context"

type Repository interface {
	// CreateWithMember inserts the member profile and the account row in
	// one transaction.
	CreateWithMember(ctx context.Context, firstName, lastName, email, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
