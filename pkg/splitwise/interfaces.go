package splitwise

import (
	"context"
)

// UserService handles user-related operations
type UserService interface {
	// Current retrieves the currently authenticated user
	Current(ctx context.Context) (*User, error)

	// Get retrieves a user by id
	Get(ctx context.Context, userID int64) (*User, error)
}

// FriendService handles friend-related operations
type FriendService interface {
	// List retrieves all friends of the current user
	List(ctx context.Context) ([]*Friend, error)
}

// ExpenseService handles expense-related operations
type ExpenseService interface {
	// List retrieves expenses matching the filter
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)

	// Get retrieves a single expense by id
	Get(ctx context.Context, expenseID int64) (*Expense, error)

	// Create creates a new expense split among users
	Create(ctx context.Context, params *CreateExpenseParams) (*Expense, error)

	// Delete deletes an expense
	Delete(ctx context.Context, expenseID int64) error
}

// GroupService handles group-related operations
type GroupService interface {
	// List retrieves all groups of the current user
	List(ctx context.Context) ([]*Group, error)

	// Get retrieves a single group by id
	Get(ctx context.Context, groupID int64) (*Group, error)

	// Create creates a new group
	Create(ctx context.Context, params *CreateGroupParams) (*Group, error)
}

// CommentService handles expense comments
type CommentService interface {
	// List retrieves all comments on an expense
	List(ctx context.Context, expenseID int64) ([]*Comment, error)

	// Create adds a comment to an expense
	Create(ctx context.Context, expenseID int64, content string) (*Comment, error)
}

// NotificationService handles user notifications
type NotificationService interface {
	// List retrieves recent notifications, newest first
	List(ctx context.Context, limit int) ([]*Notification, error)
}

// MetaService exposes reference data: currencies and expense categories
type MetaService interface {
	// Currencies retrieves all supported currencies
	Currencies(ctx context.Context) ([]*Currency, error)

	// Categories retrieves all expense categories with their subcategories
	Categories(ctx context.Context) ([]*Category, error)
}
