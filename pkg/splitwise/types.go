package splitwise

import (
	"time"
)

// User represents a Splitwise user
type User struct {
	ID                 int64    `json:"id"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Email              string   `json:"email,omitempty"`
	RegistrationStatus string   `json:"registration_status,omitempty"`
	DefaultCurrency    string   `json:"default_currency,omitempty"`
	Locale             string   `json:"locale,omitempty"`
	Picture            *Picture `json:"picture,omitempty"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Picture holds avatar URLs at different sizes
type Picture struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// Friend represents a friend of the current user, including outstanding
// balances per currency
type Friend struct {
	User
	Balance   []*Balance     `json:"balance,omitempty"`
	Groups    []*FriendGroup `json:"groups,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// Balance is an outstanding amount in one currency
type Balance struct {
	CurrencyCode string `json:"currency_code"`
	Amount       string `json:"amount"`
}

// FriendGroup is a friend's balance within one shared group
type FriendGroup struct {
	GroupID int64      `json:"group_id"`
	Balance []*Balance `json:"balance,omitempty"`
}

// Expense represents a shared expense
type Expense struct {
	ID             int64          `json:"id"`
	GroupID        int64          `json:"group_id,omitempty"`
	Description    string         `json:"description"`
	Details        string         `json:"details,omitempty"`
	Cost           string         `json:"cost"`
	CurrencyCode   string         `json:"currency_code"`
	Payment        bool           `json:"payment"`
	Date           *time.Time     `json:"date,omitempty"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty"`
	Category       *Category      `json:"category,omitempty"`
	CreatedBy      *User          `json:"created_by,omitempty"`
	Users          []*ExpenseUser `json:"users,omitempty"`
	RepeatInterval string         `json:"repeat_interval,omitempty"`
}

// ExpenseUser is one user's paid and owed shares within an expense
type ExpenseUser struct {
	User       *User  `json:"user,omitempty"`
	UserID     int64  `json:"user_id"`
	PaidShare  string `json:"paid_share"`
	OwedShare  string `json:"owed_share"`
	NetBalance string `json:"net_balance,omitempty"`
}

// Group represents an expense sharing group
type Group struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	GroupType         string     `json:"group_type,omitempty"`
	SimplifyByDefault bool       `json:"simplify_by_default"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
	Members           []*Friend  `json:"members,omitempty"`
}

// Comment represents a comment on an expense
type Comment struct {
	ID           int64      `json:"id"`
	Content      string     `json:"content"`
	CommentType  string     `json:"comment_type,omitempty"`
	RelationType string     `json:"relation_type,omitempty"`
	RelationID   int64      `json:"relation_id,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	User         *User      `json:"user,omitempty"`
}

// Notification represents an activity notification for the current user
type Notification struct {
	ID        int64      `json:"id"`
	Type      int        `json:"type"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	CreatedBy int64      `json:"created_by,omitempty"`
}

// Currency is a currency supported by Splitwise
type Currency struct {
	CurrencyCode string `json:"currency_code"`
	Unit         string `json:"unit"`
}

// Category is an expense category; top-level categories carry subcategories
type Category struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Subcategories []*Category `json:"subcategories,omitempty"`
}

// ExpenseFilter narrows an expense listing
type ExpenseFilter struct {
	// GroupID limits results to expenses in a group
	GroupID int64

	// FriendID limits results to expenses shared with a friend
	FriendID int64

	// DatedAfter and DatedBefore bound the expense date
	DatedAfter  *time.Time
	DatedBefore *time.Time

	// Limit caps the number of results (the API default is 20)
	Limit int

	// Offset skips results for pagination
	Offset int
}

// ExpenseUserShare is one participant's shares for a new expense
type ExpenseUserShare struct {
	UserID    int64
	PaidShare string
	OwedShare string
}

// CreateExpenseParams describes a new expense. Shares are decimal strings;
// the API requires paid and owed shares to each sum to Cost.
type CreateExpenseParams struct {
	Description  string
	Cost         string
	CurrencyCode string
	GroupID      int64
	CategoryID   int64
	Users        []ExpenseUserShare
}

// GroupType values accepted by the API
const (
	GroupTypeApartment = "apartment"
	GroupTypeHouse     = "house"
	GroupTypeTrip      = "trip"
	GroupTypeOther     = "other"
)

// CreateGroupParams describes a new group
type CreateGroupParams struct {
	Name              string
	Description       string
	GroupType         string
	SimplifyByDefault bool
}
