package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tejas-uk/splitwise-mcp/internal/split"
	"github.com/tejas-uk/splitwise-mcp/pkg/splitwise"
)

func registerTools(server *mcp.Server, client *splitwise.Client, callerID int64) {
	// Create tools instance with client; callerID drives the
	// caller-in-split policy on create_expense (zero disables it)
	tools := &splitwiseTools{
		client:    client,
		validator: split.Validator{CallerID: callerID},
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Get information about the currently authenticated Splitwise user: name and email.",
	}, tools.GetCurrentUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_current_user_id",
		Description: "Get the user ID of the currently authenticated Splitwise user. Use this ID when creating expenses where you are one of the participants.",
	}, tools.GetCurrentUserID)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_friends",
		Description: "List the current user's Splitwise friends with their IDs and outstanding balances per currency.",
	}, tools.GetFriends)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_expenses",
		Description: "List expenses with optional filtering by group or friend. Returns description, cost, currency, and participants for each expense.",
	}, tools.GetExpenses)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_expense",
		Description: "Get a single expense by ID, including each participant's paid and owed shares.",
	}, tools.GetExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_expense",
		Description: "Create a new expense and split it among users. Include ALL users involved, including yourself (use get_current_user_id). The paid shares and the owed shares must each sum exactly to the total cost; all amounts are decimal strings like \"25.00\".",
	}, tools.CreateExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_expense",
		Description: "Delete an expense by ID.",
	}, tools.DeleteExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_groups",
		Description: "List the current user's expense sharing groups with IDs and member counts.",
	}, tools.GetGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_group",
		Description: "Create a new expense sharing group. Group type is one of: apartment, house, trip, other.",
	}, tools.CreateGroup)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_comments",
		Description: "List comments on an expense.",
	}, tools.GetComments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Add a comment to an expense.",
	}, tools.AddComment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_currencies",
		Description: "List all currencies supported by Splitwise with their units.",
	}, tools.GetCurrencies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_categories",
		Description: "List all expense categories and subcategories. Categories organize expenses (e.g. Food, Transportation).",
	}, tools.GetCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_notifications",
		Description: "Get recent notifications about expenses, payments, and group activity.",
	}, tools.GetNotifications)
}

// splitwiseTools holds the Splitwise client and implements all tool handlers
type splitwiseTools struct {
	client    *splitwise.Client
	validator split.Validator
}

// GetCurrentUser tool - fetches the authenticated user
type GetCurrentUserInput struct {
	// No input parameters needed
}

type GetCurrentUserOutput struct {
	ID        int64  `json:"id" jsonschema:"User ID"`
	FirstName string `json:"firstName" jsonschema:"First name"`
	LastName  string `json:"lastName,omitempty" jsonschema:"Last name"`
	Email     string `json:"email,omitempty" jsonschema:"Email address"`
}

func (t *splitwiseTools) GetCurrentUser(ctx context.Context, req *mcp.CallToolRequest, input GetCurrentUserInput) (*mcp.CallToolResult, GetCurrentUserOutput, error) {
	user, err := t.client.Users.Current(ctx)
	if err != nil {
		return nil, GetCurrentUserOutput{}, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return nil, GetCurrentUserOutput{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

// GetCurrentUserID tool - fetches only the authenticated user's id
type GetCurrentUserIDInput struct {
	// No input parameters needed
}

type GetCurrentUserIDOutput struct {
	UserID int64 `json:"userId" jsonschema:"Your user ID, usable in expense splits"`
}

func (t *splitwiseTools) GetCurrentUserID(ctx context.Context, req *mcp.CallToolRequest, input GetCurrentUserIDInput) (*mcp.CallToolResult, GetCurrentUserIDOutput, error) {
	user, err := t.client.Users.Current(ctx)
	if err != nil {
		return nil, GetCurrentUserIDOutput{}, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return nil, GetCurrentUserIDOutput{UserID: user.ID}, nil
}

// GetFriends tool - lists friends with balances
type GetFriendsInput struct {
	// No input parameters needed
}

type BalanceEntry struct {
	CurrencyCode string `json:"currencyCode" jsonschema:"Currency code"`
	Amount       string `json:"amount" jsonschema:"Outstanding amount, positive when the friend owes you"`
}

type FriendEntry struct {
	ID       int64          `json:"id" jsonschema:"Friend's user ID"`
	Name     string         `json:"name" jsonschema:"Friend's full name"`
	Email    string         `json:"email,omitempty" jsonschema:"Friend's email address"`
	Balances []BalanceEntry `json:"balances,omitempty" jsonschema:"Outstanding balances per currency"`
}

type GetFriendsOutput struct {
	Friends []FriendEntry `json:"friends" jsonschema:"List of friends"`
	Count   int           `json:"count" jsonschema:"Number of friends"`
}

func (t *splitwiseTools) GetFriends(ctx context.Context, req *mcp.CallToolRequest, input GetFriendsInput) (*mcp.CallToolResult, GetFriendsOutput, error) {
	friends, err := t.client.Friends.List(ctx)
	if err != nil {
		return nil, GetFriendsOutput{}, fmt.Errorf("failed to fetch friends: %w", err)
	}

	var entries []FriendEntry
	for _, friend := range friends {
		entry := FriendEntry{
			ID:    friend.ID,
			Name:  friend.FullName(),
			Email: friend.Email,
		}

		for _, balance := range friend.Balance {
			entry.Balances = append(entry.Balances, BalanceEntry{
				CurrencyCode: balance.CurrencyCode,
				Amount:       balance.Amount,
			})
		}

		entries = append(entries, entry)
	}

	return nil, GetFriendsOutput{
		Friends: entries,
		Count:   len(entries),
	}, nil
}

// GetExpenses tool - lists expenses with optional filters
type GetExpensesInput struct {
	GroupID  int64 `json:"groupId,omitempty" jsonschema:"Filter expenses by group ID (optional)"`
	FriendID int64 `json:"friendId,omitempty" jsonschema:"Filter expenses involving a specific friend (optional)"`
	Limit    int   `json:"limit,omitempty" jsonschema:"Maximum number of expenses to return (default: 10)"`
}

type ShareEntry struct {
	UserID    int64  `json:"userId" jsonschema:"Participant's user ID"`
	Name      string `json:"name,omitempty" jsonschema:"Participant's name"`
	PaidShare string `json:"paidShare" jsonschema:"Amount this user paid"`
	OwedShare string `json:"owedShare" jsonschema:"Amount this user owes"`
}

type ExpenseEntry struct {
	ID           int64        `json:"id" jsonschema:"Expense ID"`
	Description  string       `json:"description" jsonschema:"Expense description"`
	Cost         string       `json:"cost" jsonschema:"Total cost as a decimal string"`
	CurrencyCode string       `json:"currencyCode" jsonschema:"Three-letter currency code"`
	Date         *time.Time   `json:"date,omitempty" jsonschema:"Expense date"`
	GroupID      int64        `json:"groupId,omitempty" jsonschema:"Group the expense belongs to"`
	Payment      bool         `json:"payment" jsonschema:"Whether this is a settlement payment"`
	Deleted      bool         `json:"deleted" jsonschema:"Whether the expense has been deleted"`
	Shares       []ShareEntry `json:"shares,omitempty" jsonschema:"Per-participant paid and owed shares"`
}

type GetExpensesOutput struct {
	Expenses []ExpenseEntry `json:"expenses" jsonschema:"List of expenses"`
	Count    int            `json:"count" jsonschema:"Number of expenses returned"`
}

func (t *splitwiseTools) GetExpenses(ctx context.Context, req *mcp.CallToolRequest, input GetExpensesInput) (*mcp.CallToolResult, GetExpensesOutput, error) {
	// Apply limit (default to 10)
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	expenses, err := t.client.Expenses.List(ctx, &splitwise.ExpenseFilter{
		GroupID:  input.GroupID,
		FriendID: input.FriendID,
		Limit:    limit,
	})
	if err != nil {
		return nil, GetExpensesOutput{}, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	var entries []ExpenseEntry
	for _, expense := range expenses {
		entries = append(entries, expenseEntry(expense))
	}

	return nil, GetExpensesOutput{
		Expenses: entries,
		Count:    len(entries),
	}, nil
}

// GetExpense tool - fetches a single expense with its shares
type GetExpenseInput struct {
	ExpenseID int64 `json:"expenseId" jsonschema:"ID of the expense to fetch"`
}

type GetExpenseOutput struct {
	Expense ExpenseEntry `json:"expense" jsonschema:"The expense with per-participant shares"`
}

func (t *splitwiseTools) GetExpense(ctx context.Context, req *mcp.CallToolRequest, input GetExpenseInput) (*mcp.CallToolResult, GetExpenseOutput, error) {
	if input.ExpenseID == 0 {
		return nil, GetExpenseOutput{}, fmt.Errorf("expenseId is required")
	}

	expense, err := t.client.Expenses.Get(ctx, input.ExpenseID)
	if err != nil {
		return nil, GetExpenseOutput{}, fmt.Errorf("failed to fetch expense %d: %w", input.ExpenseID, err)
	}

	return nil, GetExpenseOutput{Expense: expenseEntry(expense)}, nil
}

// CreateExpense tool - validates and creates a split expense
type UserSplitInput struct {
	UserID    int64  `json:"userId" jsonschema:"ID of the user (integer)"`
	PaidShare string `json:"paidShare" jsonschema:"Amount this user paid, as a decimal string (e.g. \"50.00\")"`
	OwedShare string `json:"owedShare" jsonschema:"Amount this user owes, as a decimal string (e.g. \"25.00\")"`
}

type CreateExpenseInput struct {
	Description  string           `json:"description" jsonschema:"Description of the expense (e.g. \"Dinner at restaurant\")"`
	Cost         string           `json:"cost" jsonschema:"Total cost as a decimal string (e.g. \"100.00\")"`
	UserSplits   []UserSplitInput `json:"userSplits" jsonschema:"All participants with their paid and owed shares; both must sum to cost"`
	CurrencyCode string           `json:"currencyCode,omitempty" jsonschema:"Three-letter currency code (default: USD)"`
	GroupID      int64            `json:"groupId,omitempty" jsonschema:"Optional group to add the expense to"`
	CategoryID   int64            `json:"categoryId,omitempty" jsonschema:"Optional expense category ID (see get_categories)"`
}

type CreateExpenseOutput struct {
	ID           int64  `json:"id" jsonschema:"Created expense ID"`
	Description  string `json:"description" jsonschema:"Expense description"`
	Cost         string `json:"cost" jsonschema:"Total cost"`
	CurrencyCode string `json:"currencyCode" jsonschema:"Currency code"`
}

func (t *splitwiseTools) CreateExpense(ctx context.Context, req *mcp.CallToolRequest, input CreateExpenseInput) (*mcp.CallToolResult, CreateExpenseOutput, error) {
	currency := input.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	draft := split.ExpenseDraft{
		Description:  input.Description,
		TotalCost:    input.Cost,
		CurrencyCode: currency,
		GroupID:      input.GroupID,
		CategoryID:   input.CategoryID,
	}
	for _, s := range input.UserSplits {
		draft.Shares = append(draft.Shares, split.ParticipantShare{
			UserID: s.UserID,
			Paid:   s.PaidShare,
			Owed:   s.OwedShare,
		})
	}

	// Reject inconsistent splits before any network call
	validated, err := t.validator.Validate(draft)
	if err != nil {
		return nil, CreateExpenseOutput{}, err
	}

	params := &splitwise.CreateExpenseParams{
		Description:  validated.Description,
		Cost:         validated.TotalCost,
		CurrencyCode: validated.CurrencyCode,
		GroupID:      validated.GroupID,
		CategoryID:   validated.CategoryID,
	}
	for _, share := range validated.Shares {
		params.Users = append(params.Users, splitwise.ExpenseUserShare{
			UserID:    share.UserID,
			PaidShare: share.Paid,
			OwedShare: share.Owed,
		})
	}

	expense, err := t.client.Expenses.Create(ctx, params)
	if err != nil {
		return nil, CreateExpenseOutput{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return nil, CreateExpenseOutput{
		ID:           expense.ID,
		Description:  expense.Description,
		Cost:         expense.Cost,
		CurrencyCode: expense.CurrencyCode,
	}, nil
}

// DeleteExpense tool - deletes an expense by id
type DeleteExpenseInput struct {
	ExpenseID int64 `json:"expenseId" jsonschema:"ID of the expense to delete"`
}

type DeleteExpenseOutput struct {
	Deleted bool `json:"deleted" jsonschema:"Whether the expense was deleted"`
}

func (t *splitwiseTools) DeleteExpense(ctx context.Context, req *mcp.CallToolRequest, input DeleteExpenseInput) (*mcp.CallToolResult, DeleteExpenseOutput, error) {
	if input.ExpenseID == 0 {
		return nil, DeleteExpenseOutput{}, fmt.Errorf("expenseId is required")
	}

	if err := t.client.Expenses.Delete(ctx, input.ExpenseID); err != nil {
		return nil, DeleteExpenseOutput{}, fmt.Errorf("failed to delete expense %d: %w", input.ExpenseID, err)
	}

	return nil, DeleteExpenseOutput{Deleted: true}, nil
}

// GetGroups tool - lists the user's groups
type GetGroupsInput struct {
	// No input parameters needed
}

type GroupEntry struct {
	ID          int64  `json:"id" jsonschema:"Group ID"`
	Name        string `json:"name" jsonschema:"Group name"`
	GroupType   string `json:"groupType,omitempty" jsonschema:"Group type (apartment, house, trip, other)"`
	MemberCount int    `json:"memberCount" jsonschema:"Number of members"`
}

type GetGroupsOutput struct {
	Groups []GroupEntry `json:"groups" jsonschema:"List of groups"`
	Count  int          `json:"count" jsonschema:"Number of groups"`
}

func (t *splitwiseTools) GetGroups(ctx context.Context, req *mcp.CallToolRequest, input GetGroupsInput) (*mcp.CallToolResult, GetGroupsOutput, error) {
	groups, err := t.client.Groups.List(ctx)
	if err != nil {
		return nil, GetGroupsOutput{}, fmt.Errorf("failed to fetch groups: %w", err)
	}

	var entries []GroupEntry
	for _, group := range groups {
		entries = append(entries, GroupEntry{
			ID:          group.ID,
			Name:        group.Name,
			GroupType:   group.GroupType,
			MemberCount: len(group.Members),
		})
	}

	return nil, GetGroupsOutput{
		Groups: entries,
		Count:  len(entries),
	}, nil
}

// CreateGroup tool - creates a new group
type CreateGroupInput struct {
	Name        string `json:"name" jsonschema:"Name of the group (e.g. \"Europe Trip 2026\")"`
	Description string `json:"description,omitempty" jsonschema:"Optional description providing more details about the group"`
	GroupType   string `json:"groupType,omitempty" jsonschema:"Type of group: apartment, house, trip, or other (default: other)"`
}

type CreateGroupOutput struct {
	ID   int64  `json:"id" jsonschema:"Created group ID"`
	Name string `json:"name" jsonschema:"Group name"`
}

var validGroupTypes = []string{
	splitwise.GroupTypeApartment,
	splitwise.GroupTypeHouse,
	splitwise.GroupTypeTrip,
	splitwise.GroupTypeOther,
}

func isValidGroupType(groupType string) bool {
	for _, t := range validGroupTypes {
		if groupType == t {
			return true
		}
	}
	return false
}

func (t *splitwiseTools) CreateGroup(ctx context.Context, req *mcp.CallToolRequest, input CreateGroupInput) (*mcp.CallToolResult, CreateGroupOutput, error) {
	if input.Name == "" {
		return nil, CreateGroupOutput{}, fmt.Errorf("name is required")
	}

	groupType := input.GroupType
	if groupType == "" {
		groupType = splitwise.GroupTypeOther
	}
	if !isValidGroupType(groupType) {
		return nil, CreateGroupOutput{}, fmt.Errorf("invalid group type %q, must be one of: %s", input.GroupType, strings.Join(validGroupTypes, ", "))
	}

	group, err := t.client.Groups.Create(ctx, &splitwise.CreateGroupParams{
		Name:        input.Name,
		Description: input.Description,
		GroupType:   groupType,
	})
	if err != nil {
		return nil, CreateGroupOutput{}, fmt.Errorf("failed to create group: %w", err)
	}

	return nil, CreateGroupOutput{
		ID:   group.ID,
		Name: group.Name,
	}, nil
}

// GetComments tool - lists comments on an expense
type GetCommentsInput struct {
	ExpenseID int64 `json:"expenseId" jsonschema:"ID of the expense"`
}

type CommentEntry struct {
	ID        int64      `json:"id" jsonschema:"Comment ID"`
	Content   string     `json:"content" jsonschema:"Comment text"`
	Author    string     `json:"author,omitempty" jsonschema:"Name of the comment author"`
	CreatedAt *time.Time `json:"createdAt,omitempty" jsonschema:"When the comment was posted"`
}

type GetCommentsOutput struct {
	Comments []CommentEntry `json:"comments" jsonschema:"List of comments"`
	Count    int            `json:"count" jsonschema:"Number of comments"`
}

func (t *splitwiseTools) GetComments(ctx context.Context, req *mcp.CallToolRequest, input GetCommentsInput) (*mcp.CallToolResult, GetCommentsOutput, error) {
	if input.ExpenseID == 0 {
		return nil, GetCommentsOutput{}, fmt.Errorf("expenseId is required")
	}

	comments, err := t.client.Comments.List(ctx, input.ExpenseID)
	if err != nil {
		return nil, GetCommentsOutput{}, fmt.Errorf("failed to fetch comments: %w", err)
	}

	var entries []CommentEntry
	for _, comment := range comments {
		entry := CommentEntry{
			ID:        comment.ID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			entry.Author = comment.User.FullName()
		}
		entries = append(entries, entry)
	}

	return nil, GetCommentsOutput{
		Comments: entries,
		Count:    len(entries),
	}, nil
}

// AddComment tool - adds a comment to an expense
type AddCommentInput struct {
	ExpenseID int64  `json:"expenseId" jsonschema:"ID of the expense to comment on"`
	Content   string `json:"content" jsonschema:"Comment text"`
}

type AddCommentOutput struct {
	ID      int64  `json:"id" jsonschema:"Created comment ID"`
	Content string `json:"content" jsonschema:"Comment text"`
}

func (t *splitwiseTools) AddComment(ctx context.Context, req *mcp.CallToolRequest, input AddCommentInput) (*mcp.CallToolResult, AddCommentOutput, error) {
	if input.ExpenseID == 0 {
		return nil, AddCommentOutput{}, fmt.Errorf("expenseId is required")
	}
	if input.Content == "" {
		return nil, AddCommentOutput{}, fmt.Errorf("content is required")
	}

	comment, err := t.client.Comments.Create(ctx, input.ExpenseID, input.Content)
	if err != nil {
		return nil, AddCommentOutput{}, fmt.Errorf("failed to add comment: %w", err)
	}

	return nil, AddCommentOutput{
		ID:      comment.ID,
		Content: comment.Content,
	}, nil
}

// GetCurrencies tool - lists supported currencies
type GetCurrenciesInput struct {
	// No input parameters needed
}

type CurrencyEntry struct {
	CurrencyCode string `json:"currencyCode" jsonschema:"Three-letter currency code"`
	Unit         string `json:"unit" jsonschema:"Currency symbol"`
}

type GetCurrenciesOutput struct {
	Currencies []CurrencyEntry `json:"currencies" jsonschema:"List of supported currencies"`
	Count      int             `json:"count" jsonschema:"Number of currencies"`
}

func (t *splitwiseTools) GetCurrencies(ctx context.Context, req *mcp.CallToolRequest, input GetCurrenciesInput) (*mcp.CallToolResult, GetCurrenciesOutput, error) {
	currencies, err := t.client.Meta.Currencies(ctx)
	if err != nil {
		return nil, GetCurrenciesOutput{}, fmt.Errorf("failed to fetch currencies: %w", err)
	}

	var entries []CurrencyEntry
	for _, currency := range currencies {
		entries = append(entries, CurrencyEntry{
			CurrencyCode: currency.CurrencyCode,
			Unit:         currency.Unit,
		})
	}

	return nil, GetCurrenciesOutput{
		Currencies: entries,
		Count:      len(entries),
	}, nil
}

// GetCategories tool - lists expense categories
type GetCategoriesInput struct {
	// No input parameters needed
}

type SubcategoryEntry struct {
	ID   int64  `json:"id" jsonschema:"Subcategory ID"`
	Name string `json:"name" jsonschema:"Subcategory name"`
}

type CategoryEntry struct {
	ID            int64              `json:"id" jsonschema:"Category ID"`
	Name          string             `json:"name" jsonschema:"Category name"`
	Subcategories []SubcategoryEntry `json:"subcategories,omitempty" jsonschema:"Subcategories"`
}

type GetCategoriesOutput struct {
	Categories []CategoryEntry `json:"categories" jsonschema:"List of expense categories"`
	Count      int             `json:"count" jsonschema:"Number of top-level categories"`
}

func (t *splitwiseTools) GetCategories(ctx context.Context, req *mcp.CallToolRequest, input GetCategoriesInput) (*mcp.CallToolResult, GetCategoriesOutput, error) {
	categories, err := t.client.Meta.Categories(ctx)
	if err != nil {
		return nil, GetCategoriesOutput{}, fmt.Errorf("failed to fetch categories: %w", err)
	}

	var entries []CategoryEntry
	for _, category := range categories {
		entry := CategoryEntry{
			ID:   category.ID,
			Name: category.Name,
		}
		for _, sub := range category.Subcategories {
			entry.Subcategories = append(entry.Subcategories, SubcategoryEntry{
				ID:   sub.ID,
				Name: sub.Name,
			})
		}
		entries = append(entries, entry)
	}

	return nil, GetCategoriesOutput{
		Categories: entries,
		Count:      len(entries),
	}, nil
}

// GetNotifications tool - lists recent notifications
type GetNotificationsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of notifications to return (default: 10)"`
}

type NotificationEntry struct {
	ID        int64      `json:"id" jsonschema:"Notification ID"`
	Content   string     `json:"content" jsonschema:"Notification text"`
	CreatedAt *time.Time `json:"createdAt,omitempty" jsonschema:"When the notification was created"`
}

type GetNotificationsOutput struct {
	Notifications []NotificationEntry `json:"notifications" jsonschema:"List of notifications"`
	Count         int                 `json:"count" jsonschema:"Number of notifications"`
}

func (t *splitwiseTools) GetNotifications(ctx context.Context, req *mcp.CallToolRequest, input GetNotificationsInput) (*mcp.CallToolResult, GetNotificationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	notifications, err := t.client.Notifications.List(ctx, limit)
	if err != nil {
		return nil, GetNotificationsOutput{}, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var entries []NotificationEntry
	for _, notification := range notifications {
		entries = append(entries, NotificationEntry{
			ID:        notification.ID,
			Content:   stripHTML(notification.Content),
			CreatedAt: notification.CreatedAt,
		})
	}

	return nil, GetNotificationsOutput{
		Notifications: entries,
		Count:         len(entries),
	}, nil
}

// expenseEntry converts an SDK expense to the tool output shape
func expenseEntry(expense *splitwise.Expense) ExpenseEntry {
	entry := ExpenseEntry{
		ID:           expense.ID,
		Description:  expense.Description,
		Cost:         expense.Cost,
		CurrencyCode: expense.CurrencyCode,
		Date:         expense.Date,
		GroupID:      expense.GroupID,
		Payment:      expense.Payment,
		Deleted:      expense.DeletedAt != nil,
	}

	for _, user := range expense.Users {
		share := ShareEntry{
			UserID:    user.UserID,
			PaidShare: user.PaidShare,
			OwedShare: user.OwedShare,
		}
		if user.User != nil {
			share.Name = user.User.FullName()
			if share.UserID == 0 {
				share.UserID = user.User.ID
			}
		}
		entry.Shares = append(entry.Shares, share)
	}

	return entry
}

// stripHTML removes the bold markup Splitwise embeds in notification content
func stripHTML(content string) string {
	replacer := strings.NewReplacer("<strong>", "", "</strong>", "", "<em>", "", "</em>", "")
	return replacer.Replace(content)
}
