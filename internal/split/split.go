// Package split validates expense drafts before they are submitted to the
// Splitwise API. All monetary arithmetic uses exact decimals; binary floating
// point would drift on repeated addition of fractional amounts and either
// falsely reject a balanced split or accept an unbalanced one.
package split

import (
	"github.com/shopspring/decimal"
)

// ParticipantShare is one participant's paid and owed amounts within an
// expense. Amounts are decimal strings, per the Splitwise API.
type ParticipantShare struct {
	UserID int64
	Paid   string
	Owed   string
}

// ExpenseDraft is an unsubmitted expense awaiting validation.
type ExpenseDraft struct {
	Description  string
	TotalCost    string
	Shares       []ParticipantShare
	CurrencyCode string
	GroupID      int64
	CategoryID   int64
}

// ValidatedExpense is a draft that passed validation. Amounts are normalized
// to canonical form (two fractional digits, no sign or exponent artifacts).
type ValidatedExpense struct {
	Description  string
	TotalCost    string
	Shares       []ParticipantShare
	CurrencyCode string
	GroupID      int64
	CategoryID   int64
}

// Validator checks expense drafts for structural and arithmetic consistency.
//
// CallerID, when non-zero, is the acting user's Splitwise id; the validator
// then requires that user to appear in the split, since the API rejects
// expenses the acting user is not a party to. A zero CallerID skips the
// check.
type Validator struct {
	CallerID int64
}

// fractionalDigits is the canonical number of decimal places for amounts.
const fractionalDigits = 2

// Validate checks a draft and returns its canonical form. It is a pure
// function: the draft is not modified and no I/O happens. All failures are
// returned as a *Error carrying the failure kind.
func (v Validator) Validate(draft ExpenseDraft) (*ValidatedExpense, error) {
	total, err := parseAmount(draft.TotalCost)
	if err != nil {
		return nil, malformedAmount("cost", 0, draft.TotalCost)
	}

	if len(draft.Shares) == 0 {
		return nil, emptySplit()
	}

	seen := make(map[int64]bool, len(draft.Shares))
	paidSum := decimal.Zero
	owedSum := decimal.Zero
	shares := make([]ParticipantShare, 0, len(draft.Shares))
	callerIncluded := false

	for _, share := range draft.Shares {
		paid, err := parseAmount(share.Paid)
		if err != nil {
			return nil, malformedAmount("paid_share", share.UserID, share.Paid)
		}
		owed, err := parseAmount(share.Owed)
		if err != nil {
			return nil, malformedAmount("owed_share", share.UserID, share.Owed)
		}

		if seen[share.UserID] {
			return nil, duplicateParticipant(share.UserID)
		}
		seen[share.UserID] = true

		if share.UserID == v.CallerID {
			callerIncluded = true
		}

		paidSum = paidSum.Add(paid)
		owedSum = owedSum.Add(owed)

		shares = append(shares, ParticipantShare{
			UserID: share.UserID,
			Paid:   canonical(paid),
			Owed:   canonical(owed),
		})
	}

	if !paidSum.Equal(total) {
		return nil, paidMismatch(canonical(total), canonical(paidSum))
	}

	if !owedSum.Equal(total) {
		return nil, owedMismatch(canonical(total), canonical(owedSum))
	}

	if v.CallerID != 0 && !callerIncluded {
		return nil, callerExcluded(v.CallerID)
	}

	return &ValidatedExpense{
		Description:  draft.Description,
		TotalCost:    canonical(total),
		Shares:       shares,
		CurrencyCode: draft.CurrencyCode,
		GroupID:      draft.GroupID,
		CategoryID:   draft.CategoryID,
	}, nil
}

// Draft returns the validated expense as a draft, e.g. for re-validation.
func (e *ValidatedExpense) Draft() ExpenseDraft {
	return ExpenseDraft{
		Description:  e.Description,
		TotalCost:    e.TotalCost,
		Shares:       e.Shares,
		CurrencyCode: e.CurrencyCode,
		GroupID:      e.GroupID,
		CategoryID:   e.CategoryID,
	}
}

// parseAmount parses a non-negative exact decimal string.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return d, nil
}

// canonical renders an amount with the fixed fractional digit count.
func canonical(d decimal.Decimal) string {
	return d.StringFixed(fractionalDigits)
}
