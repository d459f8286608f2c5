package queries

import (
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/guard"
)

var ErrGetFinancialSummaryQueryIsNotConstructed = errors.New(
	"GetFinancialSummaryQuery must be created via NewGetFinancialSummaryQuery constructor",
)

// GetFinancialSummaryQuery retrieves a participant's money and distance
// totals over their completed orders.
type GetFinancialSummaryQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewGetFinancialSummaryQuery creates a query for a user's financial totals.
func NewGetFinancialSummaryQuery(userID kernel.UUID, role user.Role) (GetFinancialSummaryQuery, error) {
	query := GetFinancialSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setRole(role),
	); err != nil {
		return GetFinancialSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFinancialSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialSummaryQueryIsNotConstructed)
}

// UserID returns the participant the totals are computed for.
func (q GetFinancialSummaryQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns which side of the orders counts toward the totals.
func (q GetFinancialSummaryQuery) Role() user.Role {
	return q.role
}

func (q *GetFinancialSummaryQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *GetFinancialSummaryQuery) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}
