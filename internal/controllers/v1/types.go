package v1

import (
	"github.com/carbonledger/backend/internal/types"
	cl_uuid "github.com/carbonledger/backend/internal/uuid"
	"github.com/google/uuid"
)

type URIID struct {
	ID cl_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type QueryUser struct {
	User cl_uuid.UUID `form:"user" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the user
}

// userID returns the user of a query that requires one.
func (q QueryUser) userID() (uuid.UUID, error) {
	if q.User.UUID == uuid.Nil {
		return uuid.Nil, errUserParameter
	}
	return q.User.UUID, nil
}

type QueryUserMonth struct {
	QueryUser
	Month types.Month `form:"month" example:"2024-03"` // Year and month
}

func (q QueryUserMonth) month() (types.Month, error) {
	if q.Month.IsZero() {
		return types.Month{}, errMonthParameter
	}
	return q.Month, nil
}
