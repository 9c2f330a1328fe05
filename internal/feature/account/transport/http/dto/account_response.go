package dto

import "account_backend/internal/feature/account/domain/entity"

// AccountRes is the public view of an account.
type AccountRes struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewAccountRes converts an entity to its public view. The digest is never exposed.
func NewAccountRes(a *entity.Account) AccountRes {
	return AccountRes{ID: a.ID, Name: a.Name, Email: a.Email}
}

// ErrorRes is the body of every error response.
type ErrorRes struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}
