// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Presence and length are not enforced by binding: the account validator
// reports every violated rule at once.
type SignupReq struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}
