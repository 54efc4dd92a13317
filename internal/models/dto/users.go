package dto

// CreateUserRequest mirrors the upstream auth service's creation payload.
// The JSON keys (including the capitalized DOB) are fixed by that service's
// contract and must not be renamed.
type CreateUserRequest struct {
	Name        string `json:"name"`
	DOB         string `json:"DOB"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}
