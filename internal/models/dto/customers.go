package dto

import "github.com/platedash/admin-api/internal/models"

// CustomerListResponse is the payload behind the customer table. Data is
// always a JSON array, never null, so an empty directory renders as the
// placeholder row rather than an error.
type CustomerListResponse struct {
	Data  []models.Customer `json:"data"`
	Total int               `json:"total"`
}

// RenameCustomerRequest carries the single editable field of a directory row.
type RenameCustomerRequest struct {
	Name string `json:"name"`
}
