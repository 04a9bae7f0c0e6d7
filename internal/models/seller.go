package models

import "time"

type SellerStatus string

const (
	SellerActive               SellerStatus = "ACTIVE"
	SellerInactive             SellerStatus = "INACTIVE"
	SellerDisabledTemporarily  SellerStatus = "DISABLED_TEMPORARILY"
	SellerDisabledPermanently  SellerStatus = "DISABLED_PERMANENTLY"
)

// Seller owns projects. The phone number doubles as the login identity
// presented by the transport layer.
type Seller struct {
	ID               int64        `json:"id" db:"id"`
	FirstName        string       `json:"first_name" db:"first_name"`
	LastName         string       `json:"last_name" db:"last_name"`
	Email            string       `json:"email" db:"email"`
	PhoneNumber      string       `json:"phone_number" db:"phone_number"`
	Status           SellerStatus `json:"status" db:"status"`
	IsUnionHead      bool         `json:"is_union_head" db:"is_union_head"`
	DisabledUntil    *time.Time   `json:"disabled_until,omitempty" db:"disabled_until"`
	CreatedBy        *string      `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time   `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string      `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time   `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time   `json:"deleted_on,omitempty" db:"deleted_on"`
}

// Live reports whether the seller is not soft-deleted. A record stays live
// while deleted_on is unset or still in the future.
func (s *Seller) Live(now time.Time) bool {
	return s.DeletedOn == nil || s.DeletedOn.After(now)
}
