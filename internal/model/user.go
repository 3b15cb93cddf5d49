package model

import "gorm.io/gorm"

const (
	RoleStaff                 = "staff"
	RoleSubcontractIndividual = "subcontract_individual"
	RoleSubcontractCompany    = "subcontract_company"
	RoleBusinessOwner         = "business_owner"
	RoleStoreManager          = "store_manager"
	RolePlatformAdmin         = "platform_admin"
)

type User struct {
	gorm.Model
	CompanyID *uint  `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique;not null"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:staff"`
}

// CanClockOut also covers subcontract workers closing out a visit; clock-in
// stays staff-only.
func CanClockOut(role string) bool {
	return role == RoleStaff || role == RoleSubcontractIndividual || role == RoleSubcontractCompany
}
