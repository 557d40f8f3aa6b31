package models

// User represents the user model in the database
type User struct {
	Base
	Email                string                `gorm:"uniqueIndex;not null" json:"email"`
	FirstName            string                `json:"first_name"`
	LastName             string                `json:"last_name"`
	BudgetConfigurations []BudgetConfiguration `gorm:"foreignKey:UserID" json:"budget_configurations,omitempty"`
}
