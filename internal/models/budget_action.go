package models

// BudgetAction is one line of a configuration patch. It is never persisted.
//
//	{id, percentage?, name?}        update
//	{id, delete: true}              delete
//	{create: true, name, percentage} create
type BudgetAction struct {
	ID         *uint   `json:"id,omitempty"`
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Percentage *int    `json:"percentage,omitempty" binding:"omitempty,min=0,max=100"`
	Delete     bool    `json:"delete,omitempty"`
	Create     bool    `json:"create,omitempty"`
}

// IsDelete reports whether the action deletes an existing budget.
func (a BudgetAction) IsDelete() bool { return a.Delete && a.ID != nil }

// IsCreate reports whether the action creates a new budget.
func (a BudgetAction) IsCreate() bool { return a.Create }

// IsUpdate reports whether the action renames or re-weights an existing budget.
func (a BudgetAction) IsUpdate() bool {
	return a.ID != nil && (a.Percentage != nil || a.Name != nil)
}
