package models

// ShoppingItem represents a single entry on the shopping list.
type ShoppingItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is what to buy (e.g., "Broccoli"). Required.
	Name string `json:"name"`

	// DueDate is an optional free-form date the item is needed by. Empty when unset.
	DueDate string `json:"dueDate"`

	// Checked marks the item as bought. Defaults to false.
	Checked bool `json:"checked"`
}

// ShoppingItemInput is the request body for creating or updating a
// shopping list item. Nil fields were not supplied by the client.
type ShoppingItemInput struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	DueDate *string `json:"dueDate"`
	Checked *bool   `json:"checked"`
}

// Apply overwrites the fields of item that are set on the input.
// The ID is never touched.
func (in ShoppingItemInput) Apply(item *ShoppingItem) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.DueDate != nil {
		item.DueDate = *in.DueDate
	}
	if in.Checked != nil {
		item.Checked = *in.Checked
	}
}
