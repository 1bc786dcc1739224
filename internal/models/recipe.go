package models

// Recipe represents a recipe and the ingredients it needs.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string `json:"id"`

	// Name is the display name of the recipe (e.g., "Soup"). Required.
	Name string `json:"name"`

	// Ingredients is the ordered list of ingredients. May be empty but is
	// always encoded as a JSON array.
	Ingredients []string `json:"ingredients"`
}

// RecipeInput is the request body for creating or updating a recipe.
// Nil fields were not supplied by the client.
type RecipeInput struct {
	ID          *string   `json:"id"`
	Name        *string   `json:"name"`
	Ingredients *[]string `json:"ingredients"`
}

// Apply overwrites the fields of rec that are set on the input.
// The ingredient slice is copied so the caller's input can't alias stored state.
func (in RecipeInput) Apply(rec *Recipe) {
	if in.Name != nil {
		rec.Name = *in.Name
	}
	if in.Ingredients != nil {
		rec.Ingredients = CopyIngredients(*in.Ingredients)
	}
}

// CopyIngredients returns a copy of list that is never nil.
func CopyIngredients(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
