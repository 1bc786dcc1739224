// Package models defines the domain records for the shopping list service.
//
// # Entities
//
//   - ShoppingItem: one entry on the shopping list
//   - Recipe: a named recipe with an ordered ingredient list
//
// Every entity carries a server-assigned ID (UUID format) that never changes
// after creation.
//
// # Inputs
//
// Request bodies decode into ShoppingItemInput and RecipeInput. Their fields
// are pointers so that "not supplied" can be told apart from a zero value:
// Create requires some of them, Update overwrites only the non-nil ones.
package models
