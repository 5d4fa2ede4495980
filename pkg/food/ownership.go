package food

import "FreshKeep-Backend/entities"

// CanAddNote allows note creation only for the food's owner.
func CanAddNote(callerEmail string, food *entities.Food) bool {
	return callerEmail != "" && callerEmail == food.UserEmail
}

// CanMutateFood allows update and delete for any authenticated caller,
// owner or not. That matches the live behavior; restricting it to the
// owner would be a breaking change for existing clients.
func CanMutateFood(callerEmail string, food *entities.Food) bool {
	return callerEmail != ""
}
