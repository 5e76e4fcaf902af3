package mealplan

import "errors"

// Domain errors for saved lists and plan ingestion

var (
	ErrTitleRequired   = errors.New("saved list title is required")
	ErrTitleTooLong    = errors.New("saved list title must not exceed 200 characters")
	ErrInvalidListType = errors.New("saved list type must be meal_plan or shopping_list")

	ErrSavedListNotFound = errors.New("saved list not found")
	ErrNotOwner          = errors.New("only the owner can modify a saved list")
)
