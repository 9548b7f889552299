// Package usecase implements the business logic for the todos feature.
package usecase

import "errors"

// ErrTodoNotFound is returned when a todo does not exist or is owned by a
// different user. The two cases are deliberately indistinguishable so ids
// cannot be probed across accounts.
var ErrTodoNotFound = errors.New("todo not found")
