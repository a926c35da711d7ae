// Package psqlbuilder wraps squirrel with the PostgreSQL placeholder format,
// so repositories don't have to repeat PlaceholderFormat(squirrel.Dollar)
// on every query.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with $N placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert creates an INSERT builder with $N placeholders
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update creates an UPDATE builder with $N placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete creates a DELETE builder with $N placeholders
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
