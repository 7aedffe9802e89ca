package repository

import "context"

// EnsureIndexes creates the indexes the Mongo repositories rely on, most
// importantly the unique session_id index that deduplicates purchases.
func EnsureIndexes(ctx context.Context, repos ...any) error {
	type indexed interface {
		CreateIndexes(ctx context.Context) error
	}
	for _, r := range repos {
		c, ok := r.(indexed)
		if !ok {
			continue
		}
		if err := c.CreateIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
