package interfaces

import "context"

// IKeyValueStore is the string-keyed store backing the order and bucket lists.
//
// Get reports found=false for a missing key. Implementations: in-memory,
// Redis and DynamoDB.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
