package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
	putErr error
	table  string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.table = aws.ToString(in.TableName)
	k := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.table = aws.ToString(in.TableName)
	k := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoDBStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := NewDynamoDBStore(newFakeDynamo(), "storefront_state")
		_, found, err := s.Get(ctx, "hs_demo_orders")
		if err != nil || found {
			t.Fatalf("expected not found, found=%v err=%v", found, err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		fake := newFakeDynamo()
		s := NewDynamoDBStore(fake, "storefront_state")

		if err := s.Set(ctx, "hs_demo_orders", `[{"id":"1"}]`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.table != "storefront_state" {
			t.Fatalf("unexpected table %q", fake.table)
		}
		if _, ok := fake.items["hs_demo_orders"]["updated_at"]; !ok {
			t.Fatalf("expected updated_at attribute")
		}

		v, found, err := s.Get(ctx, "hs_demo_orders")
		if err != nil || !found || v != `[{"id":"1"}]` {
			t.Fatalf("unexpected get result %q found=%v err=%v", v, found, err)
		}
	})

	t.Run("errors propagate", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.getErr = errors.New("throttled")
		fake.putErr = errors.New("throttled")
		s := NewDynamoDBStore(fake, "t")

		if _, _, err := s.Get(ctx, "k"); err == nil {
			t.Fatalf("expected get error")
		}
		if err := s.Set(ctx, "k", "v"); err == nil {
			t.Fatalf("expected set error")
		}
	})
}
