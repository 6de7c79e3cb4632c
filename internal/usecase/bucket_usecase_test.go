package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ndaje_storefront/internal/adapter/persistence/repository"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/infrastructure/database"
	mock_interfaces "ndaje_storefront/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var trialProduct = entities.Product{ID: "1", Name: "Premium Bath Towels", Price: decimal.NewFromInt(1000)}

func newBucketFixture(t *testing.T) (*BucketUseCase, *mock_interfaces.MockIProductCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	catalog.EXPECT().GetByID(gomock.Any(), trialProduct.ID).Return(trialProduct, nil).AnyTimes()
	catalog.EXPECT().GetByID(gomock.Any(), gomock.Not(trialProduct.ID)).Return(entities.Product{}, nil).AnyTimes()

	repo := repository.NewBucketKVRepository(database.NewMemoryStore(), "")
	uc := NewBucketUseCase(repo, catalog)
	uc.namer = func() string { return "Sunny Lobby" }
	return uc, catalog
}

func TestBucketUseCase_CreateBucket(t *testing.T) {
	ctx := context.Background()
	uc, _ := newBucketFixture(t)

	t.Run("blank name gets a friendly one", func(t *testing.T) {
		b, err := uc.CreateBucket(ctx, "u-1", "  ")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if b.Name != "Sunny Lobby" || b.ID == "" || len(b.Items) != 0 || b.Submitted {
			t.Fatalf("unexpected bucket %+v", b)
		}
	})

	t.Run("explicit name is trimmed", func(t *testing.T) {
		b, err := uc.CreateBucket(ctx, "u-1", "  Trial ")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if b.Name != "Trial" {
			t.Fatalf("expected Trial, got %q", b.Name)
		}
	})

	t.Run("default namer uses the vocabulary", func(t *testing.T) {
		parts := strings.Split(friendlyBucketName(), " ")
		if len(parts) != 2 {
			t.Fatalf("expected adjective and noun, got %v", parts)
		}
	})
}

func TestBucketUseCase_AddItem(t *testing.T) {
	ctx := context.Background()
	uc, _ := newBucketFixture(t)
	b, _ := uc.CreateBucket(ctx, "u-1", "Trial")

	t.Run("repeated adds merge into one line", func(t *testing.T) {
		got, err := uc.AddItem(ctx, "u-1", b.ID, "1", 2)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !got.Subtotal().Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected subtotal 2000, got %s", got.Subtotal())
		}

		got, err = uc.AddItem(ctx, "u-1", b.ID, "1", 3)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Quantity != 5 {
			t.Fatalf("expected one line with quantity 5, got %+v", got.Items)
		}
		if !got.Subtotal().Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected subtotal 5000, got %s", got.Subtotal())
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		if _, err := uc.AddItem(ctx, "u-1", b.ID, "1", 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		if _, err := uc.AddItem(ctx, "u-1", b.ID, "999", 1); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("other owner's bucket", func(t *testing.T) {
		if _, err := uc.AddItem(ctx, "u-2", b.ID, "1", 1); !errors.Is(err, ErrBucketNotFound) {
			t.Fatalf("expected ErrBucketNotFound, got %v", err)
		}
	})

	t.Run("unknown bucket", func(t *testing.T) {
		if _, err := uc.AddItem(ctx, "u-1", "nope", "1", 1); !errors.Is(err, ErrBucketNotFound) {
			t.Fatalf("expected ErrBucketNotFound, got %v", err)
		}
	})
}

func TestBucketUseCase_UpdateAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	uc, _ := newBucketFixture(t)
	b, _ := uc.CreateBucket(ctx, "u-1", "Trial")
	_, _ = uc.AddItem(ctx, "u-1", b.ID, "1", 2)

	t.Run("update sets quantity", func(t *testing.T) {
		got, err := uc.UpdateItem(ctx, "u-1", b.ID, "1", 7)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.Items[0].Quantity != 7 {
			t.Fatalf("expected quantity 7, got %d", got.Items[0].Quantity)
		}
	})

	t.Run("update missing product is a no-op", func(t *testing.T) {
		got, err := uc.UpdateItem(ctx, "u-1", b.ID, "42", 3)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Quantity != 7 {
			t.Fatalf("expected bucket unchanged, got %+v", got.Items)
		}
	})

	t.Run("remove missing product is a no-op", func(t *testing.T) {
		got, err := uc.RemoveItem(ctx, "u-1", b.ID, "42")
		if err != nil || len(got.Items) != 1 {
			t.Fatalf("expected bucket unchanged, got %+v err=%v", got.Items, err)
		}
	})

	t.Run("remove drops the line", func(t *testing.T) {
		got, err := uc.RemoveItem(ctx, "u-1", b.ID, "1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got.Items) != 0 || !got.Subtotal().IsZero() {
			t.Fatalf("expected empty bucket, got %+v", got.Items)
		}
	})
}

func TestBucketUseCase_SubmittedBucketIsFrozen(t *testing.T) {
	ctx := context.Background()
	uc, _ := newBucketFixture(t)
	b, _ := uc.CreateBucket(ctx, "u-1", "Trial")
	_, _ = uc.AddItem(ctx, "u-1", b.ID, "1", 1)
	_, _ = uc.repo.Mutate(ctx, b.ID, func(b *entities.Bucket) error {
		b.Submitted = true
		b.SubmittedOrderID = "order-1"
		return nil
	})

	if _, err := uc.AddItem(ctx, "u-1", b.ID, "1", 1); !errors.Is(err, ErrBucketSubmitted) {
		t.Fatalf("expected ErrBucketSubmitted on add, got %v", err)
	}
	if _, err := uc.RemoveItem(ctx, "u-1", b.ID, "1"); !errors.Is(err, ErrBucketSubmitted) {
		t.Fatalf("expected ErrBucketSubmitted on remove, got %v", err)
	}
	if err := uc.DeleteBucket(ctx, "u-1", b.ID); !errors.Is(err, ErrBucketSubmitted) {
		t.Fatalf("expected ErrBucketSubmitted on delete, got %v", err)
	}

	renamed, err := uc.RenameBucket(ctx, "u-1", b.ID, "Archived")
	if err != nil || renamed.Name != "Archived" {
		t.Fatalf("expected rename allowed, got %+v err=%v", renamed, err)
	}
}

func TestBucketUseCase_ListGetDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newBucketFixture(t)
	a, _ := uc.CreateBucket(ctx, "u-1", "A")
	_, _ = uc.CreateBucket(ctx, "u-2", "B")

	list, err := uc.ListBuckets(ctx, "u-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 bucket, got %d err=%v", len(list), err)
	}
	if _, err := uc.GetBucket(ctx, "u-2", a.ID); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound, got %v", err)
	}
	if _, err := uc.GetBucket(ctx, "u-1", " "); !errors.Is(err, ErrInvalidBucketID) {
		t.Fatalf("expected ErrInvalidBucketID, got %v", err)
	}
	if err := uc.DeleteBucket(ctx, "u-1", a.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := uc.GetBucket(ctx, "u-1", a.ID); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound after delete, got %v", err)
	}
}

func TestBucketUseCase_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBucketRepository(ctrl)
	uc := NewBucketUseCase(repo, nil)

	boom := errors.New("db")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Bucket{}, boom)
	if _, err := uc.CreateBucket(context.Background(), "u-1", "x"); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}

	repo.EXPECT().Mutate(gomock.Any(), "b-1", gomock.Any()).Return(entities.Bucket{}, boom)
	if _, err := uc.RenameBucket(context.Background(), "u-1", "b-1", "y"); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
}
