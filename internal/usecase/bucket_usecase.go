package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrBucketNotFound   = errors.New("bucket not found")
	ErrBucketSubmitted  = errors.New("bucket already submitted")
	ErrInvalidBucketID  = errors.New("invalid bucket id")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

var (
	bucketAdjectives = []string{"Sunny", "Quiet", "Golden", "Breezy", "Cozy", "Royal", "Misty", "Bright", "Calm", "Grand"}
	bucketNouns      = []string{"Lobby", "Suite", "Terrace", "Garden", "Lagoon", "Veranda", "Harbor", "Summit", "Courtyard", "Pavilion"}
)

// friendlyBucketName returns an "Adjective Noun" pair.
func friendlyBucketName() string {
	return bucketAdjectives[rand.IntN(len(bucketAdjectives))] + " " + bucketNouns[rand.IntN(len(bucketNouns))]
}

// IBucketUseCase is the Bucket Manager: named carts a client fills before
// asking for a quote. Every operation is scoped to the owner; another
// client's bucket is reported as not found.
type IBucketUseCase interface {
	CreateBucket(ctx context.Context, ownerID, name string) (entities.Bucket, error)
	ListBuckets(ctx context.Context, ownerID string) ([]entities.Bucket, error)
	GetBucket(ctx context.Context, ownerID, bucketID string) (entities.Bucket, error)
	RenameBucket(ctx context.Context, ownerID, bucketID, name string) (entities.Bucket, error)
	DeleteBucket(ctx context.Context, ownerID, bucketID string) error
	AddItem(ctx context.Context, ownerID, bucketID, productID string, quantity int) (entities.Bucket, error)
	UpdateItem(ctx context.Context, ownerID, bucketID, productRef string, quantity int) (entities.Bucket, error)
	RemoveItem(ctx context.Context, ownerID, bucketID, productRef string) (entities.Bucket, error)
}

type BucketUseCase struct {
	repo    interfaces.IBucketRepository
	catalog interfaces.IProductCatalog
	namer   func() string
}

var _ IBucketUseCase = (*BucketUseCase)(nil)

func NewBucketUseCase(repo interfaces.IBucketRepository, catalog interfaces.IProductCatalog) *BucketUseCase {
	return &BucketUseCase{repo: repo, catalog: catalog, namer: friendlyBucketName}
}

func (u *BucketUseCase) CreateBucket(ctx context.Context, ownerID, name string) (entities.Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = u.namer()
	}

	b, err := u.repo.Create(ctx, entities.Bucket{OwnerID: ownerID, Name: name, Items: []entities.LineItem{}})
	if err != nil {
		logrus.Errorf("[bucket][usecase] create failed owner_id=%s err=%v", ownerID, err)
		return entities.Bucket{}, err
	}
	logrus.Infof("[bucket][usecase] created bucket_id=%s owner_id=%s name=%q", b.ID, ownerID, b.Name)
	return b, nil
}

func (u *BucketUseCase) ListBuckets(ctx context.Context, ownerID string) ([]entities.Bucket, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *BucketUseCase) GetBucket(ctx context.Context, ownerID, bucketID string) (entities.Bucket, error) {
	bucketID = strings.TrimSpace(bucketID)
	if bucketID == "" {
		return entities.Bucket{}, ErrInvalidBucketID
	}

	b, err := u.repo.GetByID(ctx, bucketID)
	if err != nil {
		return entities.Bucket{}, err
	}
	if b.ID == "" || b.OwnerID != ownerID {
		return entities.Bucket{}, ErrBucketNotFound
	}
	return b, nil
}

func (u *BucketUseCase) RenameBucket(ctx context.Context, ownerID, bucketID, name string) (entities.Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = u.namer()
	}
	// renaming is allowed after submission; only the items are frozen
	return u.mutate(ctx, ownerID, bucketID, false, func(b *entities.Bucket) error {
		b.Name = name
		return nil
	})
}

// DeleteBucket refuses submitted buckets: their order still points at them.
func (u *BucketUseCase) DeleteBucket(ctx context.Context, ownerID, bucketID string) error {
	b, err := u.GetBucket(ctx, ownerID, bucketID)
	if err != nil {
		return err
	}
	if b.Submitted {
		return ErrBucketSubmitted
	}

	ok, err := u.repo.Delete(ctx, b.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBucketNotFound
	}
	logrus.Infof("[bucket][usecase] deleted bucket_id=%s owner_id=%s", b.ID, ownerID)
	return nil
}

// AddItem snapshots the catalog price. A product already in the bucket gets
// its quantity incremented instead of a second line.
func (u *BucketUseCase) AddItem(ctx context.Context, ownerID, bucketID, productID string, quantity int) (entities.Bucket, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Bucket{}, ErrInvalidProductID
	}
	if quantity < 1 {
		return entities.Bucket{}, ErrInvalidQuantity
	}

	p, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return entities.Bucket{}, err
	}
	if p.ID == "" {
		return entities.Bucket{}, ErrProductNotFound
	}

	return u.mutate(ctx, ownerID, bucketID, true, func(b *entities.Bucket) error {
		if i := b.ItemIndex(p.ID); i >= 0 {
			b.Items[i].Quantity += quantity
			return nil
		}
		b.Items = append(b.Items, entities.LineItem{
			ProductRef: p.ID,
			Name:       p.Name,
			UnitPrice:  p.Price,
			Quantity:   quantity,
		})
		return nil
	})
}

// UpdateItem sets the quantity of an existing line. Unknown products are a no-op.
func (u *BucketUseCase) UpdateItem(ctx context.Context, ownerID, bucketID, productRef string, quantity int) (entities.Bucket, error) {
	if quantity < 1 {
		return entities.Bucket{}, ErrInvalidQuantity
	}
	return u.mutate(ctx, ownerID, bucketID, true, func(b *entities.Bucket) error {
		if i := b.ItemIndex(productRef); i >= 0 {
			b.Items[i].Quantity = quantity
		}
		return nil
	})
}

// RemoveItem drops a line. Unknown products are a no-op.
func (u *BucketUseCase) RemoveItem(ctx context.Context, ownerID, bucketID, productRef string) (entities.Bucket, error) {
	return u.mutate(ctx, ownerID, bucketID, true, func(b *entities.Bucket) error {
		if i := b.ItemIndex(productRef); i >= 0 {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		}
		return nil
	})
}

func (u *BucketUseCase) mutate(ctx context.Context, ownerID, bucketID string, itemsChange bool, fn func(b *entities.Bucket) error) (entities.Bucket, error) {
	bucketID = strings.TrimSpace(bucketID)
	if bucketID == "" {
		return entities.Bucket{}, ErrInvalidBucketID
	}

	updated, err := u.repo.Mutate(ctx, bucketID, func(b *entities.Bucket) error {
		if b.OwnerID != ownerID {
			return ErrBucketNotFound
		}
		if itemsChange && b.Submitted {
			return ErrBucketSubmitted
		}
		return fn(b)
	})
	if err != nil {
		return entities.Bucket{}, err
	}
	if updated.ID == "" {
		return entities.Bucket{}, ErrBucketNotFound
	}
	return updated, nil
}
