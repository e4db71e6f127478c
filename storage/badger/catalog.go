package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &CatalogRepository{backend: backend}, nil
}

// Close releases repository resources. Item IDs are content-based, so
// there is no sequence to release.
func (r *CatalogRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddItems adds one or more catalog items to storage.
func (r *CatalogRepository) AddItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			key := makeItemKey(item.Id)

			// Content-based IDs make re-adding the same page a duplicate.
			_, err := tx.Get(key)
			if err == nil {
				return storage.ErrDuplicateKey
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			item.InsertedAt = time.Now().UTC()
			item.UpdatedAt = item.InsertedAt

			if err := tx.Set(key, storage.MarshalCatalogItem(item)); err != nil {
				return err
			}
			if err := tx.Set(makeLabelKey(item.Label), storage.MarshalID(item.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// UpdateItems updates existing catalog items.
func (r *CatalogRepository) UpdateItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			key := makeItemKey(item.Id)

			old, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			item.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalCatalogItem(item)); err != nil {
				return err
			}

			// Move the label index entry if the label changed.
			if old.Label != item.Label {
				if err := tx.Delete(makeLabelKey(old.Label)); err != nil {
					return err
				}
				if err := tx.Set(makeLabelKey(item.Label), storage.MarshalID(item.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// DeleteItems removes catalog items by their IDs.
func (r *CatalogRepository) DeleteItems(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(id)

			item, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeLabelKey(item.Label)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetItem retrieves a single catalog item by ID.
func (r *CatalogRepository) GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error) {
	var result *core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readItem(tx, makeItemKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetItems retrieves multiple catalog items by their IDs.
// Missing items are skipped without error.
func (r *CatalogRepository) GetItems(ctx context.Context, ids ...core.ID) ([]*core.CatalogItem, error) {
	results := make([]*core.CatalogItem, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			item, err := r.readItem(tx, makeItemKey(id))
			if err != nil {
				return err
			}
			if item != nil {
				results = append(results, item)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListItems retrieves every catalog item ordered by label.
func (r *CatalogRepository) ListItems(ctx context.Context) ([]*core.CatalogItem, error) {
	var results []*core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogLabelPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			item, err := r.readItem(tx, makeItemKey(id))
			if err != nil {
				return err
			}
			if item == nil {
				// Dangling index entry; the primary record is authoritative.
				continue
			}
			results = append(results, item)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored catalog items.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogLabelPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readItem reads and unmarshals one catalog item, returning nil if absent.
func (r *CatalogRepository) readItem(tx *badger.Txn, key []byte) (*core.CatalogItem, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var item *core.CatalogItem
	err = entry.Value(func(val []byte) error {
		var err error
		item, err = storage.UnmarshalCatalogItem(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
