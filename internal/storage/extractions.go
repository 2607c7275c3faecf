package storage

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/hakim/wlankeys/internal/models"
	"go.etcd.io/bbolt"
)

// SaveExtraction persists an extraction metadata record and indexes it by host.
func (s *Store) SaveExtraction(meta *models.ExtractionMeta) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}

		extractions := tx.Bucket([]byte(bucketExtractions))
		if err := extractions.Put([]byte(meta.ID), data); err != nil {
			return err
		}

		// host -> []extraction_id mapping
		index := tx.Bucket([]byte(bucketExtractionIndex))
		hostKey := []byte(meta.Host)

		var ids []string
		if existing := index.Get(hostKey); existing != nil {
			if err := json.Unmarshal(existing, &ids); err != nil {
				return err
			}
		}

		found := false
		for _, id := range ids {
			if id == meta.ID {
				found = true
				break
			}
		}
		if !found {
			ids = append(ids, meta.ID)
		}

		indexData, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		return index.Put(hostKey, indexData)
	})
}

// GetExtraction retrieves an extraction metadata record by ID
func (s *Store) GetExtraction(id string) (*models.ExtractionMeta, error) {
	var meta *models.ExtractionMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		extractions := tx.Bucket([]byte(bucketExtractions))
		data := extractions.Get([]byte(id))
		if data == nil {
			return nil // Not found
		}

		meta = &models.ExtractionMeta{}
		return json.Unmarshal(data, meta)
	})

	return meta, err
}

// ListExtractions retrieves all extraction records for a host, sorted by
// StartedAt descending.
func (s *Store) ListExtractions(host string) ([]*models.ExtractionMeta, error) {
	var metas []*models.ExtractionMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		index := tx.Bucket([]byte(bucketExtractionIndex))
		data := index.Get([]byte(host))
		if data == nil {
			return nil // No extractions for this host
		}

		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}

		extractions := tx.Bucket([]byte(bucketExtractions))
		for _, id := range ids {
			raw := extractions.Get([]byte(id))
			if raw != nil {
				var meta models.ExtractionMeta
				if err := json.Unmarshal(raw, &meta); err != nil {
					return err
				}
				metas = append(metas, &meta)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Newest first
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].StartedAt.After(metas[j].StartedAt)
	})

	return metas, nil
}

// UpdateExtractionStatus updates the status of an extraction and sets
// CompletedAt when transitioning to a terminal state.
func (s *Store) UpdateExtractionStatus(id string, status models.ExtractionStatus) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		extractions := tx.Bucket([]byte(bucketExtractions))

		data := extractions.Get([]byte(id))
		if data == nil {
			return nil // Not found, no-op
		}

		var meta models.ExtractionMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}

		meta.Status = status

		if (status == models.StatusComplete || status == models.StatusFailed) && meta.CompletedAt == nil {
			now := time.Now()
			meta.CompletedAt = &now
		}

		updated, err := json.Marshal(&meta)
		if err != nil {
			return err
		}
		return extractions.Put([]byte(id), updated)
	})
}
