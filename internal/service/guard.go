package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

// checkCNICAvailable rejects a write whose CNIC is already held by another
// record. Pass uuid.Nil as excludeID for new records.
func (s *Service) checkCNICAvailable(ctx context.Context, cnic string, excludeID uuid.UUID) error {
	exists, err := s.repo.CNICExists(ctx, cnic, excludeID)
	if err != nil {
		return fmt.Errorf("check cnic: %w", err)
	}

	if exists {
		s.metrics.IncConflict("cnic")
		return fmt.Errorf("%w: CNIC %s already exists", entity.ErrAlreadyExists, cnic)
	}

	return nil
}

func (s *Service) checkPassIDAvailable(
	ctx context.Context, category entity.Category, passID string, excludeID uuid.UUID) error {
	exists, err := s.repo.PassIDExists(ctx, category, passID, excludeID)
	if err != nil {
		return fmt.Errorf("check pass id: %w", err)
	}

	if exists {
		s.metrics.IncConflict("pass_id")
		return fmt.Errorf("%w: pass ID %s already exists for category '%s'",
			entity.ErrAlreadyExists, passID, category)
	}

	return nil
}

// batchKeys holds the uniqueness sets for one bulk import: seeded from a
// single fetch of all persisted keys, then extended with every accepted row
// so later rows collide with earlier ones before anything is written.
type batchKeys struct {
	cnics   map[string]struct{}
	passIDs map[entity.Category]map[string]struct{}
}

func (s *Service) loadBatchKeys(ctx context.Context) (*batchKeys, error) {
	persisted, err := s.repo.PassKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pass keys: %w", err)
	}

	keys := &batchKeys{
		cnics:   make(map[string]struct{}, len(persisted)),
		passIDs: make(map[entity.Category]map[string]struct{}),
	}

	for _, key := range persisted {
		keys.add(key.Category, key.PassID, key.CNIC)
	}

	return keys, nil
}

func (k *batchKeys) hasCNIC(cnic string) bool {
	_, ok := k.cnics[cnic]
	return ok
}

func (k *batchKeys) hasPassID(category entity.Category, passID string) bool {
	_, ok := k.passIDs[category][passID]
	return ok
}

func (k *batchKeys) add(category entity.Category, passID, cnic string) {
	if cnic != "" {
		k.cnics[cnic] = struct{}{}
	}

	if _, ok := k.passIDs[category]; !ok {
		k.passIDs[category] = make(map[string]struct{})
	}

	k.passIDs[category][passID] = struct{}{}
}
