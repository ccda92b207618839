package services

import (
	"errors"
	"strings"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

// ErrEmptyStateName is returned when a catalog write carries a blank name.
var ErrEmptyStateName = errors.New("state name must not be empty")

// ChipStateService owns the state catalog and the state ledger.
type ChipStateService interface {
	GetStates() ([]models.ChipState, error)
	CreateState(name string) (*models.ChipState, error)
	UpdateState(id int64, name string) (*models.ChipState, error)
	DeleteState(id int64) error

	// RecordStateChange moves a chip into a different catalog state,
	// appending a ledger entry. A no-op transition is rejected.
	RecordStateChange(chipID int64, stateName string, note *string) (*models.ChipStateLog, error)
	// History returns the chip's state ledger, most recent first.
	History(chipID int64) ([]models.ChipStateLogResponse, error)
}

// chipStateService is the ChipStateService implementation.
type chipStateService struct {
	repo     repositories.ChipStateRepository
	chipRepo repositories.ChipRepository
}

// NewChipStateService creates a new chipStateService instance.
func NewChipStateService(repo repositories.ChipStateRepository, chipRepo repositories.ChipRepository) ChipStateService {
	return &chipStateService{repo: repo, chipRepo: chipRepo}
}

// normalizeStateName trims and uppercases, keeping the catalog consistent
// with the seeded names.
func normalizeStateName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// GetStates returns the full state catalog.
func (s *chipStateService) GetStates() ([]models.ChipState, error) {
	return s.repo.GetStates()
}

// CreateState adds a catalog state.
func (s *chipStateService) CreateState(name string) (*models.ChipState, error) {
	normalized := normalizeStateName(name)
	if normalized == "" {
		return nil, ErrEmptyStateName
	}
	return s.repo.CreateState(&models.ChipState{Name: normalized})
}

// UpdateState renames a catalog state.
func (s *chipStateService) UpdateState(id int64, name string) (*models.ChipState, error) {
	normalized := normalizeStateName(name)
	if normalized == "" {
		return nil, ErrEmptyStateName
	}
	return s.repo.UpdateState(id, normalized)
}

// DeleteState removes a catalog state; the repository blocks the delete
// while ledger entries reference it.
func (s *chipStateService) DeleteState(id int64) error {
	return s.repo.DeleteState(id)
}

// RecordStateChange resolves the target state and appends the transition.
func (s *chipStateService) RecordStateChange(chipID int64, stateName string, note *string) (*models.ChipStateLog, error) {
	state, err := s.repo.GetStateByName(normalizeStateName(stateName))
	if err != nil {
		return nil, err
	}

	stateLog, err := s.repo.RecordStateChange(chipID, state.ID, note)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, err
	}
	return stateLog, nil
}

// History checks the chip exists and returns its ledger.
func (s *chipStateService) History(chipID int64) ([]models.ChipStateLogResponse, error) {
	if _, err := s.chipRepo.GetChipByID(chipID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, err
	}
	return s.repo.GetHistoryByChipID(chipID)
}
