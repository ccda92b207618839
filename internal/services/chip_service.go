package services

import (
	"errors"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/utils"
)

// ErrChipNotFound is returned when the chip id does not resolve.
var ErrChipNotFound = errors.New("chip not found")

// ErrUnknownInitialState is returned when registration names a state that
// does not exist in the catalog.
var ErrUnknownInitialState = errors.New("initial state is not in the state catalog")

// ChipService defines the chip registry interface.
type ChipService interface {
	// RegisterChip creates the chip with its mandatory initial state
	// history entry.
	RegisterChip(chip *models.Chip, initialStateName string, note *string) (*models.Chip, error)
	GetChips(page, limit int, sortBy, sortOrder, search, state string) ([]models.Chip, int64, error)
	GetChipByID(id int64) (*models.Chip, error)
	UpdateChip(id int64, payload models.ChipUpdatePayload) (*models.Chip, error)
	DeleteChip(id int64) error
}

// chipService is the ChipService implementation.
type chipService struct {
	repo      repositories.ChipRepository
	stateRepo repositories.ChipStateRepository
}

// NewChipService creates a new chipService instance.
func NewChipService(repo repositories.ChipRepository, stateRepo repositories.ChipStateRepository) ChipService {
	return &chipService{repo: repo, stateRepo: stateRepo}
}

// RegisterChip validates formats and date ordering, resolves the initial
// state in the catalog and creates chip plus initial history entry in one
// transaction via the repository.
func (s *chipService) RegisterChip(chip *models.Chip, initialStateName string, note *string) (*models.Chip, error) {
	if err := utils.ValidateChipNumber(chip.Number); err != nil {
		return nil, err
	}
	if err := utils.ValidateIccid(chip.Iccid); err != nil {
		return nil, err
	}
	if err := utils.ValidateChipDates(chip.ActivationDate, chip.RegistrationDate); err != nil {
		return nil, err
	}

	initialState, err := s.stateRepo.GetStateByName(normalizeStateName(initialStateName))
	if err != nil {
		if errors.Is(err, repositories.ErrStateNotFound) {
			return nil, ErrUnknownInitialState
		}
		return nil, err
	}

	return s.repo.CreateChip(chip, initialState, note)
}

// GetChips forwards the listing query to the repository.
func (s *chipService) GetChips(page, limit int, sortBy, sortOrder, search, state string) ([]models.Chip, int64, error) {
	return s.repo.GetChips(page, limit, sortBy, sortOrder, search, state)
}

// GetChipByID fetches one chip, translating the repository sentinel.
func (s *chipService) GetChipByID(id int64) (*models.Chip, error) {
	chip, err := s.repo.GetChipByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, err
	}
	return chip, nil
}

// UpdateChip builds the column update set from the payload's present
// fields, re-running format checks on changed unique fields and the date
// ordering rule on the effective date pair.
func (s *chipService) UpdateChip(id int64, payload models.ChipUpdatePayload) (*models.Chip, error) {
	current, err := s.repo.GetChipByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if payload.Number != nil {
		if err := utils.ValidateChipNumber(*payload.Number); err != nil {
			return nil, err
		}
		updates["number"] = *payload.Number
	}
	if payload.Iccid != nil {
		if err := utils.ValidateIccid(*payload.Iccid); err != nil {
			return nil, err
		}
		updates["iccid"] = *payload.Iccid
	}
	if payload.Carrier != nil {
		updates["carrier"] = *payload.Carrier
	}
	if payload.LineType != nil {
		updates["line_type"] = *payload.LineType
	}

	// Date ordering is validated against the dates as they will be after
	// the update, mixing payload values with stored ones.
	activation := current.ActivationDate
	registration := current.RegistrationDate
	if payload.ActivationDate != nil {
		parsed, err := utils.ParseDate(*payload.ActivationDate)
		if err != nil {
			return nil, err
		}
		activation = &parsed
		updates["activation_date"] = &parsed
	}
	if payload.RegistrationDate != nil {
		parsed, err := utils.ParseDate(*payload.RegistrationDate)
		if err != nil {
			return nil, err
		}
		registration = &parsed
		updates["registration_date"] = &parsed
	}
	if err := utils.ValidateChipDates(activation, registration); err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return nil, errors.New("no updatable fields provided")
	}

	chip, err := s.repo.UpdateChip(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrChipNotFound
		}
		return nil, err
	}
	return chip, nil
}

// DeleteChip removes a chip; the repository rejects the delete while the
// chip is assigned, and cascades the state history when it is not.
func (s *chipService) DeleteChip(id int64) error {
	err := s.repo.DeleteChip(id)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return ErrChipNotFound
	}
	return err
}
