package services

import (
	"context"
	"errors"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

// TransferService records and lists phone handovers between an inventory
// supervisor and a campaign operator.
type TransferService interface {
	CreateTransfer(ctx context.Context, phoneID, supervisorID, operatorID int64) (*models.Transfer, error)
	TransfersForPhone(ctx context.Context, phoneID int64) ([]models.Transfer, error)
}

// transferService is the TransferService implementation.
type transferService struct {
	repo      repositories.TransferRepository
	phoneRepo repositories.PhoneRepository
	userRepo  repositories.UserRepository
}

// NewTransferService creates a new transferService instance.
func NewTransferService(repo repositories.TransferRepository, phoneRepo repositories.PhoneRepository, userRepo repositories.UserRepository) TransferService {
	return &transferService{repo: repo, phoneRepo: phoneRepo, userRepo: userRepo}
}

// CreateTransfer verifies the phone and the receiving operator exist, then
// records the handover.
func (s *transferService) CreateTransfer(ctx context.Context, phoneID, supervisorID, operatorID int64) (*models.Transfer, error) {
	if _, err := s.phoneRepo.GetPhoneByID(phoneID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, err
	}
	if _, err := s.userRepo.GetByID(operatorID); err != nil {
		return nil, err
	}

	transfer := &models.Transfer{
		PhoneID:      phoneID,
		SupervisorID: supervisorID,
		OperatorID:   operatorID,
	}
	if err := s.repo.Create(ctx, transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}

// TransfersForPhone verifies the phone exists and lists its handovers.
func (s *transferService) TransfersForPhone(ctx context.Context, phoneID int64) ([]models.Transfer, error) {
	if _, err := s.phoneRepo.GetPhoneByID(phoneID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, err
	}
	return s.repo.GetByPhoneID(ctx, phoneID)
}
