package services

import (
	"errors"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/utils"
)

// ErrPhoneNotFound is returned when the phone id does not resolve.
var ErrPhoneNotFound = errors.New("phone not found")

// ErrInvalidPhoneStatus is returned for a status value outside the known set.
var ErrInvalidPhoneStatus = errors.New("invalid phone status")

// PhoneService defines the phone registry interface.
type PhoneService interface {
	RegisterPhone(phone *models.Phone) (*models.Phone, error)
	GetPhones(page, limit int, sortBy, sortOrder, search, status string) ([]models.Phone, int64, error)
	GetPhoneByID(id int64) (*models.Phone, error)
	UpdatePhone(id int64, payload models.PhoneUpdatePayload) (*models.Phone, error)
	DeletePhone(id int64) error
}

// phoneService is the PhoneService implementation.
type phoneService struct {
	repo repositories.PhoneRepository
}

// NewPhoneService creates a new phoneService instance.
func NewPhoneService(repo repositories.PhoneRepository) PhoneService {
	return &phoneService{repo: repo}
}

// RegisterPhone validates the IMEI format before handing the record to the
// repository, which enforces uniqueness.
func (s *phoneService) RegisterPhone(phone *models.Phone) (*models.Phone, error) {
	if err := utils.ValidateImei(phone.Imei); err != nil {
		return nil, err
	}
	if phone.Status == "" {
		phone.Status = models.PhoneStatusAvailable
	}
	if !models.IsValidPhoneStatus(phone.Status) {
		return nil, ErrInvalidPhoneStatus
	}
	return s.repo.CreatePhone(phone)
}

// GetPhones forwards the listing query to the repository.
func (s *phoneService) GetPhones(page, limit int, sortBy, sortOrder, search, status string) ([]models.Phone, int64, error) {
	return s.repo.GetPhones(page, limit, sortBy, sortOrder, search, status)
}

// GetPhoneByID fetches one phone, translating the repository sentinel.
func (s *phoneService) GetPhoneByID(id int64) (*models.Phone, error) {
	phone, err := s.repo.GetPhoneByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, err
	}
	return phone, nil
}

// UpdatePhone builds the column update set from the payload's present
// fields. The same IMEI and status rules as registration apply.
func (s *phoneService) UpdatePhone(id int64, payload models.PhoneUpdatePayload) (*models.Phone, error) {
	updates := make(map[string]interface{})

	if payload.Imei != nil {
		if err := utils.ValidateImei(*payload.Imei); err != nil {
			return nil, err
		}
		updates["imei"] = *payload.Imei
	}
	if payload.Brand != nil {
		updates["brand"] = *payload.Brand
	}
	if payload.Model != nil {
		updates["model"] = *payload.Model
	}
	if payload.AcquisitionDate != nil {
		parsed, err := utils.ParseDate(*payload.AcquisitionDate)
		if err != nil {
			return nil, err
		}
		updates["acquisition_date"] = &parsed
	}
	if payload.Status != nil {
		if !models.IsValidPhoneStatus(*payload.Status) {
			return nil, ErrInvalidPhoneStatus
		}
		updates["status"] = *payload.Status
	}

	if len(updates) == 0 {
		return nil, errors.New("no updatable fields provided")
	}

	phone, err := s.repo.UpdatePhone(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, err
	}
	return phone, nil
}

// DeletePhone removes a phone; the repository rejects the delete while
// active assignments exist.
func (s *phoneService) DeletePhone(id int64) error {
	err := s.repo.DeletePhone(id)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return ErrPhoneNotFound
	}
	return err
}
