package services

import (
	"errors"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

// AssignmentService owns the phone↔chip assignment workflows.
type AssignmentService interface {
	// Assign seats a chip in a phone on behalf of the acting user.
	Assign(phoneID, chipID, actorID int64) (*models.Assignment, error)
	// Unassign removes a chip from a phone on behalf of the acting user.
	Unassign(phoneID, chipID, actorID int64) (*models.Assignment, error)
	// AvailableChips lists chips free for assignment, optionally only
	// those currently in ACTIVE state.
	AvailableChips(onlyActiveState bool) ([]models.Chip, error)
	// AssignmentsForPhone lists a phone's assignments, the active ones
	// first.
	AssignmentsForPhone(phoneID int64, includeRemoved bool) ([]models.AssignmentResponse, error)
}

// assignmentService is the AssignmentService implementation.
type assignmentService struct {
	repo      repositories.AssignmentRepository
	phoneRepo repositories.PhoneRepository
}

// NewAssignmentService creates a new assignmentService instance.
func NewAssignmentService(repo repositories.AssignmentRepository, phoneRepo repositories.PhoneRepository) AssignmentService {
	return &assignmentService{repo: repo, phoneRepo: phoneRepo}
}

// Assign delegates to the repository, which runs the existence,
// exclusivity and capacity checks inside the insert transaction. No checks
// are duplicated here so the invariant has a single owner.
func (s *assignmentService) Assign(phoneID, chipID, actorID int64) (*models.Assignment, error) {
	return s.repo.Assign(phoneID, chipID, actorID)
}

// Unassign delegates to the repository, which stamps the removal time on
// the unique active row for the pair.
func (s *assignmentService) Unassign(phoneID, chipID, actorID int64) (*models.Assignment, error) {
	return s.repo.Unassign(phoneID, chipID, actorID)
}

// AvailableChips lists chips with no active assignment.
func (s *assignmentService) AvailableChips(onlyActiveState bool) ([]models.Chip, error) {
	return s.repo.GetAvailableChips(onlyActiveState)
}

// AssignmentsForPhone verifies the phone exists, then lists its rows.
func (s *assignmentService) AssignmentsForPhone(phoneID int64, includeRemoved bool) ([]models.AssignmentResponse, error) {
	if _, err := s.phoneRepo.GetPhoneByID(phoneID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, err
	}
	return s.repo.GetAssignmentsByPhoneID(phoneID, includeRemoved)
}
