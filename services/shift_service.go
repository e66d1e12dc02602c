package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
)

// ShiftService validates schedules against the stored schedules of the same
// date on every write, so a client working from a stale list cannot book a
// vehicle or member twice.
type ShiftService struct {
	shiftRepo repository.ShiftRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	logger    logger.Logger
	now       func() time.Time
}

func NewShiftService(shiftRepo repository.ShiftRepositoryInterface, userRepo repository.UserRepositoryInterface, log logger.Logger) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		logger:    log,
		now:       time.Now,
	}
}

func (s *ShiftService) ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error) {
	return s.shiftRepo.ListShifts(ctx, filter)
}

func (s *ShiftService) GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("shift schedule id is required")
	}
	return s.shiftRepo.GetShift(ctx, id)
}

// Validate runs the conflict checks for req without saving it. id is the
// schedule being edited, or empty for a new one.
func (s *ShiftService) Validate(ctx context.Context, id string, req *models.ShiftScheduleRequest) (map[string]string, error) {
	candidate := &models.ShiftCandidate{
		ID:      id,
		Date:    strings.TrimSpace(req.Date),
		Vehicle: strings.TrimSpace(req.Vehicle),
		Members: normalizeMembers(req.Members),
	}

	var existing []*models.ShiftSchedule
	if _, err := time.Parse(models.ShiftDateLayout, candidate.Date); err == nil {
		existing, err = s.shiftRepo.GetShiftsByDate(ctx, candidate.Date)
		if err != nil {
			return nil, err
		}
	}

	ids := append([]string{}, candidate.Members...)
	for _, other := range existing {
		ids = append(ids, other.Members...)
	}
	members, err := s.resolveMembers(ctx, ids)
	if err != nil {
		return nil, err
	}

	errs := ValidateShift(candidate, existing, members, s.now())
	if _, set := errs["members"]; !set {
		if unknown := unknownMembers(candidate.Members, members); len(unknown) > 0 {
			errs["members"] = fmt.Sprintf("Unknown staff member(s): %s", strings.Join(unknown, ", "))
		}
	}
	if candidate.Vehicle == "" {
		errs["vehicle"] = "Vehicle is required"
	}
	return errs, nil
}

func (s *ShiftService) CreateShift(ctx context.Context, req *models.ShiftScheduleRequest, createdBy string) (*models.ShiftSchedule, error) {
	errs, err := s.Validate(ctx, "", req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	return s.shiftRepo.CreateShift(ctx, &models.ShiftSchedule{
		Date:      strings.TrimSpace(req.Date),
		Vehicle:   strings.TrimSpace(req.Vehicle),
		ShiftType: req.ShiftType,
		Members:   normalizeMembers(req.Members),
		Notes:     strings.TrimSpace(req.Notes),
		CreatedBy: createdBy,
	})
}

func (s *ShiftService) UpdateShift(ctx context.Context, id string, req *models.ShiftScheduleRequest) (*models.ShiftSchedule, error) {
	current, err := s.GetShift(ctx, id)
	if err != nil {
		return nil, err
	}

	errs, err := s.Validate(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	current.Date = strings.TrimSpace(req.Date)
	current.Vehicle = strings.TrimSpace(req.Vehicle)
	current.ShiftType = req.ShiftType
	current.Members = normalizeMembers(req.Members)
	current.Notes = strings.TrimSpace(req.Notes)
	return s.shiftRepo.UpdateShift(ctx, current)
}

func (s *ShiftService) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.DeleteShift(ctx, id)
}

func (s *ShiftService) resolveMembers(ctx context.Context, ids []string) (map[string]*models.ShiftMember, error) {
	unique := normalizeMembers(ids)
	members := make(map[string]*models.ShiftMember, len(unique))
	if len(unique) == 0 {
		return members, nil
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		members[u.ID] = &models.ShiftMember{ID: u.ID, Name: u.FullName(), Title: u.Title}
	}
	return members, nil
}

// normalizeMembers trims ids and drops blanks and repeats, keeping order
func normalizeMembers(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func unknownMembers(ids []string, members map[string]*models.ShiftMember) []string {
	var unknown []string
	for _, id := range ids {
		if _, ok := members[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
