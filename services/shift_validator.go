package services

import (
	"fmt"
	"strings"
	"time"

	"firestation-backend/models"
)

var leadershipTitles = []string{"captain", "chief", "officer", "supervisor"}

// IsLeadershipTitle reports whether title names a rank that may lead a crew
func IsLeadershipTitle(title string) bool {
	t := strings.ToLower(title)
	for _, keyword := range leadershipTitles {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

// CanAddMember reports whether one more member fits on a crew of current size
func CanAddMember(current []string) bool {
	return len(current) < models.MaxShiftMembers
}

// ValidateShift checks a candidate schedule against the other schedules
// already booked. members resolves staff ids; unknown ids are reported by id.
// The returned map is keyed by date, members and vehicle and is empty when the
// candidate is valid. A crew composition problem and member conflicts share
// the members message.
func ValidateShift(candidate *models.ShiftCandidate, existing []*models.ShiftSchedule, members map[string]*models.ShiftMember, today time.Time) map[string]string {
	errs := map[string]string{}

	if msg := checkShiftDate(candidate.Date, today); msg != "" {
		errs["date"] = msg
	}
	if msg := checkComposition(candidate.Members, members); msg != "" {
		errs["members"] = msg
	}

	for _, other := range existing {
		if other == nil || other.Date != candidate.Date {
			continue
		}
		if candidate.ID != "" && other.ID == candidate.ID {
			continue
		}
		if _, set := errs["vehicle"]; !set && strings.EqualFold(other.Vehicle, candidate.Vehicle) {
			errs["vehicle"] = fmt.Sprintf("%s is already scheduled on %s", candidate.Vehicle, candidate.Date)
		}
	}

	if busy := conflictingMembers(candidate, existing, members); len(busy) > 0 {
		conflict := fmt.Sprintf("Already scheduled on %s: %s", candidate.Date, strings.Join(busy, ", "))
		if composition, set := errs["members"]; set {
			conflict = composition + ". " + conflict
		}
		errs["members"] = conflict
	}
	return errs
}

func checkShiftDate(date string, today time.Time) string {
	if strings.TrimSpace(date) == "" {
		return "Date is required"
	}
	day, err := time.ParseInLocation(models.ShiftDateLayout, date, today.Location())
	if err != nil {
		return "Date must be in YYYY-MM-DD format"
	}
	if day.Before(truncateDay(today)) {
		return "Shift date cannot be in the past"
	}
	return ""
}

func checkComposition(ids []string, members map[string]*models.ShiftMember) string {
	if len(ids) == 0 {
		return "At least one team member is required"
	}
	if len(ids) > models.MaxShiftMembers {
		return fmt.Sprintf("A shift cannot have more than %d members", models.MaxShiftMembers)
	}
	for _, id := range ids {
		if m, ok := members[id]; ok && IsLeadershipTitle(m.Title) {
			return ""
		}
	}
	return "Team must include at least one captain, chief, officer or supervisor"
}

// conflictingMembers lists, in candidate order, members already on another
// schedule for the same date
func conflictingMembers(candidate *models.ShiftCandidate, existing []*models.ShiftSchedule, members map[string]*models.ShiftMember) []string {
	booked := map[string]bool{}
	for _, other := range existing {
		if other == nil || other.Date != candidate.Date {
			continue
		}
		if candidate.ID != "" && other.ID == candidate.ID {
			continue
		}
		for _, id := range other.Members {
			booked[id] = true
		}
	}

	var names []string
	reported := map[string]bool{}
	for _, id := range candidate.Members {
		if !booked[id] || reported[id] {
			continue
		}
		reported[id] = true
		if m, ok := members[id]; ok && m.Name != "" {
			names = append(names, m.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
