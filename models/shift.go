package models

import "time"

// ShiftType is the kind of shift
type ShiftType string

const (
	ShiftTypeDay     ShiftType = "Day"
	ShiftTypeNight   ShiftType = "Night"
	ShiftType24Hour  ShiftType = "24-Hour"
	ShiftTypeStandby ShiftType = "Standby"
)

const (
	// ShiftDateLayout is the wire format of ShiftSchedule.Date
	ShiftDateLayout = "2006-01-02"
	MaxShiftMembers = 8
)

// ShiftSchedule assigns a crew to a vehicle for a date
type ShiftSchedule struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Date      string    `json:"date" dynamodbav:"date"`
	Vehicle   string    `json:"vehicle" dynamodbav:"vehicle"`
	ShiftType ShiftType `json:"shiftType" dynamodbav:"shift_type"`
	Members   []string  `json:"members" dynamodbav:"members"`
	Notes     string    `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty" dynamodbav:"created_by,omitempty"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// ShiftScheduleRequest is the body of POST/PUT /shift-schedules
type ShiftScheduleRequest struct {
	Date      string    `json:"date" validate:"required"`
	Vehicle   string    `json:"vehicle" validate:"required"`
	ShiftType ShiftType `json:"shiftType" validate:"required,oneof=Day Night 24-Hour Standby"`
	Members   []string  `json:"members"`
	Notes     string    `json:"notes,omitempty" validate:"max=500"`
}

// ShiftCandidate is a proposed schedule under validation. ID is empty for a new schedule.
type ShiftCandidate struct {
	ID      string
	Date    string
	Vehicle string
	Members []string
}

// ShiftMember is the part of a staff record the shift validator needs
type ShiftMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ShiftScheduleListResponse is the body of GET /shift-schedules
type ShiftScheduleListResponse struct {
	Schedules []*ShiftSchedule `json:"schedules"`
}

// ShiftFilter narrows schedule lists
type ShiftFilter struct {
	Date     string `json:"date,omitempty"`
	Vehicle  string `json:"vehicle,omitempty"`
	MemberID string `json:"member_id,omitempty"`
}
