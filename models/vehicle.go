package models

import "time"

type VehicleType string

const (
	VehicleTypeEngine    VehicleType = "engine"
	VehicleTypeLadder    VehicleType = "ladder"
	VehicleTypeRescue    VehicleType = "rescue"
	VehicleTypeAmbulance VehicleType = "ambulance"
	VehicleTypeCommand   VehicleType = "command"
	VehicleTypeUtility   VehicleType = "utility"
)

type VehicleStatus string

const (
	VehicleStatusInService    VehicleStatus = "in_service"
	VehicleStatusOutOfService VehicleStatus = "out_of_service"
	VehicleStatusMaintenance  VehicleStatus = "maintenance"
)

// Vehicle is an apparatus of the station
type Vehicle struct {
	ID          string        `json:"id" dynamodbav:"id"`
	Name        string        `json:"name" dynamodbav:"name"`
	Type        VehicleType   `json:"type" dynamodbav:"type"`
	Status      VehicleStatus `json:"status" dynamodbav:"status"`
	PlateNumber string        `json:"plate_number,omitempty" dynamodbav:"plate_number,omitempty"`
	Notes       string        `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" dynamodbav:"updated_at"`
}

// CreateVehicleRequest is the body of POST /vehicles
type CreateVehicleRequest struct {
	Name        string        `json:"name" validate:"required,min=2,max=50" example:"Engine 1"`
	Type        VehicleType   `json:"type" validate:"required,oneof=engine ladder rescue ambulance command utility" example:"engine"`
	Status      VehicleStatus `json:"status,omitempty" validate:"omitempty,oneof=in_service out_of_service maintenance"`
	PlateNumber string        `json:"plate_number,omitempty" validate:"omitempty,max=20"`
	Notes       string        `json:"notes,omitempty" validate:"max=500"`
}

// UpdateVehicleRequest is the body of PUT /vehicles/:id
type UpdateVehicleRequest struct {
	Name        string        `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Type        VehicleType   `json:"type,omitempty" validate:"omitempty,oneof=engine ladder rescue ambulance command utility"`
	Status      VehicleStatus `json:"status,omitempty" validate:"omitempty,oneof=in_service out_of_service maintenance"`
	PlateNumber *string       `json:"plate_number,omitempty" validate:"omitempty,max=20"`
	Notes       *string       `json:"notes,omitempty" validate:"omitempty,max=500"`
}
