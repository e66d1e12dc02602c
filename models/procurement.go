package models

import "time"

type SupplyRequestStatus string

const (
	SupplyRequestOpen    SupplyRequestStatus = "open"
	SupplyRequestAwarded SupplyRequestStatus = "awarded"
	SupplyRequestClosed  SupplyRequestStatus = "closed"
)

type BidStatus string

const (
	BidStatusSubmitted BidStatus = "submitted"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
)

// SupplyLine is one requested item of a supply request
type SupplyLine struct {
	Name     string `json:"name" dynamodbav:"name" validate:"required,max=100"`
	Quantity int    `json:"quantity" dynamodbav:"quantity" validate:"required,min=1,max=99999"`
}

// SupplyRequest is a call for supplier bids
type SupplyRequest struct {
	ID              string              `json:"id" dynamodbav:"id"`
	Title           string              `json:"title" dynamodbav:"title"`
	Description     string              `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Items           []SupplyLine        `json:"items" dynamodbav:"items"`
	Status          SupplyRequestStatus `json:"status" dynamodbav:"status"`
	AwardedBidID    string              `json:"awarded_bid_id,omitempty" dynamodbav:"awarded_bid_id,omitempty"`
	AwardedSupplier string              `json:"awarded_supplier,omitempty" dynamodbav:"awarded_supplier,omitempty"`
	CreatedBy       string              `json:"created_by" dynamodbav:"created_by"`
	CreatedAt       time.Time           `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" dynamodbav:"updated_at"`
}

// Bid is a supplier's offer against a supply request
type Bid struct {
	ID              string    `json:"id" dynamodbav:"id"`
	SupplyRequestID string    `json:"supply_request_id" dynamodbav:"supply_request_id"`
	Supplier        string    `json:"supplier" dynamodbav:"supplier"`
	Amount          Money     `json:"amount" dynamodbav:"amount"`
	DeliveryDays    int       `json:"delivery_days" dynamodbav:"delivery_days"`
	Notes           string    `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Status          BidStatus `json:"status" dynamodbav:"status"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// RankedBid is a bid positioned within a comparison
type RankedBid struct {
	*Bid
	Rank   int  `json:"rank"`
	Lowest bool `json:"lowest"`
}

// BidComparison is the body of GET /supply-requests/:id/bids/compare
type BidComparison struct {
	SupplyRequest *SupplyRequest `json:"supply_request"`
	Bids          []RankedBid    `json:"bids"`
}

// CreateSupplyRequest is the body of POST /supply-requests
type CreateSupplyRequest struct {
	Title       string       `json:"title" validate:"required,min=3,max=150"`
	Description string       `json:"description,omitempty" validate:"max=1000"`
	Items       []SupplyLine `json:"items" validate:"required,min=1,dive"`
}

// SubmitBidRequest is the body of POST /supply-requests/:id/bids
type SubmitBidRequest struct {
	Supplier     string `json:"supplier" validate:"required,min=2,max=100,supplierchars"`
	Amount       Money  `json:"amount"`
	DeliveryDays int    `json:"delivery_days" validate:"min=0,max=365"`
	Notes        string `json:"notes,omitempty" validate:"max=500"`
}

// AssignBidRequest is the body of POST /supply-requests/:id/assign
type AssignBidRequest struct {
	BidID string `json:"bidId" validate:"required"`
}
