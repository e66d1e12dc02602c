package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
)

type ProcurementService struct {
	repo   repository.ProcurementRepositoryInterface
	logger logger.Logger
}

func NewProcurementService(repo repository.ProcurementRepositoryInterface, log logger.Logger) *ProcurementService {
	return &ProcurementService{
		repo:   repo,
		logger: log,
	}
}

func (s *ProcurementService) CreateSupplyRequest(ctx context.Context, req *models.CreateSupplyRequest, createdBy string) (*models.SupplyRequest, error) {
	return s.repo.CreateSupplyRequest(ctx, &models.SupplyRequest{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Items:       req.Items,
		CreatedBy:   createdBy,
	})
}

func (s *ProcurementService) GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error) {
	return s.repo.GetSupplyRequest(ctx, id)
}

func (s *ProcurementService) ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error) {
	return s.repo.ListSupplyRequests(ctx, status)
}

// SubmitBid records a supplier's offer on an open request
func (s *ProcurementService) SubmitBid(ctx context.Context, requestID string, req *models.SubmitBidRequest) (*models.Bid, error) {
	if !req.Amount.IsPositive() {
		return nil, NewValidationError(map[string]string{"amount": "Amount must be greater than 0"})
	}

	request, err := s.repo.GetSupplyRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.SupplyRequestOpen {
		return nil, fmt.Errorf("supply request %s is %s: %w", requestID, request.Status, models.ErrRequestNotOpen)
	}

	return s.repo.CreateBid(ctx, &models.Bid{
		SupplyRequestID: requestID,
		Supplier:        strings.TrimSpace(req.Supplier),
		Amount:          models.NewMoney(req.Amount.Round(2)),
		DeliveryDays:    req.DeliveryDays,
		Notes:           strings.TrimSpace(req.Notes),
	})
}

// CompareBids returns the request's bids ranked cheapest first
func (s *ProcurementService) CompareBids(ctx context.Context, requestID string) (*models.BidComparison, error) {
	request, err := s.repo.GetSupplyRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	bids, err := s.repo.ListBids(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &models.BidComparison{SupplyRequest: request, Bids: RankBids(bids)}, nil
}

// RankBids orders bids by amount, then delivery time, then submission time.
// The first bid is flagged lowest.
func RankBids(bids []*models.Bid) []models.RankedBid {
	sorted := append([]*models.Bid{}, bids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := a.Amount.Cmp(b.Amount.Decimal); c != 0 {
			return c < 0
		}
		if a.DeliveryDays != b.DeliveryDays {
			return a.DeliveryDays < b.DeliveryDays
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	ranked := make([]models.RankedBid, len(sorted))
	for i, bid := range sorted {
		ranked[i] = models.RankedBid{Bid: bid, Rank: i + 1, Lowest: i == 0}
	}
	return ranked
}

// AssignBid awards the request to bidID, accepting that bid and rejecting the rest
func (s *ProcurementService) AssignBid(ctx context.Context, requestID, bidID string) (*models.SupplyRequest, error) {
	bids, err := s.repo.ListBids(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var winner *models.Bid
	for _, bid := range bids {
		if bid.ID == bidID {
			winner = bid
			break
		}
	}
	if winner == nil {
		return nil, fmt.Errorf("bid %s on supply request %s: %w", bidID, requestID, models.ErrNotFound)
	}

	awarded, err := s.repo.AwardSupplyRequest(ctx, requestID, winner, bids)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Supply request %s awarded to %s (bid %s)", requestID, winner.Supplier, winner.ID)
	return awarded, nil
}
