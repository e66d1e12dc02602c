package repository

import (
	"context"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
	"fmt"
	"sort"
	"time"
)

type ProcurementRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewProcurementRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ProcurementRepository {
	return &ProcurementRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ProcurementRepository) requestTable() string {
	return r.config.TableName(TableSupplyRequests)
}

func (r *ProcurementRepository) bidTable() string {
	return r.config.TableName(TableBids)
}

func (r *ProcurementRepository) CreateSupplyRequest(ctx context.Context, request *models.SupplyRequest) (*models.SupplyRequest, error) {
	r.logger.Infof("Creating supply request: %s", request.Title)

	now := time.Now()
	request.ID = utils.GenerateUUID()
	request.Status = models.SupplyRequestOpen
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.requestTable(), request); err != nil {
		r.logger.Errorf("Failed to create supply request: %v", err)
		return nil, fmt.Errorf("failed to create supply request: %w", err)
	}
	return request, nil
}

func (r *ProcurementRepository) GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error) {
	request := &models.SupplyRequest{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.requestTable(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get supply request %s: %w", id, err)
	}
	return request, nil
}

// ListSupplyRequests returns requests newest first; an empty status lists all
func (r *ProcurementRepository) ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error) {
	var requests []*models.SupplyRequest
	var err error
	if status != "" {
		err = r.db.QueryByIndex(ctx, r.requestTable(), "status-index", "status", string(status), &requests)
	} else {
		err = r.db.Scan(ctx, r.requestTable(), &requests)
	}
	if err != nil {
		r.logger.Errorf("Failed to list supply requests: %v", err)
		return nil, fmt.Errorf("failed to list supply requests: %w", err)
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

// AwardSupplyRequest marks an open request awarded to winner, accepts winner
// and rejects the other bids in one transaction. A request that is no longer
// open yields models.ErrRequestNotOpen.
func (r *ProcurementRepository) AwardSupplyRequest(ctx context.Context, id string, winner *models.Bid, bids []*models.Bid) (*models.SupplyRequest, error) {
	r.logger.Infof("Awarding supply request %s to bid %s (%s)", id, winner.ID, winner.Supplier)

	now := time.Now()
	ops := make([]models.WriteOp, 0, len(bids)+1)
	ops = append(ops, models.WriteOp{
		TableName: r.requestTable(),
		KeyValue:  id,
		Set: map[string]interface{}{
			"status":           models.SupplyRequestAwarded,
			"awarded_bid_id":   winner.ID,
			"awarded_supplier": winner.Supplier,
			"updated_at":       now,
		},
		Condition: &models.Condition{Field: "status", Equals: string(models.SupplyRequestOpen)},
	})
	for _, bid := range bids {
		status := models.BidStatusRejected
		if bid.ID == winner.ID {
			status = models.BidStatusAccepted
		}
		ops = append(ops, models.WriteOp{
			TableName: r.bidTable(),
			KeyValue:  bid.ID,
			Set:       map[string]interface{}{"status": status, "updated_at": now},
		})
	}

	if err := r.db.TransactWrite(ctx, ops); err != nil {
		switch failed := dal.FailedWrite(err); {
		case failed == 0:
			return nil, fmt.Errorf("supply request %s: %w", id, models.ErrRequestNotOpen)
		case failed > 0:
			return nil, fmt.Errorf("bid %s on supply request %s: %w", bids[failed-1].ID, id, models.ErrNotFound)
		}
		r.logger.Errorf("Failed to award supply request %s: %v", id, err)
		return nil, fmt.Errorf("failed to award supply request %s: %w", id, err)
	}
	return r.GetSupplyRequest(ctx, id)
}

func (r *ProcurementRepository) CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	r.logger.Infof("Creating bid from %s on supply request %s", bid.Supplier, bid.SupplyRequestID)

	now := time.Now()
	bid.ID = utils.GenerateUUID()
	bid.Status = models.BidStatusSubmitted
	bid.CreatedAt = now
	bid.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.bidTable(), bid); err != nil {
		r.logger.Errorf("Failed to create bid: %v", err)
		return nil, fmt.Errorf("failed to create bid: %w", err)
	}
	return bid, nil
}

func (r *ProcurementRepository) ListBids(ctx context.Context, supplyRequestID string) ([]*models.Bid, error) {
	var bids []*models.Bid
	if err := r.db.QueryByIndex(ctx, r.bidTable(), "supply_request_id-index", "supply_request_id", supplyRequestID, &bids); err != nil {
		r.logger.Errorf("Failed to list bids for %s: %v", supplyRequestID, err)
		return nil, fmt.Errorf("failed to list bids for %s: %w", supplyRequestID, err)
	}
	return bids, nil
}
