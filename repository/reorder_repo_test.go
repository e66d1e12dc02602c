package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"firestation-backend/dal"
	"firestation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReorderRepositoryTestSuite struct {
	suite.Suite
	db   *MockDatabaseClient
	repo *ReorderRepository
	ctx  context.Context
}

func (suite *ReorderRepositoryTestSuite) SetupTest() {
	suite.db = &MockDatabaseClient{}
	suite.repo = NewReorderRepository(suite.db, testConfig(), newMockLogger())
	suite.ctx = context.Background()
}

func (suite *ReorderRepositoryTestSuite) TestCreateReorder_StartsPending() {
	suite.db.On("CreateItem", suite.ctx, "test_inventory_reorders", mock.MatchedBy(func(r *models.ReorderRequest) bool {
		return r.Status == models.ReorderStatusPending && r.ID != ""
	})).Return(nil)

	reorder, err := suite.repo.CreateReorder(suite.ctx, &models.ReorderRequest{
		InventoryItemID: "item-1",
		Quantity:        20,
		Status:          models.ReorderStatusDelivered,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReorderStatusPending, reorder.Status)
	suite.db.AssertExpectations(suite.T())
}

func (suite *ReorderRepositoryTestSuite) TestListReorders_NewestFirst() {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.db.On("QueryByIndex", suite.ctx, "test_inventory_reorders", "status-index", "status", "Pending", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(5).(*[]*models.ReorderRequest) = []*models.ReorderRequest{
				{ID: "old", Status: models.ReorderStatusPending, Priority: models.PriorityMedium, CreatedAt: base},
				{ID: "new", Status: models.ReorderStatusPending, Priority: models.PriorityMedium, CreatedAt: base.Add(time.Hour)},
				{ID: "urgent", Status: models.ReorderStatusPending, Priority: models.PriorityUrgent, CreatedAt: base.Add(2 * time.Hour)},
			}
		}).Return(nil)

	reorders, err := suite.repo.ListReorders(suite.ctx, &models.ReorderFilter{
		Status:   models.ReorderStatusPending,
		Priority: models.PriorityMedium,
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reorders, 2)
	assert.Equal(suite.T(), "new", reorders[0].ID)
	assert.Equal(suite.T(), "old", reorders[1].ID)
}

func (suite *ReorderRepositoryTestSuite) TestTransitionReorder_ConditionFailed() {
	suite.db.On("UpdateItemIf", suite.ctx, "test_inventory_reorders", "id", "r-1", mock.Anything,
		models.Condition{Field: "status", Equals: "Pending"}).Return(dal.ErrConditionFailed)

	reorder, err := suite.repo.TransitionReorder(suite.ctx, "r-1", models.ReorderStatusPending,
		map[string]interface{}{"status": models.ReorderStatusApproved})
	assert.Nil(suite.T(), reorder)
	assert.True(suite.T(), errors.Is(err, models.ErrInvalidTransition))
}

func (suite *ReorderRepositoryTestSuite) TestTransitionReorder_Success() {
	suite.db.On("UpdateItemIf", suite.ctx, "test_inventory_reorders", "id", "r-1",
		mock.MatchedBy(func(u map[string]interface{}) bool {
			_, stamped := u["updated_at"]
			return stamped && u["status"] == models.ReorderStatusApproved
		}),
		models.Condition{Field: "status", Equals: "Pending"}).Return(nil)
	suite.db.On("GetItem", suite.ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.ReorderRequest) = models.ReorderRequest{ID: "r-1", Status: models.ReorderStatusApproved}
	}).Return(nil)

	reorder, err := suite.repo.TransitionReorder(suite.ctx, "r-1", models.ReorderStatusPending,
		map[string]interface{}{"status": models.ReorderStatusApproved})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReorderStatusApproved, reorder.Status)
}

func (suite *ReorderRepositoryTestSuite) inTransit() *models.ReorderRequest {
	return &models.ReorderRequest{ID: "r-1", InventoryItemID: "item-1", Quantity: 20, Status: models.ReorderStatusInTransit}
}

func (suite *ReorderRepositoryTestSuite) TestDeliverReorder_CommitsStatusAndStockTogether() {
	suite.db.On("TransactWrite", suite.ctx, mock.MatchedBy(func(ops []models.WriteOp) bool {
		if len(ops) != 2 {
			return false
		}
		reorder, stock := ops[0], ops[1]
		return reorder.TableName == "test_inventory_reorders" &&
			reorder.KeyValue == "r-1" &&
			reorder.Set["status"] == models.ReorderStatusDelivered &&
			*reorder.Condition == models.Condition{Field: "status", Equals: "In Transit"} &&
			stock.TableName == "test_inventory_items" &&
			stock.KeyValue == "item-1" &&
			stock.Add["quantity"] == 18 &&
			stock.Condition == nil
	})).Return(nil).Once()
	suite.db.On("GetItem", suite.ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.ReorderRequest) = models.ReorderRequest{ID: "r-1", Status: models.ReorderStatusDelivered}
	}).Return(nil)

	reorder, err := suite.repo.DeliverReorder(suite.ctx, suite.inTransit(),
		map[string]interface{}{"status": models.ReorderStatusDelivered, "actual_quantity": 18}, 18)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReorderStatusDelivered, reorder.Status)
	suite.db.AssertExpectations(suite.T())
}

func (suite *ReorderRepositoryTestSuite) TestDeliverReorder_NothingReceivedSkipsStock() {
	suite.db.On("TransactWrite", suite.ctx, mock.MatchedBy(func(ops []models.WriteOp) bool {
		return len(ops) == 1 && ops[0].KeyValue == "r-1"
	})).Return(nil).Once()
	suite.db.On("GetItem", suite.ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := suite.repo.DeliverReorder(suite.ctx, suite.inTransit(), map[string]interface{}{"status": models.ReorderStatusDelivered}, 0)
	require.NoError(suite.T(), err)
	suite.db.AssertExpectations(suite.T())
}

func (suite *ReorderRepositoryTestSuite) TestDeliverReorder_RejectedWrites() {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"status moved on", &dal.ConditionError{Index: 0}, models.ErrInvalidTransition},
		{"item deleted", &dal.ConditionError{Index: 1}, models.ErrNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.db.ExpectedCalls = nil
			suite.db.On("TransactWrite", suite.ctx, mock.Anything).Return(tt.err).Once()

			reorder, err := suite.repo.DeliverReorder(suite.ctx, suite.inTransit(),
				map[string]interface{}{"status": models.ReorderStatusDelivered}, 20)
			assert.Nil(suite.T(), reorder)
			assert.ErrorIs(suite.T(), err, tt.expected)
			suite.db.AssertNotCalled(suite.T(), "GetItem", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *ReorderRepositoryTestSuite) TestDeletePendingReorder() {
	suite.db.On("DeleteItemIf", suite.ctx, "test_inventory_reorders", "id", "r-1",
		models.Condition{Field: "status", Equals: "Pending"}).Return(nil)
	suite.db.On("DeleteItemIf", suite.ctx, "test_inventory_reorders", "id", "r-2",
		models.Condition{Field: "status", Equals: "Pending"}).Return(dal.ErrConditionFailed)

	assert.NoError(suite.T(), suite.repo.DeletePendingReorder(suite.ctx, "r-1"))
	err := suite.repo.DeletePendingReorder(suite.ctx, "r-2")
	assert.True(suite.T(), errors.Is(err, models.ErrReorderNotDeletable))
}

func TestReorderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReorderRepositoryTestSuite))
}
