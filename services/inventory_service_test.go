package services

import (
	"context"
	"math"
	"testing"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *MockInventoryRepository
	submitter *MockSubmitter
	metrics   *metrics.Metrics
	service   *InventoryService
	now       time.Time
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = &MockInventoryRepository{}
	suite.submitter = &MockSubmitter{}
	suite.metrics = metrics.New()
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service = NewInventoryService(suite.repo, suite.submitter, newMockLogger(), suite.metrics)
	suite.service.now = fixedClock(suite.now)
	suite.service.bulk.now = fixedClock(suite.now)
}

func (suite *InventoryServiceTestSuite) stock() []*models.InventoryItem {
	expired := suite.now.AddDate(0, 0, -1)
	return []*models.InventoryItem{
		{ID: "1", Name: "Bandages", Quantity: models.IntPtr(1), Threshold: models.IntPtr(5)},
		{ID: "2", Name: "Cold Packs", Quantity: models.IntPtr(9), Threshold: models.IntPtr(5)},
		{ID: "3", Name: "Epinephrine", Quantity: models.IntPtr(2), Threshold: models.IntPtr(4), ExpireDate: &expired},
		{ID: "4", Name: "Flares", Quantity: models.IntPtr(30), Threshold: models.IntPtr(10)},
	}
}

func (suite *InventoryServiceTestSuite) TestListItems_ServerSideLowStockFilter() {
	yes := true
	filter := &models.InventoryFilter{IsLowStock: &yes}
	suite.repo.On("ListItems", suite.ctx, filter).Return(suite.stock(), nil)

	items, pagination, err := suite.service.ListItems(suite.ctx, filter, 1, 1)
	require.NoError(suite.T(), err)

	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), "Bandages", items[0].Name)
	assert.True(suite.T(), items[0].LowStock)
	assert.Equal(suite.T(), 2, pagination.Total)
	assert.Equal(suite.T(), 2, pagination.TotalPages)
	assert.True(suite.T(), pagination.HasNext)
}

func (suite *InventoryServiceTestSuite) TestListItems_PageBeyondEnd() {
	suite.repo.On("ListItems", suite.ctx, mock.Anything).Return(suite.stock(), nil)

	items, pagination, err := suite.service.ListItems(suite.ctx, &models.InventoryFilter{}, 5, 10)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), items)
	assert.Equal(suite.T(), 4, pagination.Total)
}

func (suite *InventoryServiceTestSuite) TestListItems_HugePageIsEmpty() {
	suite.repo.On("ListItems", suite.ctx, mock.Anything).Return(suite.stock(), nil)

	items, pagination, err := suite.service.ListItems(suite.ctx, &models.InventoryFilter{}, math.MaxInt, 10)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), items)
	assert.Equal(suite.T(), 1, pagination.TotalPages)
	assert.False(suite.T(), pagination.HasNext)
}

func (suite *InventoryServiceTestSuite) TestBulkReorder_LoadsSelectedItems() {
	ids := []string{"1", "2"}
	suite.repo.On("GetItemsByIDs", suite.ctx, ids).Return(suite.stock()[:2], nil)
	suite.submitter.On("SubmitReorder", suite.ctx, draftFor("1"), "jmiller").Return(&models.ReorderRequest{ID: "r-1"}, nil)

	result, err := suite.service.BulkReorder(suite.ctx, ids, "jmiller")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Successes, 1)
	assert.Equal(suite.T(), []string{"Cold Packs"}, result.Skipped)

	series, err := testutil.GatherAndCount(suite.metrics.Registry(), "firestation_bulk_reorder_items_total")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, series)
}

func (suite *InventoryServiceTestSuite) TestSweepStock_PublishesGauges() {
	suite.repo.On("ListItems", suite.ctx, (*models.InventoryFilter)(nil)).Return(suite.stock(), nil)

	report, err := suite.service.SweepStock(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, report.LowStockCount)
	assert.Equal(suite.T(), 1, report.ExpiredCount)

	series, err := testutil.GatherAndCount(suite.metrics.Registry(), "firestation_inventory_items")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, series)
}

func (suite *InventoryServiceTestSuite) TestCreateItem_DefaultsThreshold() {
	suite.repo.On("CreateItem", suite.ctx, mock.MatchedBy(func(i *models.InventoryItem) bool {
		return i.Threshold != nil && *i.Threshold == 0 && i.Name == "Axe" && i.CreatedBy == "u-1"
	})).Return(&models.InventoryItem{ID: "9", Name: "Axe", Quantity: models.IntPtr(0), Threshold: models.IntPtr(0)}, nil)

	created, err := suite.service.CreateItem(suite.ctx, &models.CreateInventoryItemRequest{
		Name:     " Axe ",
		Category: "Tools",
		Quantity: models.IntPtr(0),
		Location: "Engine 1",
	}, "u-1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), created.LowStock)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_NothingToUpdate() {
	_, err := suite.service.UpdateItem(suite.ctx, "1", &models.UpdateInventoryItemRequest{})
	_, ok := IsValidationError(err)
	assert.True(suite.T(), ok)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
