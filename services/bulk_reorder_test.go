package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"firestation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BulkReorderTestSuite struct {
	suite.Suite
	ctx       context.Context
	submitter *MockSubmitter
	bulk      *BulkReorderer
	now       time.Time
	items     []*models.InventoryItem
}

func (suite *BulkReorderTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.submitter = &MockSubmitter{}
	suite.now = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.bulk = NewBulkReorderer(suite.submitter, newMockLogger(), nil)
	suite.bulk.now = fixedClock(suite.now)

	suite.items = []*models.InventoryItem{
		{ID: "A", Name: "Gauze Pads", Quantity: models.IntPtr(2), Threshold: models.IntPtr(10)},
		{ID: "B", Name: "Hose Clamps", Quantity: models.IntPtr(40), Threshold: models.IntPtr(10)},
		{ID: "C", Name: "Burn Gel", Quantity: models.IntPtr(0), Threshold: models.IntPtr(5)},
	}
}

func draftFor(id string) interface{} {
	return mock.MatchedBy(func(d *models.ReorderDraft) bool { return d.InventoryItemID == id })
}

func (suite *BulkReorderTestSuite) TestSubmitsOnlyLowStockAndContinuesOnFailure() {
	var order []string
	record := func(args mock.Arguments) {
		order = append(order, args.Get(1).(*models.ReorderDraft).InventoryItemID)
	}
	created := &models.ReorderRequest{ID: "r-1", InventoryItemID: "A", Status: models.ReorderStatusPending}

	suite.submitter.On("SubmitReorder", suite.ctx, draftFor("A"), "captain").Run(record).Return(created, nil).Once()
	suite.submitter.On("SubmitReorder", suite.ctx, draftFor("C"), "captain").Run(record).
		Return(nil, errors.New("supplier service unavailable")).Once()

	result, err := suite.bulk.BulkReorder(suite.ctx, []string{"A", "B", "C"}, suite.items, "captain")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), []string{"A", "C"}, order)
	suite.submitter.AssertNumberOfCalls(suite.T(), "SubmitReorder", 2)
	suite.submitter.AssertNotCalled(suite.T(), "SubmitReorder", suite.ctx, draftFor("B"), mock.Anything)

	require.Len(suite.T(), result.Successes, 1)
	assert.Equal(suite.T(), "Gauze Pads", result.Successes[0].ItemName)
	assert.Equal(suite.T(), created, result.Successes[0].Request)

	require.Len(suite.T(), result.Failures, 1)
	assert.Equal(suite.T(), "Burn Gel", result.Failures[0].ItemName)
	assert.Equal(suite.T(), "supplier service unavailable", result.Failures[0].Error)

	assert.Equal(suite.T(), []string{"Hose Clamps"}, result.Skipped)
	assert.True(suite.T(), result.SelectionCleared)
	assert.True(suite.T(), result.HasSuccess())
	assert.Contains(suite.T(), result.Message, "Created 1 reorder request(s)")
	assert.Contains(suite.T(), result.Message, "Burn Gel: supplier service unavailable")
}

func (suite *BulkReorderTestSuite) TestDraftsUseBuilderDefaults() {
	suite.submitter.On("SubmitReorder", suite.ctx, mock.Anything, "captain").
		Return(&models.ReorderRequest{ID: "r"}, nil)

	_, err := suite.bulk.BulkReorder(suite.ctx, []string{"A", "C"}, suite.items, "captain")
	require.NoError(suite.T(), err)

	first := suite.submitter.Calls[0].Arguments.Get(1).(*models.ReorderDraft)
	assert.Equal(suite.T(), 20, *first.Quantity)
	assert.Equal(suite.T(), models.PriorityMedium, first.Priority)
	assert.Equal(suite.T(), suite.now.AddDate(0, 0, 14), *first.ExpectedDate)

	second := suite.submitter.Calls[1].Arguments.Get(1).(*models.ReorderDraft)
	assert.Equal(suite.T(), 10, *second.Quantity)
	assert.Equal(suite.T(), models.PriorityUrgent, second.Priority)
}

func (suite *BulkReorderTestSuite) TestNoLowStockSelected() {
	result, err := suite.bulk.BulkReorder(suite.ctx, []string{"B"}, suite.items, "captain")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, models.ErrNoLowStockSelected)
	assert.Equal(suite.T(), "None of the selected items are low on stock", err.Error())
	suite.submitter.AssertNotCalled(suite.T(), "SubmitReorder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BulkReorderTestSuite) TestEmptySelection() {
	_, err := suite.bulk.BulkReorder(suite.ctx, nil, suite.items, "captain")
	assert.ErrorIs(suite.T(), err, models.ErrNoLowStockSelected)
}

func (suite *BulkReorderTestSuite) TestUnknownAndDuplicateSelections() {
	suite.submitter.On("SubmitReorder", suite.ctx, draftFor("A"), "captain").
		Return(&models.ReorderRequest{ID: "r-1"}, nil).Once()

	result, err := suite.bulk.BulkReorder(suite.ctx, []string{"A", "missing", "A", " "}, suite.items, "captain")
	require.NoError(suite.T(), err)

	suite.submitter.AssertNumberOfCalls(suite.T(), "SubmitReorder", 1)
	assert.Equal(suite.T(), []string{"missing"}, result.Skipped)
	assert.Empty(suite.T(), result.Failures)
}

func (suite *BulkReorderTestSuite) TestAllFailuresStillClearSelection() {
	suite.submitter.On("SubmitReorder", suite.ctx, mock.Anything, "captain").
		Return(nil, errors.New("timeout"))

	result, err := suite.bulk.BulkReorder(suite.ctx, []string{"A", "C"}, suite.items, "captain")
	require.NoError(suite.T(), err)

	assert.False(suite.T(), result.HasSuccess())
	assert.Len(suite.T(), result.Failures, 2)
	assert.True(suite.T(), result.SelectionCleared)
}

func (suite *BulkReorderTestSuite) TestInvalidDraftIsRecordedAsFailure() {
	suite.items[0].Threshold = models.IntPtr(60000)
	suite.items[0].Quantity = models.IntPtr(1)

	result, err := suite.bulk.BulkReorder(suite.ctx, []string{"A"}, suite.items, "captain")
	require.NoError(suite.T(), err)

	suite.submitter.AssertNotCalled(suite.T(), "SubmitReorder", mock.Anything, mock.Anything, mock.Anything)
	require.Len(suite.T(), result.Failures, 1)
	assert.Contains(suite.T(), result.Failures[0].Error, "Quantity cannot exceed 99,999")
}

func TestBulkReorderTestSuite(t *testing.T) {
	suite.Run(t, new(BulkReorderTestSuite))
}
