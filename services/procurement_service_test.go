package services

import (
	"context"
	"testing"
	"time"

	"firestation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProcurementServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *MockProcurementRepository
	service *ProcurementService
	bids    []*models.Bid
}

func (suite *ProcurementServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = &MockProcurementRepository{}
	suite.service = NewProcurementService(suite.repo, newMockLogger())

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.bids = []*models.Bid{
		{ID: "b-1", Supplier: "Metro Safety", Amount: models.MustMoney("1250.00"), DeliveryDays: 10, CreatedAt: base},
		{ID: "b-2", Supplier: "Acme Fire", Amount: models.MustMoney("980.50"), DeliveryDays: 14, CreatedAt: base.Add(time.Hour)},
		{ID: "b-3", Supplier: "Blue Line", Amount: models.MustMoney("980.5"), DeliveryDays: 7, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b-4", Supplier: "Red Truck", Amount: models.MustMoney("980.50"), DeliveryDays: 7, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func (suite *ProcurementServiceTestSuite) TestRankBids() {
	ranked := RankBids(suite.bids)

	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
		assert.Equal(suite.T(), i+1, r.Rank)
	}
	assert.Equal(suite.T(), []string{"b-3", "b-4", "b-2", "b-1"}, ids)
	assert.True(suite.T(), ranked[0].Lowest)
	assert.False(suite.T(), ranked[1].Lowest)
	assert.Equal(suite.T(), "b-1", suite.bids[0].ID)
}

func (suite *ProcurementServiceTestSuite) TestSubmitBid_RequiresOpenRequest() {
	suite.repo.On("GetSupplyRequest", suite.ctx, "sr-1").Return(&models.SupplyRequest{ID: "sr-1", Status: models.SupplyRequestAwarded}, nil)

	_, err := suite.service.SubmitBid(suite.ctx, "sr-1", &models.SubmitBidRequest{Supplier: "Acme", Amount: models.MustMoney("10")})
	assert.ErrorIs(suite.T(), err, models.ErrRequestNotOpen)
	suite.repo.AssertNotCalled(suite.T(), "CreateBid", mock.Anything, mock.Anything)
}

func (suite *ProcurementServiceTestSuite) TestSubmitBid_RejectsNonPositiveAmount() {
	_, err := suite.service.SubmitBid(suite.ctx, "sr-1", &models.SubmitBidRequest{Supplier: "Acme", Amount: models.MustMoney("0")})
	verr, ok := IsValidationError(err)
	require.True(suite.T(), ok)
	assert.Contains(suite.T(), verr.Fields, "amount")
}

func (suite *ProcurementServiceTestSuite) TestSubmitBid_RoundsToCents() {
	suite.repo.On("GetSupplyRequest", suite.ctx, "sr-1").Return(&models.SupplyRequest{ID: "sr-1", Status: models.SupplyRequestOpen}, nil)
	suite.repo.On("CreateBid", suite.ctx, mock.MatchedBy(func(b *models.Bid) bool {
		return b.Amount.String() == "10.46" && b.Supplier == "Acme" && b.SupplyRequestID == "sr-1"
	})).Return(&models.Bid{ID: "b-9"}, nil)

	bid, err := suite.service.SubmitBid(suite.ctx, "sr-1", &models.SubmitBidRequest{Supplier: " Acme ", Amount: models.MustMoney("10.455")})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "b-9", bid.ID)
}

func (suite *ProcurementServiceTestSuite) TestAssignBid_AcceptsWinnerRejectsOthers() {
	suite.repo.On("ListBids", suite.ctx, "sr-1").Return(suite.bids, nil)
	suite.repo.On("AwardSupplyRequest", suite.ctx, "sr-1", suite.bids[1], suite.bids).
		Return(&models.SupplyRequest{ID: "sr-1", Status: models.SupplyRequestAwarded, AwardedBidID: "b-2"}, nil).Once()

	awarded, err := suite.service.AssignBid(suite.ctx, "sr-1", "b-2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "b-2", awarded.AwardedBidID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ProcurementServiceTestSuite) TestAssignBid_UnknownBid() {
	suite.repo.On("ListBids", suite.ctx, "sr-1").Return(suite.bids, nil)

	_, err := suite.service.AssignBid(suite.ctx, "sr-1", "b-404")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "AwardSupplyRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProcurementServiceTestSuite) TestAssignBid_AlreadyAwarded() {
	suite.repo.On("ListBids", suite.ctx, "sr-1").Return(suite.bids, nil)
	suite.repo.On("AwardSupplyRequest", suite.ctx, "sr-1", suite.bids[0], suite.bids).Return(nil, models.ErrRequestNotOpen)

	_, err := suite.service.AssignBid(suite.ctx, "sr-1", "b-1")
	assert.ErrorIs(suite.T(), err, models.ErrRequestNotOpen)
}

func TestProcurementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcurementServiceTestSuite))
}
