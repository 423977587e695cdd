//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/queries"
	queriesmock "repaircoin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoShowQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	customers *queriesmock.MockCustomerReadStore
	policies  *queriesmock.MockPolicyReadStore
	history   *queriesmock.MockHistoryReadStore
	clock     *clock.MockClock
	noshows   queries.NoShowQueries
}

func (s *NoShowQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customers = queriesmock.NewMockCustomerReadStore(s.ctrl)
	s.policies = queriesmock.NewMockPolicyReadStore(s.ctrl)
	s.history = queriesmock.NewMockHistoryReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.noshows = queries.NewNoShowQueries(s.customers, s.policies, s.history, s.clock)
}

func (s *NoShowQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNoShowQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(NoShowQueriesTestSuite))
}

func (s *NoShowQueriesTestSuite) TestGetShopPolicy_AbsenceYieldsDefault() {
	s.policies.EXPECT().Find(gomock.Any(), "shop-1").
		Return(nil, infra.WrapRepoErr("policy not found", nil, infra.KindNotFound))

	p, err := s.noshows.GetShopPolicy(context.Background(), "shop-1")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), noshow.Default("shop-1"), p)
}

func (s *NoShowQueriesTestSuite) TestGetShopPolicy_StoredPolicyWins() {
	stored := noshow.Default("shop-1")
	stored.SuspensionDays = 60
	s.policies.EXPECT().Find(gomock.Any(), "shop-1").Return(&stored, nil)

	p, err := s.noshows.GetShopPolicy(context.Background(), "shop-1")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 60, p.SuspensionDays)
}

func (s *NoShowQueriesTestSuite) TestGetShopPolicy_DBFailurePropagates() {
	s.policies.EXPECT().Find(gomock.Any(), "shop-1").
		Return(nil, infra.WrapRepoErr("query failed", errs.New("db down")))

	_, err := s.noshows.GetShopPolicy(context.Background(), "shop-1")

	require.Error(s.T(), err)
}

func (s *NoShowQueriesTestSuite) TestGetCustomerStatus_EvaluatesUnderPolicy() {
	rec := &noshow.CustomerRecord{
		Address:     "0xabc",
		ShopID:      "shop-1",
		NoShowCount: 4,
		Tier:        noshow.TierDepositRequired,
	}
	s.customers.EXPECT().Find(gomock.Any(), "0xabc").Return(rec, nil)
	s.policies.EXPECT().Find(gomock.Any(), "shop-1").
		Return(nil, infra.WrapRepoErr("policy not found", nil, infra.KindNotFound))

	view, err := s.noshows.GetCustomerStatus(context.Background(), "0xabc")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0xabc", view.Address)
	assert.True(s.T(), view.CanBook)
	assert.True(s.T(), view.RequiresDeposit)
	assert.Equal(s.T(), "20.00", view.DepositAmount)
}

func (s *NoShowQueriesTestSuite) TestGetCustomerStatus_SuspensionComparedToClock() {
	until := s.clock.Now().Add(time.Hour)
	rec := &noshow.CustomerRecord{
		Address:               "0xabc",
		ShopID:                "shop-1",
		NoShowCount:           6,
		Tier:                  noshow.TierSuspended,
		BookingSuspendedUntil: &until,
	}
	s.customers.EXPECT().Find(gomock.Any(), "0xabc").Return(rec, nil).Times(2)
	s.policies.EXPECT().Find(gomock.Any(), "shop-1").
		Return(nil, infra.WrapRepoErr("policy not found", nil, infra.KindNotFound)).Times(2)

	view, err := s.noshows.GetCustomerStatus(context.Background(), "0xabc")
	require.NoError(s.T(), err)
	assert.False(s.T(), view.CanBook)

	// The same record books again once the window lapses.
	s.clock.Add(2 * time.Hour)
	view, err = s.noshows.GetCustomerStatus(context.Background(), "0xabc")
	require.NoError(s.T(), err)
	assert.True(s.T(), view.CanBook)
}

func (s *NoShowQueriesTestSuite) TestGetCustomerStatus_UnknownCustomer() {
	s.customers.EXPECT().Find(gomock.Any(), "0xdead").Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

	_, err := s.noshows.GetCustomerStatus(context.Background(), "0xdead")

	require.ErrorIs(s.T(), err, queries.ErrCustomerNotFound)
}

func (s *NoShowQueriesTestSuite) TestGetCustomerHistory_ClampsLimit() {
	cases := []struct {
		name      string
		requested int32
		effective int32
	}{
		{name: "zero falls back to default", requested: 0, effective: 50},
		{name: "negative falls back to default", requested: -5, effective: 50},
		{name: "above cap falls back to default", requested: 500, effective: 50},
		{name: "in range passes through", requested: 10, effective: 10},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.history.EXPECT().ListByCustomer(gomock.Any(), "0xabc", c.effective).
				Return([]*noshow.HistoryEntry{}, nil)

			_, err := s.noshows.GetCustomerHistory(context.Background(), "0xabc", c.requested)

			require.NoError(s.T(), err)
		})
	}
}
