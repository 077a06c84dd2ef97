package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-dpr/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/rpg-dpr/internal/repositories/dice_session"
)

type DiceHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockDice *dicemock.MockService
	handler  *v1alpha1.DiceHandler
	ctx      context.Context
}

func TestDiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DiceHandlerTestSuite))
}

func (s *DiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: s.mockDice,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *DiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceHandlerTestSuite) TestNewDiceHandlerRequiresService() {
	_, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceHandlerTestSuite) TestRollDice() {
	roll := dicesession.DiceRoll{
		RollID:      "roll_1",
		Notation:    "4d6kh3+2",
		Dice:        []int32{6, 5, 4, 2},
		Dropped:     []int32{2},
		DiceTotal:   15,
		Modifier:    2,
		Total:       17,
		Expected:    14.24,
		Description: "Greatsword",
	}
	session := &dicesession.DiceSession{
		EntityID:  "fighter_1",
		Context:   "round_1",
		Rolls:     []dicesession.DiceRoll{roll},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}

	s.mockDice.EXPECT().
		RollDice(s.ctx, &dice.RollDiceInput{
			EntityID:    "fighter_1",
			Context:     "round_1",
			Notation:    "4d6kh3+2",
			Description: "Greatsword",
		}).
		Return(&dice.RollDiceOutput{Roll: &roll, Session: session}, nil)

	resp, err := s.handler.RollDice(s.ctx, &apiv1alpha1.RollDiceRequest{
		EntityId:            "fighter_1",
		Context:             "round_1",
		Notation:            "4d6kh3+2",
		ModifierDescription: "Greatsword",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 1)

	got := resp.Rolls[0]
	s.Equal("roll_1", got.RollId)
	s.Equal([]int32{6, 5, 4, 2}, got.Dice)
	s.Equal([]int32{2}, got.Dropped)
	s.Equal(int32(15), got.DiceTotal)
	s.Equal(int32(2), got.Modifier)
	s.Equal(int32(17), got.Total)
	s.Equal(session.ExpiresAt.Unix(), resp.ExpiresAt)
}

func (s *DiceHandlerTestSuite) TestRollDiceValidation() {
	testCases := []struct {
		name   string
		req    *apiv1alpha1.RollDiceRequest
		errMsg string
	}{
		{
			name:   "missing entity_id",
			req:    &apiv1alpha1.RollDiceRequest{Context: "test", Notation: "4d6"},
			errMsg: "entity_id: is required",
		},
		{
			name:   "missing context",
			req:    &apiv1alpha1.RollDiceRequest{EntityId: "wizard_1", Notation: "4d6"},
			errMsg: "context: is required",
		},
		{
			name:   "missing notation",
			req:    &apiv1alpha1.RollDiceRequest{EntityId: "wizard_1", Context: "test"},
			errMsg: "notation: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.RollDice(s.ctx, tc.req)
			s.Nil(resp)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Contains(st.Message(), tc.errMsg)
		})
	}
}

func (s *DiceHandlerTestSuite) TestRollDiceBadNotation() {
	s.mockDice.EXPECT().
		RollDice(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("cannot parse dice expression \"banana\""))

	_, err := s.handler.RollDice(s.ctx, &apiv1alpha1.RollDiceRequest{
		EntityId: "wizard_1",
		Context:  "test",
		Notation: "banana",
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestGetRollSession() {
	created := time.Now().Add(-5 * time.Minute)
	session := &dicesession.DiceSession{
		EntityID: "wizard_1",
		Context:  "spell:fireball",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "8d6", Total: 27},
			{RollID: "roll_2", Notation: "8d6", Total: 31},
		},
		CreatedAt: created,
		ExpiresAt: created.Add(15 * time.Minute),
	}

	s.mockDice.EXPECT().
		GetRollSession(s.ctx, &dice.GetRollSessionInput{
			EntityID: "wizard_1",
			Context:  "spell:fireball",
		}).
		Return(&dice.GetRollSessionOutput{Session: session}, nil)

	resp, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "wizard_1",
		Context:  "spell:fireball",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 2)
	s.Equal("roll_1", resp.Rolls[0].RollId)
	s.Equal(int32(31), resp.Rolls[1].Total)
	s.Equal(created.Unix(), resp.CreatedAt)
}

func (s *DiceHandlerTestSuite) TestGetRollSessionNotFound() {
	s.mockDice.EXPECT().
		GetRollSession(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("dice session not found"))

	resp, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "wizard_1",
		Context:  "nothing",
	})
	s.Nil(resp)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestClearRollSession() {
	s.mockDice.EXPECT().
		ClearRollSession(s.ctx, &dice.ClearRollSessionInput{
			EntityID: "wizard_1",
			Context:  "spell:fireball",
		}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 2}, nil)

	resp, err := s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityId: "wizard_1",
		Context:  "spell:fireball",
	})
	s.Require().NoError(err)
	s.Equal("Roll session cleared successfully", resp.Message)
	s.Equal(int32(2), resp.RollsCleared)
}

func (s *DiceHandlerTestSuite) TestClearRollSessionValidation() {
	_, err := s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{Context: "test"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{EntityId: "wizard_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
