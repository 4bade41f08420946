package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListGoals returns the user's goals with their progress percentage
func (s *Service) ListGoals(userID uuid.UUID) ([]models.GoalStatus, error) {
	goals, err := s.repo.ListGoals(userID)
	if err != nil {
		return nil, err
	}
	statuses := make([]models.GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, models.GoalStatus{
			Goal:     g,
			Progress: aggregate.PercentOfLimit(g.CurrentAmount, g.TargetAmount),
		})
	}
	return statuses, nil
}

// CreateGoal validates and inserts a new goal starting at zero progress
func (s *Service) CreateGoal(userID uuid.UUID, g models.Goal) (*models.Goal, error) {
	if err := requireText("text", g.Text); err != nil {
		return nil, err
	}
	if err := requireAmount("target_amount", g.TargetAmount); err != nil {
		return nil, err
	}
	g.UserID = userID
	g.CurrentAmount = decimal.Zero
	if err := s.repo.CreateGoal(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGoalProgress applies a relative update to the goal's current
// amount: current plus or minus the delta, clamped at zero. Only the
// current amount is persisted. Concurrent updates from multiple devices
// are last-write-wins; there is no conflict detection.
func (s *Service) UpdateGoalProgress(userID uuid.UUID, id int64, delta decimal.Decimal, direction string) (*models.Goal, error) {
	if err := requireAmount("amount", delta); err != nil {
		return nil, err
	}
	if direction != models.GoalAdd && direction != models.GoalSubtract {
		return nil, validationErrorf("direction must be %q or %q", models.GoalAdd, models.GoalSubtract)
	}

	goal, err := s.repo.FindGoal(userID, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = aggregate.NextGoalAmount(goal.CurrentAmount, delta, direction)
	if err := s.repo.UpdateGoalCurrent(userID, id, goal.CurrentAmount); err != nil {
		return nil, err
	}

	s.log.Infof("Goal %d progress updated for user %s: %s", id, userID, goal.CurrentAmount)
	return goal, nil
}

// DeleteGoal removes the user's goal
func (s *Service) DeleteGoal(userID uuid.UUID, id int64) error {
	return s.repo.DeleteGoal(userID, id)
}
