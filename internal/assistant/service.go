package assistant

import (
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

type Service struct {
	engine *Engine
}

func NewService(engine *Engine) *Service {
	return &Service{engine: engine}
}

func (s *Service) Questions(goal catalog.Goal) []Question {
	return QuestionsForGoal(goal)
}

func (s *Service) Recommend(answers Answers) Recommendation {
	return s.engine.Recommend(answers)
}
