package assistant

import (
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

// Answers holds the questionnaire state. Goal is required; the three answer
// slots are optional and their meaning depends on the active goal (the same
// slot asks a different question per goal).
type Answers struct {
	Goal      catalog.Goal `json:"goal"`
	Question1 string       `json:"question1,omitempty"`
	Question2 string       `json:"question2,omitempty"`
	Question3 string       `json:"question3,omitempty"`
}

// Recommendation is built fresh per request and never persisted.
type Recommendation struct {
	RecommendedProducts []catalog.Product `json:"recommendedProducts"`
	RecommendedKit      *catalog.Kit      `json:"recommendedKit"`
	Rationale           []string          `json:"rationale"`
	Warnings            []string          `json:"warnings"`
}

type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	IsSensitive bool   `json:"isSensitive,omitempty"`
}

type Question struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Options  []QuestionOption `json:"options"`
}

// QuestionsForGoal returns the three questions shown for a goal, empty for
// unknown goals.
func QuestionsForGoal(goal catalog.Goal) []Question {
	switch goal {
	case catalog.GoalSleep:
		return []Question{
			{
				ID:       "sleep_q1",
				Question: "¿Cuál es tu principal dificultad con el sueño?",
				Options: []QuestionOption{
					{Value: "onset", Label: "Me cuesta conciliar el sueño"},
					{Value: "quality", Label: "Me despierto durante la noche"},
					{Value: "both", Label: "Ambos problemas"},
				},
			},
			{
				ID:       "sleep_q2",
				Question: "¿Experimentas estrés o ansiedad con frecuencia?",
				Options: []QuestionOption{
					{Value: "yes", Label: "Sí, a menudo"},
					{Value: "sometimes", Label: "A veces"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:       "sleep_q3",
				Question: "¿Tienes alguna de estas condiciones?",
				Options: []QuestionOption{
					{Value: "none", Label: "Ninguna"},
					{Value: "pregnant", Label: "Embarazo o lactancia", IsSensitive: true},
					{Value: "medication", Label: "Tomo medicamentos recetados", IsSensitive: true},
				},
			},
		}
	case catalog.GoalEnergy:
		return []Question{
			{
				ID:       "energy_q1",
				Question: "¿Cuándo sientes más fatiga?",
				Options: []QuestionOption{
					{Value: "morning", Label: "Por la mañana"},
					{Value: "afternoon", Label: "Por la tarde"},
					{Value: "allday", Label: "Todo el día"},
				},
			},
			{
				ID:       "energy_q2",
				Question: "¿Practicas actividad física regularmente?",
				Options: []QuestionOption{
					{Value: "yes", Label: "Sí, 3+ veces por semana"},
					{Value: "sometimes", Label: "Ocasionalmente"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:       "energy_q3",
				Question: "¿Tienes alguna de estas condiciones?",
				Options: []QuestionOption{
					{Value: "none", Label: "Ninguna"},
					{Value: "pregnant", Label: "Embarazo o lactancia", IsSensitive: true},
					{Value: "chronic", Label: "Condición crónica diagnosticada", IsSensitive: true},
				},
			},
		}
	case catalog.GoalGut:
		return []Question{
			{
				ID:       "gut_q1",
				Question: "¿Cuál es tu principal molestia digestiva?",
				Options: []QuestionOption{
					{Value: "bloating", Label: "Hinchazón"},
					{Value: "irregularity", Label: "Irregularidad"},
					{Value: "discomfort", Label: "Malestar general"},
				},
			},
			{
				ID:       "gut_q2",
				Question: "¿Con qué frecuencia experimentas estos síntomas?",
				Options: []QuestionOption{
					{Value: "daily", Label: "Diariamente"},
					{Value: "weekly", Label: "Varias veces por semana"},
					{Value: "occasional", Label: "Ocasionalmente"},
				},
			},
			{
				ID:       "gut_q3",
				Question: "¿Has tomado antibióticos recientemente?",
				Options: []QuestionOption{
					{Value: "yes", Label: "Sí, en los últimos 3 meses"},
					{Value: "no", Label: "No"},
					{Value: "unsure", Label: "No estoy seguro/a"},
				},
			},
		}
	case catalog.GoalSkin:
		return []Question{
			{
				ID:       "skin_q1",
				Question: "¿Cuál es tu principal preocupación de piel?",
				Options: []QuestionOption{
					{Value: "dryness", Label: "Sequedad"},
					{Value: "aging", Label: "Envejecimiento"},
					{Value: "dullness", Label: "Falta de luminosidad"},
				},
			},
			{
				ID:       "skin_q2",
				Question: "¿Tu piel es sensible?",
				Options: []QuestionOption{
					{Value: "yes", Label: "Sí, muy sensible"},
					{Value: "somewhat", Label: "Un poco"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:       "skin_q3",
				Question: "¿Tomas suplementos actualmente?",
				Options: []QuestionOption{
					{Value: "yes", Label: "Sí, regularmente"},
					{Value: "sometimes", Label: "A veces"},
					{Value: "no", Label: "No"},
				},
			},
		}
	}
	return []Question{}
}
