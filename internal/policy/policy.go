package policy

import "github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

// Action names one privileged thing a caller can do. Authorization is
// a lookup in the grants table below, never an inline role comparison.
type Action string

const (
	TakeQuiz        Action = "quiz:take"
	ViewQuestions   Action = "questions:view"
	ViewAnswers     Action = "questions:view-answers"
	ManageQuestions Action = "questions:manage"
	ManageSubjects  Action = "subjects:manage"
	ManageUsers     Action = "users:manage"
	ViewAnalytics   Action = "analytics:view"
)

var grants = map[string]map[Action]bool{
	models.RoleStudent: {
		TakeQuiz:      true,
		ViewQuestions: true,
		ViewAnalytics: true,
	},
	models.RoleViewer: {
		ViewQuestions: true,
		ViewAnalytics: true,
	},
	models.RoleAdmin: {
		TakeQuiz:        true,
		ViewQuestions:   true,
		ViewAnswers:     true,
		ManageQuestions: true,
		ManageSubjects:  true,
		ManageUsers:     true,
		ViewAnalytics:   true,
	},
}

// Allow reports whether role may perform action. Unknown roles and
// unknown actions are denied.
func Allow(role string, action Action) bool {
	return grants[role][action]
}
