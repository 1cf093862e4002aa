package diagnostic

// QuestionType identifies how a question is answered and scored.
type QuestionType string

const (
	// QuestionSingleChoice has exactly one selected option.
	QuestionSingleChoice QuestionType = "radio"
	// QuestionMultiChoice may have any number of selected options.
	QuestionMultiChoice QuestionType = "checkbox"
	// QuestionFreeText collects a narrative; it never contributes points.
	QuestionFreeText QuestionType = "textarea"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// Urgency tier thresholds, inclusive at the lower bound of each tier.
const (
	HighUrgencyThreshold   = 70
	MediumUrgencyThreshold = 40
)

type QuestionOption struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Points float64 `json:"points"`
}

// Question is a static descriptor defined at configuration time and
// never mutated at runtime. Options is non-empty iff the type is
// single- or multi-choice. Weight multiplies option points; it is 0
// for free-text questions.
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Note    string           `json:"note,omitempty"`
	Type    QuestionType     `json:"type"`
	Options []QuestionOption `json:"options,omitempty"`
	Weight  float64          `json:"weight"`
}

// Option returns the option matching value, if any.
func (q Question) Option(value string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// LegalArea carries an area's identity and its ordered question set.
type LegalArea struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Question returns the area question with the given id, if any.
func (a LegalArea) Question(id string) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Response is one answered question. Answer holds the selected option
// value for single-choice questions, the selected values for
// multi-choice, and the raw text for free-text questions.
type Response struct {
	QuestionID string   `json:"question_id"`
	Answer     string   `json:"answer,omitempty"`
	Answers    []string `json:"answers,omitempty"`
}

// Score is derived from (questions, responses) and never persisted on
// its own; recomputing with the same inputs yields the same value.
type Score struct {
	TotalPoints float64      `json:"total_points"`
	Urgency     UrgencyLevel `json:"urgency_level"`
}
