package diagnostic

// CalculateScore walks responses against the question set and sums
// weighted option points. Responses referencing unknown question ids
// and answer values with no matching option are skipped; free-text
// responses never contribute. The function is total: any input yields
// a score, worst case zero.
//
// De-duplication is the caller's job — if the response list carries
// two answers for the same question, both are consulted.
func CalculateScore(questions []Question, responses []Response) Score {
	var total float64

	for _, resp := range responses {
		q, ok := findQuestion(questions, resp.QuestionID)
		if !ok {
			continue
		}
		switch q.Type {
		case QuestionMultiChoice:
			for _, selected := range resp.Answers {
				if opt, ok := q.Option(selected); ok {
					total += opt.Points * q.Weight
				}
			}
		case QuestionSingleChoice:
			if opt, ok := q.Option(resp.Answer); ok {
				total += opt.Points * q.Weight
			}
		}
	}

	return Score{TotalPoints: total, Urgency: UrgencyFor(total)}
}

// UrgencyFor maps total points to the urgency tier.
func UrgencyFor(points float64) UrgencyLevel {
	switch {
	case points >= HighUrgencyThreshold:
		return UrgencyHigh
	case points >= MediumUrgencyThreshold:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// UrgencyLabel returns the pt-BR presentation label for a tier.
func UrgencyLabel(level UrgencyLevel) string {
	switch level {
	case UrgencyHigh:
		return "Alta Urgência"
	case UrgencyMedium:
		return "Média Urgência"
	default:
		return "Baixa Urgência"
	}
}

// Deduplicate keeps the last response for each question id, preserving
// the order of first appearance. The aggregator itself does not
// de-duplicate; callers that accept raw submissions (where a user may
// navigate back and re-answer) apply this first.
func Deduplicate(responses []Response) []Response {
	index := make(map[string]int, len(responses))
	out := make([]Response, 0, len(responses))
	for _, r := range responses {
		if i, seen := index[r.QuestionID]; seen {
			out[i] = r
			continue
		}
		index[r.QuestionID] = len(out)
		out = append(out, r)
	}
	return out
}

func findQuestion(questions []Question, id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
