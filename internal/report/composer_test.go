package report

import (
	"strings"
	"testing"
	"time"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
)

func laborArea() diagnostic.LegalArea {
	return diagnostic.LegalArea{
		ID:   "trabalhista",
		Name: "Trabalhista",
		Questions: []diagnostic.Question{
			{
				ID:     "trab_1",
				Text:   "Você foi demitido e recebeu as verbas rescisórias?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Fui demitido e não recebi nada", Value: "sim_nada", Points: 20},
					{Label: "Recebi apenas parte das verbas", Value: "parcial", Points: 12},
					{Label: "Recebi tudo corretamente", Value: "recebi_tudo", Points: 0},
				},
			},
			{
				ID:     "trab_2",
				Text:   "Você fazia horas extras sem receber o adicional?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Sim, com frequência", Value: "frequente", Points: 18},
					{Label: "Sim, ocasionalmente", Value: "ocasional", Points: 8},
				},
			},
			{
				ID:     "trab_5",
				Text:   "Quais benefícios deixaram de ser pagos?",
				Type:   diagnostic.QuestionMultiChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "FGTS", Value: "fgts", Points: 12},
					{Label: "13º salário", Value: "decimo_terceiro", Points: 12},
				},
			},
			{
				ID:     "trab_narrative",
				Text:   "Descreva sua situação",
				Type:   diagnostic.QuestionFreeText,
				Weight: 0,
			},
		},
	}
}

func TestComposeEmitsEverySlotTokenExactlyOnce(t *testing.T) {
	// No narrative here: slot 2 must appear even without one.
	text := Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "sim_nada"},
	}, 20, diagnostic.UrgencyLow)

	for n := 1; n <= 4; n++ {
		if got := strings.Count(text, SlotToken(n)); got != 1 {
			t.Errorf("token %s appears %d times, want 1", SlotToken(n), got)
		}
	}
}

func TestComposeSectionOrder(t *testing.T) {
	text := Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "sim_nada"},
		{QuestionID: "trab_narrative", Answer: "fui demitido em março"},
	}, 20, diagnostic.UrgencyLow)

	sections := []string{
		"SUMÁRIO EXECUTIVO",
		SlotToken1,
		"ANÁLISE DETALHADA DAS RESPOSTAS",
		"DESCRIÇÃO FORNECIDA PELO USUÁRIO",
		SlotToken2,
		"FUNDAMENTAÇÃO LEGAL",
		"RECOMENDAÇÕES PRÁTICAS",
		"AVALIAÇÃO DE VIABILIDADE",
		"CHANCES DE ÊXITO",
		SlotToken3,
		"CUSTOS ESTIMADOS",
		"TEMPO MÉDIO DE SOLUÇÃO",
		"CONCLUSÃO E ORIENTAÇÃO FINAL",
		SlotToken4,
		"CONSIDERAÇÕES FINAIS",
		"Relatório gerado em",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		if idx < 0 {
			t.Fatalf("section %q missing from report", s)
		}
		if idx <= last {
			t.Fatalf("section %q out of order", s)
		}
		last = idx
	}
}

func TestDetailedAnalysisMaterialityFilter(t *testing.T) {
	// trab_1 sim_nada scores 20 (included); trab_2 ocasional scores 8
	// (filtered out of the narrative).
	text := Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "sim_nada"},
		{QuestionID: "trab_2", Answer: "ocasional"},
	}, 28, diagnostic.UrgencyLow)

	if !strings.Contains(text, "Situação identificada: Fui demitido e não recebi nada") {
		t.Error("high-scoring answer missing from detailed analysis")
	}
	if strings.Contains(text, "Sim, ocasionalmente") {
		t.Error("low-scoring answer leaked into detailed analysis")
	}
	if !strings.Contains(text, "infração ao art. 477 da CLT") {
		t.Error("specific interpretation for trab_1/sim_nada missing")
	}
}

func TestMultiChoiceListedWithSelectedOptions(t *testing.T) {
	text := Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_5", Answers: []string{"fgts", "decimo_terceiro"}},
	}, 24, diagnostic.UrgencyLow)

	if !strings.Contains(text, "- FGTS") || !strings.Contains(text, "- 13º salário") {
		t.Error("selected multi-choice options not listed")
	}
	if !strings.Contains(text, "A ausência de pagamento de benefícios trabalhistas") {
		t.Error("multi-choice interpretation missing")
	}
}

func TestMainRightsBound(t *testing.T) {
	// parcial scores 12, below the main-rights bound of 15.
	text := Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "parcial"},
	}, 12, diagnostic.UrgencyLow)
	if strings.Contains(text, "direito às verbas rescisórias (art. 477 da CLT)") {
		t.Error("rights clause fired below the point bound")
	}
	if !strings.Contains(text, fallbackRights) {
		t.Error("expected fallback rights wording when nothing signaled")
	}

	text = Compose(laborArea(), []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "sim_nada"},
	}, 20, diagnostic.UrgencyLow)
	if !strings.Contains(text, "direito às verbas rescisórias (art. 477 da CLT)") {
		t.Error("rights clause missing for high-scoring answer")
	}
}

func TestExecutiveSummaryBands(t *testing.T) {
	area := laborArea()
	tests := []struct {
		points float64
		want   string
	}{
		{65, "indícios significativos de violação de direitos"},
		{35, "alguns pontos de atenção que merecem análise jurídica"},
		{10, "uma situação que deve ser monitorada"},
	}
	for _, tt := range tests {
		text := Compose(area, nil, tt.points, diagnostic.UrgencyFor(tt.points))
		if !strings.Contains(text, tt.want) {
			t.Errorf("points %v: summary missing %q", tt.points, tt.want)
		}
	}
}

func TestViabilityBands(t *testing.T) {
	area := laborArea()
	tests := []struct {
		points float64
		want   string
	}{
		{70, "CHANCES DE ÊXITO: ALTA"},
		{40, "CHANCES DE ÊXITO: MÉDIA"},
		{39, "CHANCES DE ÊXITO: BAIXA A MÉDIA"},
	}
	for _, tt := range tests {
		text := Compose(area, nil, tt.points, diagnostic.UrgencyFor(tt.points))
		if !strings.Contains(text, tt.want) {
			t.Errorf("points %v: missing %q", tt.points, tt.want)
		}
	}
}

func TestUnknownAreaUsesFallbacks(t *testing.T) {
	area := diagnostic.LegalArea{ID: "tributario", Name: "Tributário"}
	text := Compose(area, nil, 0, diagnostic.UrgencyLow)

	if !strings.Contains(text, fallbackRights) {
		t.Error("fallback rights wording missing for unknown area")
	}
	if !strings.Contains(text, "CUSTOS ESTIMADOS: MÉDIO") {
		t.Error("fallback cost assessment missing")
	}
	if !strings.Contains(text, "JURISPRUDÊNCIA RELEVANTE") {
		t.Error("jurisprudence disclaimer missing")
	}
	for n := 1; n <= 4; n++ {
		if !strings.Contains(text, SlotToken(n)) {
			t.Errorf("token %s missing for unknown area", SlotToken(n))
		}
	}
}

func TestUrgencyDrivesActionsAndConclusion(t *testing.T) {
	area := laborArea()

	high := Compose(area, nil, 80, diagnostic.UrgencyHigh)
	if !strings.Contains(high, "⚠️ URGENTE - Sua situação exige providências imediatas") {
		t.Error("high urgency actions missing")
	}
	if !strings.Contains(high, "atenção jurídica IMEDIATA") {
		t.Error("high urgency conclusion missing")
	}

	low := Compose(area, nil, 10, diagnostic.UrgencyLow)
	if strings.Contains(low, "⚠️ URGENTE") {
		t.Error("urgent actions leaked into low urgency report")
	}
	if !strings.Contains(low, "não aparenta gravidade imediata") {
		t.Error("low urgency conclusion missing")
	}
}

func TestComposeTimestampLine(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	text := composeAt(laborArea(), nil, 0, diagnostic.UrgencyLow, now)
	if !strings.Contains(text, "Relatório gerado em 14/03/2025 às 09:30:00") {
		t.Error("timestamp line missing or misformatted")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	responses := []diagnostic.Response{
		{QuestionID: "trab_1", Answer: "sim_nada"},
		{QuestionID: "trab_5", Answers: []string{"fgts"}},
		{QuestionID: "trab_narrative", Answer: "trabalhei dois anos sem registro"},
	}
	first := composeAt(laborArea(), responses, 32, diagnostic.UrgencyLow, now)
	second := composeAt(laborArea(), responses, 32, diagnostic.UrgencyLow, now)
	if first != second {
		t.Fatal("same inputs produced different reports")
	}
}
