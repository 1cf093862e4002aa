package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/alopes/diagnostico-juridico/internal/catalog"
	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/report"
)

// mockMessager implements AnthropicMessager for testing.
type mockMessager struct {
	response *anthropic.Message
	err      error
	calls    int
}

func (m *mockMessager) New(_ context.Context, _ anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.calls++
	return m.response, m.err
}

func newMockMessage(text string) *anthropic.Message {
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: text},
		},
	}
}

func remoteReport() string {
	return "RELATÓRIO JURÍDICO - TRABALHISTA\n\nSUMÁRIO EXECUTIVO\n\ntexto\n\n" +
		report.SlotToken(1) + "\n\nANÁLISE DETALHADA DAS RESPOSTAS\n\ntexto\n\n" +
		report.SlotToken(2) + "\n\nCHANCES DE ÊXITO: ALTA\n\n" +
		report.SlotToken(3) + "\n\n" + report.SlotToken(4) + "\n\nCONSIDERAÇÕES FINAIS\n"
}

func analysisInput() Input {
	c := catalog.Default()
	area, _ := c.Area("trabalhista")
	return Input{
		Area: area,
		Responses: []diagnostic.Response{
			{QuestionID: "trab_1", Answer: "sim_nada"},
			{QuestionID: "trab_5", Answers: []string{"fgts", "ferias"}},
			{QuestionID: "trab_narrative", Answer: "fui demitido sem aviso"},
		},
		TotalPoints: 44,
		Urgency:     diagnostic.UrgencyMedium,
	}
}

func TestAnthropicGeneratorReturnsRemoteText(t *testing.T) {
	g := &AnthropicGenerator{messages: &mockMessager{response: newMockMessage(remoteReport())}}
	text, err := g.Generate(context.Background(), analysisInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(text, "SUMÁRIO EXECUTIVO") {
		t.Fatal("remote text missing expected section")
	}
}

func TestAnthropicGeneratorRejectsMissingMarkers(t *testing.T) {
	g := &AnthropicGenerator{messages: &mockMessager{response: newMockMessage("RELATÓRIO sem marcadores")}}
	if _, err := g.Generate(context.Background(), analysisInput()); err == nil {
		t.Fatal("expected error for report without slot markers")
	}
}

func TestAnthropicGeneratorDoesNotRetryClientErrors(t *testing.T) {
	mock := &mockMessager{err: errors.New("status code: 400 invalid request")}
	g := &AnthropicGenerator{messages: mock}
	if _, err := g.Generate(context.Background(), analysisInput()); err == nil {
		t.Fatal("expected transport error")
	}
	if mock.calls != 1 {
		t.Fatalf("calls = %d, want 1 (client errors are not retried)", mock.calls)
	}
}

func TestBuildCaseContext(t *testing.T) {
	ctx := buildCaseContext(analysisInput())
	for _, want := range []string{
		"ÁREA DO DIREITO: Trabalhista",
		"PONTUAÇÃO TOTAL: 44 pontos",
		"NÍVEL DE URGÊNCIA: MÉDIA",
		"Resposta: Fui demitido e não recebi nada",
		"Pontuação: 20 pontos",
		"- FGTS (12 pontos)",
		`"fui demitido sem aviso"`,
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("case context missing %q", want)
		}
	}
}

type failingGenerator struct{ err error }

func (g failingGenerator) Generate(context.Context, Input) (string, error) { return "", g.err }

type fixedGenerator struct{ text string }

func (g fixedGenerator) Generate(context.Context, Input) (string, error) { return g.text, nil }

func TestServiceFallsBackToComposer(t *testing.T) {
	svc := NewService(failingGenerator{err: errors.New("api unavailable")})
	text := svc.Generate(context.Background(), analysisInput())
	if !strings.Contains(text, "SUMÁRIO EXECUTIVO") || !strings.Contains(text, report.SlotToken(4)) {
		t.Fatal("fallback report incomplete")
	}
}

func TestServiceFallsBackOnBlankRemote(t *testing.T) {
	svc := NewService(fixedGenerator{text: "   \n"})
	text := svc.Generate(context.Background(), analysisInput())
	if !strings.Contains(text, "FUNDAMENTAÇÃO LEGAL") {
		t.Fatal("fallback report missing sections")
	}
}

func TestServicePrefersRemote(t *testing.T) {
	svc := NewService(fixedGenerator{text: remoteReport()})
	text := svc.Generate(context.Background(), analysisInput())
	if text != remoteReport() {
		t.Fatal("remote report was not used")
	}
}

func TestServiceWithoutRemoteUsesComposer(t *testing.T) {
	in := analysisInput()
	text := NewService(nil).Generate(context.Background(), in)
	want := report.Compose(in.Area, in.Responses, in.TotalPoints, in.Urgency)
	// Reports embed a generation timestamp; compare everything before it.
	cut := func(s string) string {
		if i := strings.Index(s, "Relatório gerado em"); i >= 0 {
			return s[:i]
		}
		return s
	}
	if cut(text) != cut(want) {
		t.Fatal("local service output diverged from composer")
	}
}
