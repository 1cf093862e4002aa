package analysis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/report"
)

const systemPrompt = `Você é um advogado experiente redigindo um parecer consultivo preliminar em português do Brasil.

OBJETIVO GERAL
Elaborar um diagnóstico jurídico técnico e acessível, que ajude o usuário a compreender:
1. Quais direitos podem ter sido violados;
2. Quais medidas práticas deve tomar;
3. Qual a urgência e a viabilidade de agir.

ESTRUTURA OBRIGATÓRIA DO RELATÓRIO
1. SUMÁRIO EXECUTIVO - contexto do caso, principais direitos envolvidos, nível de urgência.
2. ANÁLISE DETALHADA DAS RESPOSTAS - interprete cada resposta, destacando fatos juridicamente relevantes e eventuais prazos prescricionais.
3. FUNDAMENTAÇÃO LEGAL - cite artigos específicos de lei (CLT, CC, CDC, CPC, CF, etc.) e jurisprudência exemplificativa.
4. RECOMENDAÇÕES PRÁTICAS - documentos a reunir, órgãos a procurar, ações imediatas, alternativas de solução.
5. AVALIAÇÃO DE VIABILIDADE - chances de êxito, custos estimados, tempo médio de solução, riscos e benefícios.
6. CONCLUSÃO E ORIENTAÇÃO FINAL - síntese clara, reforçando a importância de consultar um advogado.

REQUISITOS DE QUALIDADE
- Linguagem acessível, mas tecnicamente correta; evite jargões sem explicação.
- Sem markdown (sem #, **, etc.). Utilize títulos em maiúsculas e seções bem destacadas.
- Texto entre 800 e 1500 palavras, dependendo da complexidade.
- Evite qualquer opinião política, ideológica ou especulativa.
- Se houver pontuação baixa ou respostas vagas, emita alerta de dados insuficientes.
- Inclua os marcadores [ESPACO_PUBLICITARIO_1] após o sumário executivo, [ESPACO_PUBLICITARIO_2] após a análise detalhada, [ESPACO_PUBLICITARIO_3] após as chances de êxito e [ESPACO_PUBLICITARIO_4] antes das considerações finais, cada um sozinho em sua linha.`

type transportFailureClass int

const (
	failureTimeout transportFailureClass = iota
	failureRateLimit
	failureServer
	failureClient
)

// AnthropicMessager is the slice of the SDK client the generator
// needs; tests substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// AnthropicGenerator produces the report through the Anthropic API.
type AnthropicGenerator struct {
	messages AnthropicMessager
}

func NewAnthropicGeneratorFromEnv() (*AnthropicGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicGenerator{messages: newAnthropicClient(apiKey)}, nil
}

func (g *AnthropicGenerator) Generate(ctx context.Context, in Input) (string, error) {
	prompt := buildCaseContext(in)
	for attempt := 1; attempt <= 3; attempt++ {
		text, err := g.call(ctx, prompt)
		if err != nil {
			class := classifyTransportError(err)
			if (class == failureTimeout || class == failureRateLimit || class == failureServer) && attempt < 3 {
				time.Sleep(backoffDelay(attempt))
				continue
			}
			return "", fmt.Errorf("report generation transport failure: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return "", errors.New("report generation returned empty text")
		}
		if err := checkSlotTokens(text); err != nil {
			return "", err
		}
		return text, nil
	}
	return "", errors.New("report generation failed after retries")
}

func (g *AnthropicGenerator) call(ctx context.Context, prompt string) (string, error) {
	resp, err := g.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   4096,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0.3),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// checkSlotTokens rejects remote reports missing any ad marker; the
// rendering contract requires all four.
func checkSlotTokens(text string) error {
	for n := 1; n <= 4; n++ {
		if !strings.Contains(text, report.SlotToken(n)) {
			return fmt.Errorf("remote report missing marker %s", report.SlotToken(n))
		}
	}
	return nil
}

// buildCaseContext serializes the questionnaire for the model:
// labels and point values for choices, the narrative verbatim.
func buildCaseContext(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ÁREA DO DIREITO: %s\n", in.Area.Name)
	fmt.Fprintf(&b, "PONTUAÇÃO TOTAL: %.0f pontos\n", in.TotalPoints)
	fmt.Fprintf(&b, "NÍVEL DE URGÊNCIA: %s\n\n", urgencyContextWord(in.Urgency))
	fmt.Fprintf(&b, "RESPOSTAS DO QUESTIONÁRIO:\n\n")

	for i, r := range in.Responses {
		q, ok := in.Area.Question(r.QuestionID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		switch q.Type {
		case diagnostic.QuestionSingleChoice:
			if opt, ok := q.Option(r.Answer); ok {
				fmt.Fprintf(&b, "   Resposta: %s\n", opt.Label)
				fmt.Fprintf(&b, "   Pontuação: %.0f pontos\n", opt.Points)
			} else {
				fmt.Fprintf(&b, "   Resposta: %s\n", r.Answer)
				fmt.Fprintf(&b, "   Pontuação: 0 pontos\n")
			}
		case diagnostic.QuestionMultiChoice:
			fmt.Fprintf(&b, "   Respostas selecionadas:\n")
			for _, v := range r.Answers {
				if opt, ok := q.Option(v); ok {
					fmt.Fprintf(&b, "   - %s (%.0f pontos)\n", opt.Label, opt.Points)
				}
			}
		case diagnostic.QuestionFreeText:
			fmt.Fprintf(&b, "   Descrição do usuário:\n   %q\n", r.Answer)
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String()
}

func urgencyContextWord(u diagnostic.UrgencyLevel) string {
	switch u {
	case diagnostic.UrgencyHigh:
		return "ALTA"
	case diagnostic.UrgencyMedium:
		return "MÉDIA"
	default:
		return "BAIXA"
	}
}

func classifyTransportError(err error) transportFailureClass {
	msg := strings.ToLower(err.Error())
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	switch {
	case strings.Contains(msg, "429"):
		return failureRateLimit
	case strings.Contains(msg, " 5") || strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error"):
		return failureServer
	case strings.Contains(msg, " 4") || strings.Contains(msg, "status code: 4"):
		return failureClient
	default:
		return failureServer
	}
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
