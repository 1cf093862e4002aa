// Package report builds the diagnostic report text from local data
// alone. The composer is deterministic and never fails: missing
// knowledge entries degrade to generic wording, never to an error.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
)

// Advertisement slot markers embedded in the report text. Rendering
// replaces each one with the announcement holding that position, or
// with a neutral stub when the position is vacant.
const (
	SlotToken1 = "[ESPACO_PUBLICITARIO_1]"
	SlotToken2 = "[ESPACO_PUBLICITARIO_2]"
	SlotToken3 = "[ESPACO_PUBLICITARIO_3]"
	SlotToken4 = "[ESPACO_PUBLICITARIO_4]"
)

// SlotToken returns the marker for position n (1..4).
func SlotToken(n int) string {
	return fmt.Sprintf("[ESPACO_PUBLICITARIO_%d]", n)
}

// Points above this bound make a single-choice answer a "main rights"
// signal in the executive summary; the lower bound admits an answer
// into the detailed analysis.
const (
	mainRightsPointBound = 15
	analysisPointBound   = 10
)

// Compose assembles the full report for one diagnostic. Section order
// is fixed; every report carries all six sections and all four slot
// markers regardless of input.
func Compose(area diagnostic.LegalArea, responses []diagnostic.Response, totalPoints float64, urgency diagnostic.UrgencyLevel) string {
	return composeAt(area, responses, totalPoints, urgency, time.Now())
}

func composeAt(area diagnostic.LegalArea, responses []diagnostic.Response, totalPoints float64, urgency diagnostic.UrgencyLevel, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RELATÓRIO JURÍDICO - %s\n\n", strings.ToUpper(area.Name))

	fmt.Fprintf(&b, "SUMÁRIO EXECUTIVO\n\n")
	writeExecutiveSummary(&b, area, responses, totalPoints, urgency)
	fmt.Fprintf(&b, "\n\n%s\n\n", SlotToken1)

	fmt.Fprintf(&b, "ANÁLISE DETALHADA DAS RESPOSTAS\n\n")
	writeDetailedAnalysis(&b, area, responses)
	fmt.Fprintf(&b, "%s\n\n", SlotToken2)

	fmt.Fprintf(&b, "FUNDAMENTAÇÃO LEGAL\n\n")
	writeLegalFoundation(&b, area)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "RECOMENDAÇÕES PRÁTICAS\n\n")
	writeRecommendations(&b, area, urgency)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "AVALIAÇÃO DE VIABILIDADE\n\n")
	writeViability(&b, area, totalPoints)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "CONCLUSÃO E ORIENTAÇÃO FINAL\n\n")
	writeConclusion(&b, area, urgency)

	fmt.Fprintf(&b, "---\n")
	fmt.Fprintf(&b, "Relatório gerado em %s às %s\n",
		now.Format("02/01/2006"), now.Format("15:04:05"))
	return b.String()
}

func writeExecutiveSummary(b *strings.Builder, area diagnostic.LegalArea, responses []diagnostic.Response, totalPoints float64, urgency diagnostic.UrgencyLevel) {
	fmt.Fprintf(b, "O caso apresentado na área de %s revela ", area.Name)
	switch {
	case totalPoints >= 60:
		fmt.Fprintf(b, "indícios significativos de violação de direitos, com pontuação total de %s pontos, indicando necessidade de atenção jurídica. ", fmtPoints(totalPoints))
	case totalPoints >= 30:
		fmt.Fprintf(b, "alguns pontos de atenção que merecem análise jurídica, com pontuação de %s pontos. ", fmtPoints(totalPoints))
	default:
		fmt.Fprintf(b, "uma situação que deve ser monitorada, com pontuação de %s pontos. ", fmtPoints(totalPoints))
	}

	fmt.Fprintf(b, "\n\nPrincipais direitos potencialmente envolvidos: %s", mainRights(area, responses))

	fmt.Fprintf(b, "\n\nNível de urgência: %s - ", urgencyWord(urgency))
	switch urgency {
	case diagnostic.UrgencyHigh:
		fmt.Fprintf(b, "Recomenda-se buscar orientação jurídica imediatamente, pois há indícios de violações graves que podem estar sujeitas a prazos prescricionais.")
	case diagnostic.UrgencyMedium:
		fmt.Fprintf(b, "Recomenda-se consultar um advogado em breve para avaliar medidas cabíveis e evitar agravamento da situação.")
	default:
		fmt.Fprintf(b, "A situação deve ser monitorada. Consulte um advogado para esclarecimentos e orientações preventivas.")
	}
}

// mainRights builds the rights clause of the executive summary.
// Conditional rules fire only when the named question was answered
// with a single-choice option above the main-rights bound;
// unconditional rules always fire for their area.
func mainRights(area diagnostic.LegalArea, responses []diagnostic.Response) string {
	signaled := map[string]bool{}
	for _, r := range responses {
		q, ok := area.Question(r.QuestionID)
		if !ok || q.Type != diagnostic.QuestionSingleChoice {
			continue
		}
		if opt, ok := q.Option(r.Answer); ok && opt.Points > mainRightsPointBound {
			signaled[q.ID] = true
		}
	}

	var rights []string
	for _, rule := range knowledgeFor(area.ID).Rights {
		if rule.QuestionID == "" || signaled[rule.QuestionID] {
			rights = append(rights, rule.Text)
		}
	}
	if len(rights) == 0 {
		return fallbackRights
	}
	return strings.Join(rights, ", ")
}

func writeDetailedAnalysis(b *strings.Builder, area diagnostic.LegalArea, responses []diagnostic.Response) {
	fmt.Fprintf(b, "Com base nas informações fornecidas, observam-se os seguintes pontos juridicamente relevantes:\n\n")

	for i, r := range responses {
		q, ok := area.Question(r.QuestionID)
		if !ok || q.Type == diagnostic.QuestionFreeText {
			continue
		}
		switch q.Type {
		case diagnostic.QuestionSingleChoice:
			opt, ok := q.Option(r.Answer)
			if !ok || opt.Points <= analysisPointBound {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, q.Text)
			fmt.Fprintf(b, "   Situação identificada: %s\n", opt.Label)
			fmt.Fprintf(b, "   %s\n\n", interpretationFor(area.ID, q.ID, r.Answer))
		case diagnostic.QuestionMultiChoice:
			var selected []diagnostic.QuestionOption
			for _, v := range r.Answers {
				if opt, ok := q.Option(v); ok {
					selected = append(selected, opt)
				}
			}
			if len(selected) == 0 {
				continue
			}
			fmt.Fprintf(b, "%d. %s\n", i+1, q.Text)
			for _, opt := range selected {
				fmt.Fprintf(b, "   - %s\n", opt.Label)
			}
			fmt.Fprintf(b, "   %s\n\n", interpretationFor(area.ID, q.ID, interpretationKeyMultiple))
		}
	}

	if narrative := narrativeText(area, responses); narrative != "" {
		fmt.Fprintf(b, "\nDESCRIÇÃO FORNECIDA PELO USUÁRIO:\n")
		fmt.Fprintf(b, "%q\n\n", narrative)
		fmt.Fprintf(b, "Esta descrição adiciona contexto importante ao caso e deve ser considerada juntamente com as demais respostas para uma avaliação completa.\n\n")
	}
}

func narrativeText(area diagnostic.LegalArea, responses []diagnostic.Response) string {
	for _, r := range responses {
		if q, ok := area.Question(r.QuestionID); ok && q.Type == diagnostic.QuestionFreeText {
			if text := strings.TrimSpace(r.Answer); text != "" {
				return text
			}
		}
	}
	return ""
}

func writeLegalFoundation(b *strings.Builder, area diagnostic.LegalArea) {
	fmt.Fprintf(b, "A análise fundamenta-se nos seguintes dispositivos legais:\n\n")
	if foundation := knowledgeFor(area.ID).Foundation; foundation != "" {
		fmt.Fprintf(b, "%s\n", foundation)
	}
	fmt.Fprintf(b, "JURISPRUDÊNCIA RELEVANTE:\n\n")
	fmt.Fprintf(b, "Os tribunais superiores têm entendimento consolidado sobre temas semelhantes, reforçando a proteção dos direitos fundamentais e a aplicação dos princípios constitucionais. Consulte um advogado para análise de precedentes específicos aplicáveis ao seu caso.\n")
}

func writeRecommendations(b *strings.Builder, area diagnostic.LegalArea, urgency diagnostic.UrgencyLevel) {
	k := knowledgeFor(area.ID)

	fmt.Fprintf(b, "1. DOCUMENTAÇÃO NECESSÁRIA\n\n")
	fmt.Fprintf(b, "Reúna os seguintes documentos para subsidiar análise jurídica completa:\n\n")
	for _, d := range k.Documents {
		fmt.Fprintf(b, "• %s\n", d)
	}
	fmt.Fprintf(b, "\n")

	fmt.Fprintf(b, "2. ÓRGÃOS E ENTIDADES COMPETENTES\n\n")
	for _, a := range k.Authorities {
		fmt.Fprintf(b, "• %s\n", a)
	}
	fmt.Fprintf(b, "\n")

	fmt.Fprintf(b, "3. AÇÕES IMEDIATAS RECOMENDADAS\n\n")
	switch urgency {
	case diagnostic.UrgencyHigh:
		fmt.Fprintf(b, "⚠️ URGENTE - Sua situação exige providências imediatas:\n\n")
		fmt.Fprintf(b, "• Consulte um advogado especializado o mais breve possível\n")
		fmt.Fprintf(b, "• Verifique prazos prescricionais aplicáveis ao seu caso\n")
		fmt.Fprintf(b, "• Preserve todas as provas e documentos\n")
		fmt.Fprintf(b, "• Evite acordos verbais sem orientação jurídica\n")
		fmt.Fprintf(b, "• Registre formalmente sua reclamação nos órgãos competentes\n\n")
	case diagnostic.UrgencyMedium:
		fmt.Fprintf(b, "• Agende consulta com advogado especializado em breve\n")
		fmt.Fprintf(b, "• Organize toda a documentação disponível\n")
		fmt.Fprintf(b, "• Formalize reclamação por escrito junto à parte contrária\n")
		fmt.Fprintf(b, "• Busque orientação no órgão competente para seu caso\n\n")
	default:
		fmt.Fprintf(b, "• Mantenha a documentação organizada e acessível\n")
		fmt.Fprintf(b, "• Monitore eventuais mudanças na situação\n")
		fmt.Fprintf(b, "• Busque orientação preventiva com advogado\n")
		fmt.Fprintf(b, "• Informe-se sobre seus direitos\n\n")
	}

	fmt.Fprintf(b, "4. ALTERNATIVAS DE SOLUÇÃO\n\n")
	fmt.Fprintf(b, "• Acordo extrajudicial - mais rápido e econômico\n")
	fmt.Fprintf(b, "• Mediação - com auxílio de terceiro imparcial\n")
	fmt.Fprintf(b, "• Processo administrativo - junto ao órgão competente\n")
	fmt.Fprintf(b, "• Ação judicial - quando esgotadas as vias anteriores ou em casos urgentes\n")
}

func writeViability(b *strings.Builder, area diagnostic.LegalArea, totalPoints float64) {
	fmt.Fprintf(b, "CHANCES DE ÊXITO: ")
	switch {
	case totalPoints >= 70:
		fmt.Fprintf(b, "ALTA\n\n")
		fmt.Fprintf(b, "A pontuação elevada indica fortes indícios de violação de direitos. Com documentação adequada e orientação jurídica apropriada, as chances de êxito em eventual ação são favoráveis. A existência de provas robustas é fundamental para consolidar o direito.\n\n")
	case totalPoints >= 40:
		fmt.Fprintf(b, "MÉDIA\n\n")
		fmt.Fprintf(b, "O caso apresenta elementos que justificam análise jurídica mais aprofundada. As chances de êxito dependem da qualidade das provas disponíveis e da estratégia adotada. Uma avaliação detalhada por advogado é essencial para determinar a viabilidade.\n\n")
	default:
		fmt.Fprintf(b, "BAIXA A MÉDIA\n\n")
		fmt.Fprintf(b, "Com base nas informações fornecidas, o caso pode não configurar violação significativa de direitos ou pode apresentar dificuldades probatórias. Uma consulta jurídica permitirá avaliar nuances não capturadas neste questionário.\n\n")
	}

	fmt.Fprintf(b, "%s\n\n", SlotToken3)

	k := knowledgeFor(area.ID)
	fmt.Fprintf(b, "CUSTOS ESTIMADOS: %s\n\n%s\n\n", k.CostVerdict, k.CostText)
	fmt.Fprintf(b, "TEMPO MÉDIO DE SOLUÇÃO: %s\n\n%s\n\n", k.DurationVerdict, k.DurationText)

	fmt.Fprintf(b, "RISCOS E BENEFÍCIOS:\n\n")
	fmt.Fprintf(b, "Benefícios:\n")
	fmt.Fprintf(b, "• Reconhecimento e reparação de direitos violados\n")
	fmt.Fprintf(b, "• Possibilidade de recebimento de valores retroativos\n")
	fmt.Fprintf(b, "• Efeito pedagógico e inibitório de novas violações\n")
	fmt.Fprintf(b, "• Acesso à justiça e efetivação de direitos fundamentais\n\n")
	fmt.Fprintf(b, "Riscos:\n")
	fmt.Fprintf(b, "• Possibilidade de improcedência se não houver provas suficientes\n")
	fmt.Fprintf(b, "• Tempo de tramitação do processo\n")
	fmt.Fprintf(b, "• Desgaste emocional inerente a processos judiciais\n")
	fmt.Fprintf(b, "• Necessidade de acompanhamento processual constante\n\n")
	fmt.Fprintf(b, "A relação custo-benefício deve ser avaliada individualmente com advogado, considerando as particularidades do caso, as provas disponíveis e os valores envolvidos.\n")
}

func writeConclusion(b *strings.Builder, area diagnostic.LegalArea, urgency diagnostic.UrgencyLevel) {
	switch urgency {
	case diagnostic.UrgencyHigh:
		fmt.Fprintf(b, "Com base na análise realizada, sua situação apresenta elementos que merecem atenção jurídica IMEDIATA. Os indícios de violação de direitos identificados justificam a busca de orientação profissional o quanto antes, especialmente considerando os prazos prescricionais que podem limitar o exercício de seus direitos.\n\n")
	case diagnostic.UrgencyMedium:
		fmt.Fprintf(b, "Sua situação apresenta aspectos que recomendam a busca de orientação jurídica em breve. Embora não haja urgência extrema, é importante não postergar a consulta a um advogado especializado, pois a passagem do tempo pode prejudicar a produção de provas ou até mesmo o próprio direito de ação.\n\n")
	default:
		fmt.Fprintf(b, "Com base nas informações fornecidas, sua situação não aparenta gravidade imediata, mas merece acompanhamento. Recomenda-se manter a documentação organizada e, na dúvida, consultar um advogado para esclarecimentos preventivos.\n\n")
	}

	fmt.Fprintf(b, "RECOMENDAÇÃO PROFISSIONAL:\n\n")
	fmt.Fprintf(b, "Este diagnóstico preliminar tem caráter orientativo e educacional, baseando-se em análise automatizada das respostas fornecidas. Cada caso concreto possui particularidades que somente podem ser adequadamente avaliadas por profissional habilitado, mediante análise detalhada de toda documentação e contextualização completa dos fatos.\n\n")

	fmt.Fprintf(b, "Um advogado especializado em %s poderá:\n", area.Name)
	fmt.Fprintf(b, "• Analisar detalhadamente toda a documentação disponível\n")
	fmt.Fprintf(b, "• Identificar todos os direitos aplicáveis à sua situação específica\n")
	fmt.Fprintf(b, "• Orientar sobre a melhor estratégia jurídica a ser adotada\n")
	fmt.Fprintf(b, "• Representá-lo perante órgãos administrativos e judiciais\n")
	fmt.Fprintf(b, "• Acompanhar todo o procedimento até a solução final\n\n")

	fmt.Fprintf(b, "%s\n\n", SlotToken4)

	fmt.Fprintf(b, "CONSIDERAÇÕES FINAIS:\n\n")
	fmt.Fprintf(b, "A busca pela efetivação de direitos é um caminho legítimo e amparado pela Constituição Federal. Agir com conhecimento, documentação organizada e orientação profissional adequada aumenta significativamente as chances de êxito e reduz os riscos e custos envolvidos.\n\n")
	fmt.Fprintf(b, "Mantenha-se informado sobre seus direitos, preserve todas as provas e documentos relevantes, e não hesite em buscar orientação jurídica quando necessário. A prevenção e a ação tempestiva são os melhores aliados na defesa de seus interesses.\n\n")
	fmt.Fprintf(b, "Lembre-se: este relatório não substitui consulta com advogado e não constitui parecer jurídico formal. Para uma avaliação precisa e confiável, procure sempre um profissional qualificado e devidamente inscrito na OAB.\n\n")
}

func urgencyWord(u diagnostic.UrgencyLevel) string {
	switch u {
	case diagnostic.UrgencyHigh:
		return "ALTO"
	case diagnostic.UrgencyMedium:
		return "MÉDIO"
	default:
		return "BAIXO"
	}
}

// fmtPoints renders a point total without a trailing ".0" for whole
// values, matching how scores read in the questionnaire UI.
func fmtPoints(points float64) string {
	if points == float64(int64(points)) {
		return fmt.Sprintf("%d", int64(points))
	}
	return fmt.Sprintf("%.1f", points)
}
