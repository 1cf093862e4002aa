package report

// Per-area legal knowledge consumed by the composer: main-rights
// clauses, response interpretations, statute blocks, document and
// authority lists, and cost/duration assessments. Everything here is
// domain data keyed by area id; the composition algorithm itself lives
// in composer.go and treats unknown areas with the generic fallbacks
// at the bottom of this file.

// interpretationKeyMultiple marks the interpretation used when a
// multi-choice question has at least one selected option, regardless
// of which options were chosen.
const interpretationKeyMultiple = "multiple"

type rightRule struct {
	QuestionID string // empty means the right applies to the area unconditionally
	Text       string
}

type areaKnowledge struct {
	Rights          []rightRule
	Interpretations map[string]map[string]string
	Foundation      string
	Documents       []string
	Authorities     []string
	CostVerdict     string
	CostText        string
	DurationVerdict string
	DurationText    string
}

var knowledgeByArea = map[string]areaKnowledge{
	"trabalhista": {
		Rights: []rightRule{
			{QuestionID: "trab_1", Text: "direito às verbas rescisórias (art. 477 da CLT)"},
			{QuestionID: "trab_2", Text: "direito ao pagamento de horas extras (art. 59 da CLT)"},
			{QuestionID: "trab_3", Text: "direito ao registro em carteira de trabalho (art. 29 da CLT)"},
			{QuestionID: "trab_4", Text: "direito à integridade moral e dignidade no trabalho (art. 483 da CLT e art. 5º da CF)"},
		},
		Interpretations: map[string]map[string]string{
			"trab_1": {
				"sim_nada": "A ausência de pagamento das verbas rescisórias configura infração ao art. 477 da CLT. O empregador tem até 10 dias após o término do contrato para realizar o pagamento, sob pena de multa equivalente ao salário do empregado. Além disso, o trabalhador pode buscar o pagamento na Justiça do Trabalho, que incluirá correção monetária e juros.",
				"parcial":  "O pagamento parcial das verbas rescisórias pode indicar irregularidade. É importante verificar quais verbas foram pagas e quais foram omitidas, comparando com o cálculo correto previsto na legislação trabalhista.",
			},
			"trab_2": {
				"frequente": "O trabalho em horas extras sem a devida remuneração viola o art. 59 da CLT, que garante adicional mínimo de 50% sobre o valor da hora normal. É importante reunir evidências como controles de ponto, emails, mensagens ou testemunhas que comprovem a jornada extraordinária.",
			},
			"trab_3": {
				"sem_registro":  "O trabalho sem registro em carteira configura grave violação trabalhista. O empregado tem direito ao reconhecimento do vínculo empregatício e a todos os direitos decorrentes (FGTS, férias, 13º, etc.). A prescrição é de 5 anos a partir do término do contrato (art. 7º, XXIX da CF).",
				"salario_menor": "O registro com salário menor que o efetivamente pago caracteriza fraude trabalhista. Esta prática prejudica o cálculo de férias, 13º salário, FGTS e outros direitos, além de configurar possível sonegação previdenciária.",
			},
			"trab_4": {
				"sim_evidencias": "O assédio moral no ambiente de trabalho, quando comprovado, pode gerar direito a indenização por danos morais, além de possibilitar a rescisão indireta do contrato (art. 483 da CLT). A existência de provas fortalece significativamente o caso.",
			},
			"trab_5": {
				interpretationKeyMultiple: "A ausência de pagamento de benefícios trabalhistas constitui infração à CLT. Cada benefício possui regras específicas de cálculo e prazos prescricionais. É fundamental reunir documentos como contracheques, extratos do FGTS e demais comprovantes.",
			},
		},
		Foundation: "LEGISLAÇÃO APLICÁVEL:\n\n" +
			"• Consolidação das Leis do Trabalho (CLT) - Decreto-Lei nº 5.452/1943\n" +
			"  - Art. 29: Obrigatoriedade de anotação na CTPS\n" +
			"  - Art. 59: Horas extras e adicional de 50%\n" +
			"  - Art. 129 a 138: Férias anuais remuneradas\n" +
			"  - Art. 477: Prazo e forma de pagamento das verbas rescisórias\n" +
			"  - Art. 483: Rescisão indireta por falta grave do empregador\n\n" +
			"• Constituição Federal de 1988\n" +
			"  - Art. 5º: Direitos fundamentais, dignidade da pessoa humana\n" +
			"  - Art. 7º: Direitos dos trabalhadores urbanos e rurais\n" +
			"  - Art. 7º, XXIX: Prazo prescricional de 5 anos\n\n" +
			"• Lei nº 8.036/1990 - FGTS\n" +
			"  - Arts. 15 a 18: Depósito obrigatório de 8% do salário\n",
		Documents: []string{
			"Carteira de Trabalho (CTPS) - todas as páginas",
			"Contracheques de todo o período trabalhado",
			"Termo de Rescisão do Contrato de Trabalho (TRCT)",
			"Extratos do FGTS",
			"Controles de ponto (se houver)",
			"Mensagens, emails ou comunicações com empregador",
			"Testemunhas que possam confirmar a jornada e condições de trabalho",
		},
		Authorities: []string{
			"Ministério do Trabalho e Emprego (MTE) - denúncias e fiscalização",
			"Sindicato da categoria - orientação e assistência",
			"Justiça do Trabalho - ações judiciais",
			"Defensoria Pública - assistência jurídica gratuita (se aplicável)",
			"Advogado especializado em Direito do Trabalho",
		},
		CostVerdict: "BAIXO A MÉDIO",
		CostText: "Na Justiça do Trabalho, o trabalhador que recebe até dois salários mínimos ou declara insuficiência econômica tem direito à gratuidade de justiça. " +
			"Honorários advocatícios podem ser baseados em percentual do valor obtido (êxito). Não há custas iniciais para ajuizar ação trabalhista.",
		DurationVerdict: "6 a 18 MESES",
		DurationText: "Processos trabalhistas em 1ª instância costumam durar entre 6 meses e 1 ano em média, podendo se estender se houver recursos. " +
			"Acordos podem resolver o caso em semanas ou poucos meses.",
	},
	"consumidor": {
		Rights: []rightRule{
			{Text: "direitos básicos do consumidor (arts. 6º e 18 do CDC)"},
			{Text: "direito à reparação de danos (art. 6º, VI do CDC)"},
		},
		Interpretations: map[string]map[string]string{
			"cons_1": {
				"recusa":     "O Código de Defesa do Consumidor (art. 18) garante o direito à troca, reparo ou devolução do valor pago em caso de produto com defeito. O fornecedor tem 30 dias para solucionar o problema, após o que o consumidor pode exigir uma das três opções previstas em lei.",
				"negociacao": "O Código de Defesa do Consumidor (art. 18) garante o direito à troca, reparo ou devolução do valor pago em caso de produto com defeito. O fornecedor tem 30 dias para solucionar o problema, após o que o consumidor pode exigir uma das três opções previstas em lei.",
			},
			"cons_2": {
				"pagou": "A cobrança indevida com pagamento efetivo dá direito à repetição em dobro do indébito (art. 42, parágrafo único do CDC), além de eventual indenização por danos morais quando houver negativação ou constrangimento.",
			},
			"cons_3": {
				interpretationKeyMultiple: "As condutas relatadas podem caracterizar prática abusiva nos termos do art. 39 do CDC. A documentação de protocolos, contratos e comunicações é essencial para comprovar cada ocorrência.",
			},
		},
		Foundation: "LEGISLAÇÃO APLICÁVEL:\n\n" +
			"• Lei nº 8.078/1990 - Código de Defesa do Consumidor (CDC)\n" +
			"  - Art. 6º: Direitos básicos do consumidor\n" +
			"  - Art. 18: Responsabilidade por vício do produto\n" +
			"  - Art. 20: Responsabilidade por vício do serviço\n" +
			"  - Art. 42: Cobrança de dívidas, vedação ao constrangimento\n" +
			"  - Art. 42, parágrafo único: Repetição em dobro do indébito\n\n" +
			"• Constituição Federal de 1988\n" +
			"  - Art. 5º, XXXII: Defesa do consumidor como direito fundamental\n",
		Documents: []string{
			"Nota fiscal ou comprovante de compra",
			"Contrato ou termos de adesão",
			"Comprovantes de pagamento",
			"Protocolo de reclamações junto ao fornecedor",
			"Emails, mensagens ou gravações de atendimento",
			"Fotos ou vídeos do produto/serviço defeituoso",
			"Laudos técnicos (se houver)",
		},
		Authorities: []string{
			"Procon - reclamações e mediação",
			"Consumidor.gov.br - plataforma online de reclamações",
			"Juizados Especiais Cíveis - ações até 40 salários mínimos",
			"Ministério Público - defesa de interesses coletivos",
			"Advogado especializado em Direito do Consumidor",
		},
		CostVerdict: "BAIXO",
		CostText: "Causas de até 20 salários mínimos podem ser propostas no Juizado Especial Cível sem necessidade de advogado e sem custas iniciais (se não houver recurso). " +
			"Para valores maiores ou maior complexidade, os custos variam conforme o profissional contratado.",
		DurationVerdict: "3 a 12 MESES",
		DurationText: "No Juizado Especial Cível, processos costumam ser mais céleres (3 a 6 meses). Na justiça comum, pode levar de 1 a 2 anos. " +
			"Soluções administrativas (Procon) podem ocorrer em 30 a 60 dias.",
	},
	"previdenciario": {
		Rights: []rightRule{
			{Text: "direito aos benefícios previdenciários (Lei 8.213/91)"},
			{Text: "direito ao devido processo administrativo (art. 5º, LV da CF)"},
		},
		Interpretations: map[string]map[string]string{
			"prev_1": {
				"negado":  "A negativa de benefício previdenciário deve ser fundamentada. O segurado tem direito ao devido processo administrativo e pode contestar a decisão através de recurso administrativo ou ação judicial. É importante verificar se todos os requisitos legais foram efetivamente cumpridos.",
				"cessado": "A cessação de benefício sem reavaliação adequada pode ser contestada administrativa ou judicialmente. O segurado tem direito à manutenção do benefício enquanto persistirem os requisitos que justificaram a concessão.",
			},
			"prev_2": {
				"mais_90": "A demora superior a 90 dias na análise de requerimento administrativo extrapola o prazo razoável reconhecido pelos tribunais, podendo justificar mandado de segurança para obrigar o INSS a decidir.",
			},
			"prev_3": {
				interpretationKeyMultiple: "A documentação reunida fortalece a instrução do requerimento ou da ação judicial. Documentos faltantes podem ser obtidos junto ao INSS, ao empregador ou por meio judicial.",
			},
		},
		Foundation: "LEGISLAÇÃO APLICÁVEL:\n\n" +
			"• Lei nº 8.213/1991 - Plano de Benefícios da Previdência Social\n" +
			"  - Arts. 18 a 47: Benefícios previdenciários\n" +
			"  - Art. 42: Aposentadoria por idade\n" +
			"  - Art. 57: Aposentadoria especial\n\n" +
			"• Lei nº 8.212/1991 - Organização da Seguridade Social\n" +
			"  - Arts. 11 a 16: Segurados da Previdência Social\n\n" +
			"• Constituição Federal de 1988\n" +
			"  - Arts. 201 e 202: Previdência social\n",
		Documents: []string{
			"Documento de identidade e CPF",
			"CNIS - Cadastro Nacional de Informações Sociais",
			"Carta de indeferimento ou cessação do benefício",
			"Comprovantes de contribuição previdenciária",
			"Laudos médicos e exames (se aplicável)",
			"Carteira de trabalho e contracheques",
		},
		Authorities: []string{
			"INSS - Agência da Previdência Social ou portal Meu INSS",
			"Junta de Recursos do INSS - recurso administrativo",
			"Justiça Federal - ações contra o INSS",
			"Defensoria Pública - assistência jurídica gratuita",
			"Advogado especializado em Direito Previdenciário",
		},
		CostVerdict: "MÉDIO",
		CostText: "Os custos variam conforme a complexidade do caso e a necessidade de perícias ou outros procedimentos. " +
			"A assistência da Defensoria Pública é gratuita para quem não pode arcar com advogado particular.",
		DurationVerdict: "12 a 36 MESES",
		DurationText: "Ações previdenciárias podem ser mais demoradas, especialmente se houver necessidade de perícia médica. " +
			"Recursos administrativos no INSS levam de 90 a 180 dias. Processos judiciais podem durar de 1 a 3 anos.",
	},
}

// Generic fallbacks used when the area has no knowledge entry. Cost
// and duration reuse the most conservative assessment.
const (
	fallbackRights         = "direitos fundamentais constitucionais"
	fallbackInterpretation = "Esta situação merece análise detalhada por profissional qualificado para avaliar todos os aspectos jurídicos envolvidos."
)

var fallbackKnowledge = areaKnowledge{
	Documents: []string{
		"Todos os documentos relacionados ao caso (contratos, comprovantes, comunicações)",
		"Registros de datas, valores e pessoas envolvidas",
		"Provas materiais disponíveis (fotos, laudos, mensagens)",
	},
	Authorities: []string{
		"Defensoria Pública - assistência jurídica gratuita",
		"Ministério Público - quando houver interesse coletivo",
		"Advogado especializado na área do caso",
	},
	CostVerdict: "MÉDIO",
	CostText: "Os custos variam conforme a complexidade do caso e a necessidade de perícias ou outros procedimentos. " +
		"A assistência da Defensoria Pública é gratuita para quem não pode arcar com advogado particular.",
	DurationVerdict: "12 a 36 MESES",
	DurationText: "O tempo de tramitação varia conforme a via escolhida (administrativa ou judicial) e a complexidade probatória. " +
		"Soluções negociadas tendem a ser significativamente mais rápidas.",
}

func knowledgeFor(areaID string) areaKnowledge {
	if k, ok := knowledgeByArea[areaID]; ok {
		return k
	}
	return fallbackKnowledge
}

// interpretationFor resolves the (area, question, answer) lookup with
// the generic fallback sentence when no specific entry exists.
func interpretationFor(areaID, questionID, answer string) string {
	if byQuestion, ok := knowledgeByArea[areaID]; ok {
		if byAnswer, ok := byQuestion.Interpretations[questionID]; ok {
			if text, ok := byAnswer[answer]; ok {
				return text
			}
		}
	}
	return fallbackInterpretation
}
