package catalog

import "github.com/alopes/diagnostico-juridico/internal/diagnostic"

// Default question sets for the three launch areas. The catalog is
// configuration data: edits happen here or in an external JSON file,
// never at runtime.

func trabalhistaArea() diagnostic.LegalArea {
	return diagnostic.LegalArea{
		ID:          "trabalhista",
		Name:        "Trabalhista",
		Description: "Demissão, verbas rescisórias, horas extras, registro em carteira e assédio no trabalho",
		Questions: append([]diagnostic.Question{
			{
				ID:     "trab_1",
				Text:   "Você foi demitido e recebeu as verbas rescisórias?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Fui demitido e não recebi nada", Value: "sim_nada", Points: 20},
					{Label: "Recebi apenas parte das verbas", Value: "parcial", Points: 12},
					{Label: "Recebi tudo corretamente", Value: "recebi_tudo", Points: 0},
					{Label: "Ainda estou empregado", Value: "empregado", Points: 0},
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
					{Label: "Não fazia horas extras", Value: "nao", Points: 0},
				},
			},
			{
				ID:     "trab_3",
				Text:   "Como era o seu registro em carteira de trabalho?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Trabalhei sem registro", Value: "sem_registro", Points: 20},
					{Label: "Registrado com salário menor que o real", Value: "salario_menor", Points: 18},
					{Label: "Registrado corretamente", Value: "registrado", Points: 0},
				},
			},
			{
				ID:     "trab_4",
				Text:   "Você sofreu assédio moral no ambiente de trabalho?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Sim, e tenho evidências (mensagens, testemunhas)", Value: "sim_evidencias", Points: 20},
					{Label: "Sim, mas não tenho provas", Value: "sim_sem_provas", Points: 10},
					{Label: "Não", Value: "nao", Points: 0},
				},
			},
			{
				ID:     "trab_5",
				Text:   "Quais benefícios deixaram de ser pagos? (marque todos que se aplicam)",
				Type:   diagnostic.QuestionMultiChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "FGTS", Value: "fgts", Points: 12},
					{Label: "13º salário", Value: "decimo_terceiro", Points: 12},
					{Label: "Férias", Value: "ferias", Points: 12},
					{Label: "Vale-transporte ou vale-refeição", Value: "vales", Points: 6},
				},
			},
		}, commonQuestions("trab")...),
	}
}

func consumidorArea() diagnostic.LegalArea {
	return diagnostic.LegalArea{
		ID:          "consumidor",
		Name:        "Direito do Consumidor",
		Description: "Produtos com defeito, cobranças indevidas, serviços não prestados e negativação",
		Questions: append([]diagnostic.Question{
			{
				ID:     "cons_1",
				Text:   "Você comprou um produto ou serviço com defeito que não foi resolvido?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Sim, e o fornecedor se recusa a resolver", Value: "recusa", Points: 20},
					{Label: "Sim, está em negociação há mais de 30 dias", Value: "negociacao", Points: 14},
					{Label: "Sim, mas foi resolvido", Value: "resolvido", Points: 2},
					{Label: "Não", Value: "nao", Points: 0},
				},
			},
			{
				ID:     "cons_2",
				Text:   "Você recebeu cobranças que considera indevidas?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Sim, e cheguei a pagar valores indevidos", Value: "pagou", Points: 18},
					{Label: "Sim, mas não paguei", Value: "nao_pagou", Points: 12},
					{Label: "Não", Value: "nao", Points: 0},
				},
			},
			{
				ID:     "cons_3",
				Text:   "Quais situações você enfrentou com o fornecedor? (marque todas)",
				Type:   diagnostic.QuestionMultiChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Nome negativado indevidamente", Value: "negativacao", Points: 16},
					{Label: "Atendimento se recusa a dar protocolo", Value: "sem_protocolo", Points: 8},
					{Label: "Propaganda enganosa", Value: "propaganda", Points: 10},
					{Label: "Contrato com cláusulas que não foram explicadas", Value: "clausulas", Points: 8},
				},
			},
		}, commonQuestions("cons")...),
	}
}

func previdenciarioArea() diagnostic.LegalArea {
	return diagnostic.LegalArea{
		ID:          "previdenciario",
		Name:        "Previdenciário",
		Description: "Benefícios do INSS negados, cessados ou com valor incorreto",
		Questions: append([]diagnostic.Question{
			{
				ID:     "prev_1",
				Text:   "Você teve um benefício do INSS negado ou cessado?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Sim, negado sem justificativa clara", Value: "negado", Points: 20},
					{Label: "Sim, benefício foi cessado", Value: "cessado", Points: 18},
					{Label: "Sim, mas a negativa foi fundamentada", Value: "fundamentado", Points: 8},
					{Label: "Não", Value: "nao", Points: 0},
				},
			},
			{
				ID:     "prev_2",
				Text:   "Há quanto tempo você aguarda resposta do INSS?",
				Type:   diagnostic.QuestionSingleChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Mais de 90 dias", Value: "mais_90", Points: 16},
					{Label: "Entre 45 e 90 dias", Value: "entre_45_90", Points: 10},
					{Label: "Menos de 45 dias", Value: "menos_45", Points: 4},
					{Label: "Não tenho pedido pendente", Value: "sem_pedido", Points: 0},
				},
			},
			{
				ID:     "prev_3",
				Text:   "Quais documentos você já possui? (marque todos)",
				Type:   diagnostic.QuestionMultiChoice,
				Weight: 1,
				Options: []diagnostic.QuestionOption{
					{Label: "Carta de indeferimento", Value: "carta", Points: 6},
					{Label: "Extrato CNIS", Value: "cnis", Points: 6},
					{Label: "Laudos médicos", Value: "laudos", Points: 6},
					{Label: "Comprovantes de contribuição", Value: "contribuicoes", Points: 6},
				},
			},
		}, commonQuestions("prev")...),
	}
}

// commonQuestions returns the two questions appended to every area:
// the existing-lawyer question and the free-text narrative that closes
// each questionnaire.
func commonQuestions(prefix string) []diagnostic.Question {
	return []diagnostic.Question{
		{
			ID:     prefix + "_lawyer",
			Text:   "Você já tem advogado contratado ou processo em andamento sobre este assunto?",
			Type:   diagnostic.QuestionSingleChoice,
			Weight: 1,
			Options: []diagnostic.QuestionOption{
				{Label: "Sim, já tenho advogado contratado", Value: "tem_advogado", Points: 5},
				{Label: "Sim, já tenho processo em andamento", Value: "tem_processo", Points: 10},
				{Label: "Sim, tenho ambos", Value: "tem_ambos", Points: 10},
				{Label: "Não", Value: "nao", Points: 0},
			},
		},
		{
			ID:     prefix + "_narrative",
			Text:   "Descreva sua situação com suas próprias palavras. Inclua todos os detalhes que considerar importantes:",
			Type:   diagnostic.QuestionFreeText,
			Weight: 0,
		},
	}
}
