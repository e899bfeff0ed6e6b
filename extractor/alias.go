package extractor

// DefaultAliases is the built-in table of semantic account keys and the
// textual variants each may appear under in a DRE export. Variant order is
// resolution order. The table is copied on access; the engine never mutates
// an alias table after construction.
func DefaultAliases() map[string][]string {
	aliases := map[string][]string{
		"receita_bruta": {
			"receita bruta",
			"receita operacional bruta",
			"faturamento bruto",
			"faturamento",
		},
		"deducoes": {
			"deduções (-)",
			"deduções da receita",
			"deduções",
			"impostos sobre vendas",
		},
		"receita_liquida": {
			"receita líquida (=)",
			"receita líquida",
			"receita operacional líquida",
		},
		"cmv": {
			"cmv",
			"cpv",
			"custo das mercadorias vendidas",
			"custo dos produtos vendidos",
			"custo dos serviços prestados",
		},
		"lucro_bruto": {
			"lucro bruto (=)",
			"lucro bruto",
			"resultado bruto",
		},
		"despesas_operacionais": {
			"despesas operacionais (-)",
			"despesas operacionais",
			"despesas administrativas",
		},
		"ebitda": {
			"ebitda",
			"lajida",
			"ebitda (=)",
		},
		"depreciacao": {
			"depreciação e amortização",
			"depreciação",
			"amortização",
		},
		"ebit": {
			"ebit",
			"lajir",
			"resultado operacional",
		},
		"resultado_financeiro": {
			"resultado financeiro",
			"receitas financeiras",
			"despesas financeiras",
		},
		"impostos": {
			"impostos (ir/csll)",
			"ir e csll",
			"irpj e csll",
			"impostos",
		},
		"lucro_liquido": {
			"lucro líquido (=)",
			"lucro líquido",
			"resultado líquido",
			"resultado do exercício",
		},
	}

	out := make(map[string][]string, len(aliases))
	for key, variants := range aliases {
		out[key] = append([]string(nil), variants...)
	}
	return out
}
