// Package categorize maps free-text merchant descriptions and payroll codes
// onto the fixed category taxonomy. All tables are built once at package
// init and never change at runtime.
package categorize

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// CategoryOther is assigned when no keyword matches a merchant description.
const CategoryOther = "Outros"

// categoryKeywords pairs a category with the keywords that select it.
// Table order matters: a description matching keywords from two categories
// resolves to whichever category appears first here (LIVRARIA is both Lazer
// and Educação; Lazer wins).
type categoryKeywords struct {
	Name     string
	Keywords []string
}

var merchantTable = []categoryKeywords{
	{"Alimentação", []string{
		"SUPERMERCADO", "PADARIA", "MERCADO", "HORTIFRUTI", "ACOUGUE", "FEIRA",
		"EMPORIO", "ATACADAO", "EXTRA", "CARREFOUR", "WALMART", "BIG", "ASSAI",
	}},
	{"Restaurante", []string{
		"RESTAURANTE", "MCDONALDS", "SUBWAY", "IFOOD", "UBER EATS", "BURGUER",
		"PIZZA", "LANCHONETE", "BAR", "CAFE", "CAFETERIA", "DELIVERY", "FOOD",
		"OUTBACK", "SPOLETO", "HABIB", "GIRAFFAS", "BOBS",
	}},
	{"Transporte", []string{
		"UBER", "99", "POSTO", "PETROBRAS", "SHELL", "ESTACIONAMENTO", "PEDAGIO",
		"METRO", "ONIBUS", "TAXI", "COMBUSTIVEL", "GASOLINA", "ALCOOL", "DIESEL",
	}},
	{"Lazer", []string{
		"CINEMA", "NETFLIX", "SPOTIFY", "AMAZON PRIME", "SHOPPING", "LIVRARIA",
		"TEATRO", "PARQUE", "CLUBE", "YOUTUBE", "DISNEY", "GLOBOPLAY",
	}},
	{"Saúde", []string{
		"FARMACIA", "DROGA", "DROGASIL", "CLINICA", "LABORATORIO", "DENTISTA",
		"HOSPITAL", "MEDICO", "ULTRAFARMA", "PACHECO", "RAIA",
	}},
	{"Vestuário", []string{
		"ZARA", "C&A", "RENNER", "NIKE", "ADIDAS", "ROUPA", "CALCADO", "SAPATO",
		"TENIS", "RIACHUELO", "MARISA", "LOJAS AMERICANAS",
	}},
	{"Casa", []string{
		"LEROY MERLIN", "CASAS BAHIA", "AMERICANAS", "MOVEIS", "DECORACAO",
		"CONSTRUCAO", "MAGAZINE LUIZA", "PONTO FRIO", "FAST SHOP",
	}},
	{"Educação", []string{
		"LIVRARIA", "CURSO", "UNIVERSIDADE", "MATERIAL ESCOLAR", "ESCOLA",
		"FACULDADE", "LIVRO", "SARAIVA", "CULTURA",
	}},
	{"Serviços", []string{
		"CLARO", "VIVO", "TIM", "CONTA", "SEGURO", "INTERNET", "BANCO",
		"CARTORIO", "CORREIOS", "OI", "SKY", "NET",
	}},
}

// merchantEngine finds every keyword occurrence in a single pass and keeps
// the position of each keyword's category in the table so ties resolve in
// table order.
type merchantEngine struct {
	matcher *ahocorasick.Matcher
	// categoryRank[i] is the table position of the category owning pattern i.
	categoryRank []int
	categories   []string
}

var defaultMerchantEngine = newMerchantEngine(merchantTable)

func newMerchantEngine(table []categoryKeywords) *merchantEngine {
	var patterns [][]byte
	var rank []int
	var names []string
	for ci, cat := range table {
		for _, kw := range cat.Keywords {
			patterns = append(patterns, []byte(kw))
			rank = append(rank, ci)
		}
		names = append(names, cat.Name)
	}
	return &merchantEngine{
		matcher:      ahocorasick.NewMatcher(patterns),
		categoryRank: rank,
		categories:   names,
	}
}

// Merchant returns the category for a merchant description. Matching is a
// case-insensitive substring search over the ordered keyword table; the
// first category in table order with any matching keyword wins, and a
// description with no match is CategoryOther.
func Merchant(description string) string {
	hits := defaultMerchantEngine.matcher.Match([]byte(strings.ToUpper(description)))
	if len(hits) == 0 {
		return CategoryOther
	}
	best := -1
	for _, h := range hits {
		if h < 0 || h >= len(defaultMerchantEngine.categoryRank) {
			continue
		}
		if r := defaultMerchantEngine.categoryRank[h]; best == -1 || r < best {
			best = r
		}
	}
	if best == -1 {
		return CategoryOther
	}
	return defaultMerchantEngine.categories[best]
}
