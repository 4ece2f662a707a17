package categorize

import "strings"

// DefaultCard and DefaultEmployer are returned when nothing in the file
// name or document text identifies the issuer.
const (
	DefaultCard     = "Cartão"
	DefaultEmployer = "Empresa"
	PayslipCard     = "Contracheque"
)

// DetectCard identifies the card issuer from the source file name and the
// extracted text, case-insensitive. Caixa cards are further split by brand.
func DetectCard(fileName, text string) string {
	name := strings.ToLower(fileName)
	body := strings.ToLower(text)
	has := func(kw string) bool {
		return strings.Contains(name, kw) || strings.Contains(body, kw)
	}

	switch {
	case has("azul"):
		return "Azul"
	case has("santander"):
		return "Santander"
	case has("samsung"):
		return "Samsung"
	case has("caixa"):
		switch {
		case has("elo"):
			return "Caixa Elo"
		case has("visa"):
			return "Caixa Visa"
		default:
			return "Caixa"
		}
	case has("visa"):
		return "Visa"
	case has("mastercard"):
		return "Mastercard"
	default:
		return DefaultCard
	}
}

// DetectEmployer identifies the paying entity ("fonte") of a payslip from
// the file name and text.
func DetectEmployer(fileName, text string) string {
	name := strings.ToLower(fileName)
	body := strings.ToLower(text)
	has := func(kw string) bool {
		return strings.Contains(name, kw) || strings.Contains(body, kw)
	}

	switch {
	case has("caixa"):
		return "Caixa Econômica Federal"
	case has("petrobras"):
		return "Petrobras"
	case has("vale"):
		return "Vale"
	case has("itau"):
		return "Itaú"
	case has("bradesco"):
		return "Bradesco"
	case has("banco do brasil"):
		return "Banco do Brasil"
	default:
		return DefaultEmployer
	}
}
