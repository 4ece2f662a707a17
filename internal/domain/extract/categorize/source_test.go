package categorize

import "testing"

func TestDetectCard(t *testing.T) {
	tests := []struct {
		fileName string
		text     string
		want     string
	}{
		{"fatura_azul_maio.pdf", "", "Azul"},
		{"fatura.pdf", "SANTANDER FATURA DO CARTAO", "Santander"},
		{"samsung_itaucard.pdf", "", "Samsung"},
		{"fatura_caixa.pdf", "CARTAO ELO INTERNACIONAL", "Caixa Elo"},
		{"fatura_caixa.pdf", "CARTAO VISA GOLD", "Caixa Visa"},
		{"fatura_caixa.pdf", "", "Caixa"},
		{"fatura.pdf", "CARTAO VISA", "Visa"},
		{"fatura.pdf", "MASTERCARD BLACK", "Mastercard"},
		{"fatura.pdf", "SEM EMISSOR", "Cartão"},
	}

	for _, tt := range tests {
		if got := DetectCard(tt.fileName, tt.text); got != tt.want {
			t.Errorf("DetectCard(%q, %q) = %q, want %q", tt.fileName, tt.text, got, tt.want)
		}
	}
}

func TestDetectEmployer(t *testing.T) {
	tests := []struct {
		fileName string
		text     string
		want     string
	}{
		{"contracheque_caixa.pdf", "", "Caixa Econômica Federal"},
		{"holerite.pdf", "PETROBRAS S.A.", "Petrobras"},
		{"holerite.pdf", "BANCO DO BRASIL", "Banco do Brasil"},
		{"holerite.pdf", "EMPREGADOR LTDA", "Empresa"},
	}

	for _, tt := range tests {
		if got := DetectEmployer(tt.fileName, tt.text); got != tt.want {
			t.Errorf("DetectEmployer(%q, %q) = %q, want %q", tt.fileName, tt.text, got, tt.want)
		}
	}
}
