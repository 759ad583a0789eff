package i18n

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryLocaleDefinesEveryKey(t *testing.T) {
	assert.ElementsMatch(t, messageKeys(), keysOf(enUS))

	for _, locale := range Locales() {
		p := NewPrinter(locale)
		for _, key := range messageKeys() {
			assert.NotEqual(t, key, p.sprintf(key), "%s missing %s", locale, key)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "pt-BR"},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"en-US", "en-US"},
		{"en-GB", "en-US"},
		{"not a tag!", "pt-BR"},
		{"ja-JP", "pt-BR"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale).String())
		})
	}
}

func TestPrinterFormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter("pt-BR").Fprintf(&buf, LoginSuccess, "Ana Souza")
	assert.Equal(t, "\n✅ Login realizado com sucesso! Bem-vindo, Ana Souza!\n", buf.String())

	got := NewPrinter("en-US").sprintf(ListEntry, "1", "Ana Souza", "ana", "F", "31")
	assert.Equal(t, "1. Full name: Ana Souza\n   Username: ana\n   Sex: F | Age: 31\n\n", got)
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
