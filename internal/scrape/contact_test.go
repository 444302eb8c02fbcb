package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "kontakt label",
			text: "Hör av dig! Kontakt: Anna Svensson, 070-123 45 67",
			want: "Anna Svensson",
		},
		{
			name: "maklare label",
			text: "Mäklare: Erik Lindqvist svarar på frågor om objektet.",
			want: "Erik Lindqvist",
		},
		{
			name: "bare name before phone",
			text: "Ring Anna Svensson 070-123 45 67 för visning",
			want: "Anna Svensson",
		},
		{
			name: "four tokens rejected",
			text: "Anna Svensson Bengtsson Karlsson",
			want: "",
		},
		{
			name: "labelled four tokens rejected",
			text: "Kontakt: Anna Svensson Bengtsson Karlsson",
			want: "",
		},
		{
			name: "no name at all",
			text: "Etablerad verksamhet i centrala lägen med god lönsamhet.",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractContactName(tt.text))
		})
	}
}

func TestExtractPhoneCascadeOrdering(t *testing.T) {
	// Both formats present: the international pattern is tried first and
	// wins even though the national number appears earlier in the text.
	text := "Växel 08-123 45 67. Direktnummer +46 70 123 45 67."
	assert.Equal(t, "+46 70 123 45 67", extractPhone(text))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international", "Nås på +46 70 123 45 67 vardagar", "+46 70 123 45 67"},
		{"national leading zero", "Ring 08-123 45 67 för mer info", "08-123 45 67"},
		{"mobile national", "Mobil: 070-123 45 67", "070-123 45 67"},
		{"bare grouped", "Telefon 070 123 45 67", "070 123 45 67"},
		{"no phone", "Kontakta oss via formuläret nedan.", ""},
		{"ungrouped digits rejected", "Org.nr 5561234567", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractContact(t *testing.T) {
	text := "Lönsamt bageri i city. Kontakt: Anna Svensson. " +
		"Telefon +46 70 123 45 67, e-post anna.svensson@maklarfirma.se."
	info := ExtractContact("Bageri i Solna till salu - Bolagsplatsen", text)

	assert.Equal(t, "Bageri i Solna till salu", info.BusinessName)
	assert.Equal(t, "Anna Svensson", info.ContactName)
	assert.Equal(t, "+46 70 123 45 67", info.PhoneNumber)
	assert.Equal(t, "anna.svensson@maklarfirma.se", info.Email)
}

func TestExtractContactAbsenceIsNotAnError(t *testing.T) {
	info := ExtractContact("", "")
	assert.Equal(t, "", info.BusinessName)
	assert.Equal(t, "", info.PhoneNumber)
	assert.Equal(t, "", info.ContactName)
	assert.Equal(t, "", info.Email)
}

func TestBusinessNameFromTitle(t *testing.T) {
	assert.Equal(t, "Bageri i Solna", businessNameFromTitle("Bageri i Solna - Bolagsplatsen"))
	assert.Equal(t, "Utan separator", businessNameFromTitle("Utan separator"))
	assert.Equal(t, "", businessNameFromTitle(""))
}
