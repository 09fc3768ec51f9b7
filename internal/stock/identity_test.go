package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold_TurkishLetters(t *testing.T) {
	cases := map[string]string{
		"Çıktı":    "cikti",
		"GİRİŞ":    "giris",
		"Monitör":  "monitor",
		"IŞIK":     "isik",
		"Ağ Cihazı": "ag cihazi",
		" Laptop ": "laptop",
		"":         "",
		"   ":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}

func TestFold_Idempotent(t *testing.T) {
	for _, s := range []string{"Çıktı", "GİRİŞ", "Monitör", "Dell XPS 13", "yazıcı"} {
		once := Fold(s)
		assert.Equal(t, once, Fold(once), "Fold not idempotent for %q", s)
	}
}

func TestNormalizeKind_Synonyms(t *testing.T) {
	cases := map[string]string{
		"giris":  KindInbound,
		"GİRİŞ":  KindInbound,
		"Girdi":  KindInbound,
		"alım":   KindInbound,
		"Çıktı":  KindOutbound,
		"cikti":  KindOutbound,
		"ÇIKIŞ":  KindOutbound,
		"Hurda":  KindScrap,
		"zimmet": KindAllocation,
		"Atama":  KindAllocation,
	}
	for in, want := range cases {
		got, err := NormalizeKind(in)
		require.NoError(t, err, "NormalizeKind(%q)", in)
		assert.Equal(t, want, got, "NormalizeKind(%q)", in)
	}
}

func TestNormalizeKind_Unknown(t *testing.T) {
	for _, in := range []string{"transfer", "iade", "", "girisler"} {
		_, err := NormalizeKind(in)
		assert.Equal(t, ErrUnknownMovementKind, err, "NormalizeKind(%q)", in)
	}
}

func TestIdentity_KeyAndLabel(t *testing.T) {
	id := Identity{HardwareType: "laptop", Brand: "dell", Model: "xps 13", Reference: "ifs-42"}
	assert.Equal(t, "laptop|dell|xps 13|ifs-42", id.Key())
	assert.Equal(t, "laptop / dell / xps 13 [ifs-42]", id.Label())

	bare := Identity{HardwareType: "monitor"}
	assert.Equal(t, "monitor|||", bare.Key())
	assert.Equal(t, "monitor", bare.Label())
}

func TestCanonicalize_FoldsEveryField(t *testing.T) {
	id := Identity{
		HardwareType: " Monitör ",
		Brand:        "DELL",
		Model:        "Ultrasharp Ç100",
		Reference:    "IFS-1",
	}.Canonicalize()
	assert.Equal(t, Identity{
		HardwareType: "monitor",
		Brand:        "dell",
		Model:        "ultrasharp c100",
		Reference:    "ifs-1",
	}, id)
	assert.Equal(t, id, id.Canonicalize())
}
