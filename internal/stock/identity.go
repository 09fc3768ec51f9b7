package stock

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical movement kinds as stored in the islem column.
const (
	KindInbound    = "giris"  // stock received
	KindOutbound   = "cikti"  // stock handed out without a target record
	KindScrap      = "hurda"  // scrapped
	KindAllocation = "zimmet" // converted into a target record
)

// Allocation target kinds.
const (
	TargetInventory = "envanter"
	TargetLicense   = "lisans"
	TargetPrinter   = "yazici"
)

// Identity is the natural key of one fungible stock pool. Fields hold the
// canonical (folded) form; two movements belong to the same pool iff their
// identities are equal. Brand, model and reference may be empty.
type Identity struct {
	HardwareType string `json:"donanim_tipi"`
	Brand        string `json:"marka"`
	Model        string `json:"model"`
	Reference    string `json:"ifs_no"`
}

// Key renders the identity as a stable pipe-joined string, used as the
// option id in allocation pickers.
func (id Identity) Key() string {
	return id.HardwareType + "|" + id.Brand + "|" + id.Model + "|" + id.Reference
}

// Label renders the identity for humans: "tip / marka model [ref]".
func (id Identity) Label() string {
	parts := []string{id.HardwareType}
	if id.Brand != "" {
		parts = append(parts, id.Brand)
	}
	if id.Model != "" {
		parts = append(parts, id.Model)
	}
	s := strings.Join(parts, " / ")
	if id.Reference != "" {
		s += " [" + id.Reference + "]"
	}
	return s
}

// stripMarks removes combining marks after NFD decomposition, turning
// ç→c, ğ→g, ö→o, ş→s, ü→u. The dotless ı does not decompose and is mapped
// separately in Fold.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold canonicalizes a name: trim, Turkish-aware lowercase, fold to ASCII.
// Idempotent: Fold(Fold(s)) == Fold(s). "Çıktı" → "cikti".
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = cases.Lower(language.Turkish).String(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, s)
}

// Canonicalize folds every identity field.
func (id Identity) Canonicalize() Identity {
	return Identity{
		HardwareType: Fold(id.HardwareType),
		Brand:        Fold(id.Brand),
		Model:        Fold(id.Model),
		Reference:    Fold(id.Reference),
	}
}

// kindSynonyms is the fixed normalization table for movement kinds. The form
// data historically carried several localized spellings; anything outside
// this table is rejected, never guessed.
var kindSynonyms = map[string]string{
	"giris":  KindInbound,
	"girdi":  KindInbound,
	"alim":   KindInbound,
	"cikti":  KindOutbound,
	"cikis":  KindOutbound,
	"hurda":  KindScrap,
	"zimmet": KindAllocation,
	"atama":  KindAllocation,
}

// NormalizeKind maps a raw movement kind (any recognized spelling, any case)
// to its canonical value.
func NormalizeKind(raw string) (string, error) {
	kind, ok := kindSynonyms[Fold(raw)]
	if !ok {
		return "", ErrUnknownMovementKind
	}
	return kind, nil
}

// delta returns the signed total adjustment for a movement kind.
func delta(kind string, quantity int) int {
	if kind == KindInbound {
		return quantity
	}
	return -quantity
}
