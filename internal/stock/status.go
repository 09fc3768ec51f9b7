package stock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

// StatusRow is one pool in the status projection: net available quantity,
// last movement time and the provenance of the most recent entry.
type StatusRow struct {
	Identity     Identity  `json:"kimlik"`
	Net          int       `json:"mevcut"`
	LastMovement time.Time `json:"son_hareket"`
	SourceType   string    `json:"kaynak_tip,omitempty"`
	SourceID     uint      `json:"kaynak_id,omitempty"`
}

// Status recomputes the read-side projection from the full movement log:
// entries grouped by canonical identity, net = inbound − outbound − scrap −
// allocation. Recomputed on demand, never cached; log volume is small.
func (s *Service) Status(ctx context.Context) ([]StatusRow, error) {
	return s.statusRows(s.DB.WithContext(ctx))
}

func (s *Service) statusRows(db *gorm.DB) ([]StatusRow, error) {
	var moves []models.StokHareket
	if err := db.Order("tarih ASC, id ASC").Find(&moves).Error; err != nil {
		return nil, err
	}

	byKey := make(map[Identity]*StatusRow)
	for i := range moves {
		m := &moves[i]
		ident := rowIdentity(m)
		row, ok := byKey[ident]
		if !ok {
			row = &StatusRow{Identity: ident}
			byKey[ident] = row
		}
		if m.Islem == KindInbound {
			row.Net += m.Miktar
		} else {
			row.Net -= m.Miktar
		}
		// Rows are ordered oldest-first, so each pass leaves the most
		// recent entry's timestamp and provenance in place.
		row.LastMovement = m.Tarih
		row.SourceType, row.SourceID = "", 0
		if m.KaynakTip != nil {
			row.SourceType = *m.KaynakTip
		}
		if m.KaynakID != nil {
			row.SourceID = *m.KaynakID
		}
	}

	out := make([]StatusRow, 0, len(byKey))
	for _, row := range byKey {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Identity, out[j].Identity
		if a.HardwareType != b.HardwareType {
			return a.HardwareType < b.HardwareType
		}
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.Reference < b.Reference
	})
	return out, nil
}

// rowIdentity rebuilds the canonical identity from a stored log row.
// Identity columns are written canonical, but legacy rows are folded again
// so grouping never splits a pool on case or spacing.
func rowIdentity(m *models.StokHareket) Identity {
	ref := ""
	if m.IfsNo != nil {
		ref = *m.IfsNo
	}
	return Identity{
		HardwareType: m.DonanimTipi,
		Brand:        m.Marka,
		Model:        m.Model,
		Reference:    ref,
	}.Canonicalize()
}

// Option is one allocatable pool for pickers: net > 0 only.
type Option struct {
	Key       string `json:"id"`
	Label     string `json:"label"`
	Available int    `json:"mevcut"`
}

// AllocatableOptions derives the picker list from the status projection,
// keeping only pools with positive net quantity and an optional
// case-insensitive text filter.
func (s *Service) AllocatableOptions(ctx context.Context, filter string) ([]Option, error) {
	rows, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	filter = Fold(filter)
	out := make([]Option, 0, len(rows))
	for _, row := range rows {
		if row.Net <= 0 {
			continue
		}
		label := fmt.Sprintf("%s (%d adet)", row.Identity.Label(), row.Net)
		if filter != "" && !strings.Contains(Fold(label), filter) {
			continue
		}
		out = append(out, Option{
			Key:       row.Identity.Key(),
			Label:     label,
			Available: row.Net,
		})
	}
	return out, nil
}
