package stock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

// optionalMovementColumns were added to stok_hareketleri after the first
// deployments; the writer omits whichever ones the live table is missing
// instead of failing the movement.
var optionalMovementColumns = []string{
	"ifs_no", "kaynak_tip", "kaynak_id", "lisans_anahtari", "mail_adresi",
}

// MovementColumns is the capability set of the movement table: which
// optional columns the live schema actually has. Probed once per process
// via the migrator and re-verified when an insert trips over a column.
type MovementColumns struct {
	mu       sync.Mutex
	detected bool
	missing  map[string]bool
}

// Missing returns the optional columns absent from the live table, probing
// on first use.
func (c *MovementColumns) Missing(db *gorm.DB) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.detected {
		c.probe(db)
		c.detected = true
	}
	out := make([]string, 0, len(c.missing))
	for col := range c.missing {
		out = append(out, col)
	}
	sort.Strings(out)
	return out
}

// Refresh re-probes the live table (after a column error, or a migration
// applied while the process is running).
func (c *MovementColumns) Refresh(db *gorm.DB) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probe(db)
	c.detected = true
}

func (c *MovementColumns) probe(db *gorm.DB) {
	c.missing = make(map[string]bool)
	m := db.Migrator()
	for _, col := range optionalMovementColumns {
		if !m.HasColumn(&models.StokHareket{}, col) {
			c.missing[col] = true
		}
	}
}

// isUnknownColumn reports whether err looks like an unknown-column failure
// (sqlite "no such column", Postgres undefined_column 42703).
func isUnknownColumn(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "SQLSTATE 42703") ||
		strings.Contains(msg, "has no column named")
}

// Provenance links a movement to the record or request that caused it.
type Provenance struct {
	Type string `json:"tip"`
	ID   uint   `json:"id"`
}

// MovementInput is one inbound/outbound/scrap movement to record. Identity
// fields accept catalog ids or display names.
type MovementInput struct {
	HardwareType string
	Brand        string
	Model        string
	Reference    string
	Quantity     int
	Kind         string
	Actor        string
	Description  string
	Provenance   *Provenance
	LicenseKey   string
	MailAddress  string
}

// AddMovement validates and records one movement in its own transaction,
// adjusting the pool total. Returns the movement id.
func (s *Service) AddMovement(ctx context.Context, in MovementInput) (uint, error) {
	var id uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = s.ApplyMovement(tx, in)
		return err
	})
	return id, err
}

// ApplyMovement records one movement inside the caller's transaction. Used
// directly by the request fulfillment bridge so the movement commits or
// rolls back with the request bookkeeping.
func (s *Service) ApplyMovement(tx *gorm.DB, in MovementInput) (uint, error) {
	if in.Quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	kind, err := NormalizeKind(in.Kind)
	if err != nil {
		return 0, err
	}
	ident, err := s.resolveIdentity(tx, Identity{
		HardwareType: in.HardwareType,
		Brand:        in.Brand,
		Model:        in.Model,
		Reference:    in.Reference,
	})
	if err != nil {
		return 0, err
	}

	// Lock and adjust the total first; a rejected adjustment (would go
	// negative) must leave no log entry behind.
	if err := s.adjustTotal(tx, ident, delta(kind, in.Quantity)); err != nil {
		return 0, err
	}

	row := models.StokHareket{
		DonanimTipi: ident.HardwareType,
		Marka:       ident.Brand,
		Model:       ident.Model,
		Islem:       kind,
		Miktar:      in.Quantity,
		Aciklama:    in.Description,
		Kullanici:   in.Actor,
	}
	if ident.Reference != "" {
		ref := ident.Reference
		row.IfsNo = &ref
	}
	if in.Provenance != nil {
		src := in.Provenance.Type
		srcID := in.Provenance.ID
		row.KaynakTip = &src
		row.KaynakID = &srcID
	}
	if in.LicenseKey != "" {
		k := in.LicenseKey
		row.LisansKey = &k
	}
	if in.MailAddress != "" {
		m := in.MailAddress
		row.MailAdresi = &m
	}
	if err := s.insertMovement(tx, &row); err != nil {
		return 0, err
	}
	return row.ID, nil
}

// insertMovement appends the log row, omitting optional columns the live
// schema does not have. On an unknown-column error the capability set is
// re-probed and the insert retried once.
func (s *Service) insertMovement(tx *gorm.DB, row *models.StokHareket) error {
	err := s.createOmitting(tx, row, s.caps.Missing(tx))
	if err != nil && isUnknownColumn(err) {
		s.caps.Refresh(tx)
		err = s.createOmitting(tx, row, s.caps.Missing(tx))
	}
	return err
}

func (s *Service) createOmitting(tx *gorm.DB, row *models.StokHareket, omit []string) error {
	q := tx
	if len(omit) > 0 {
		q = tx.Omit(omit...)
	}
	return q.Create(row).Error
}

// lastMovement returns the most recent log entry of a pool, nil when the
// pool has no history.
func (s *Service) lastMovement(tx *gorm.DB, ident Identity) (*models.StokHareket, error) {
	q := tx.Where("donanim_tipi = ? AND marka = ? AND model = ?",
		ident.HardwareType, ident.Brand, ident.Model)
	if ident.Reference != "" {
		q = q.Where("ifs_no = ?", ident.Reference)
	} else {
		q = q.Where("(ifs_no IS NULL OR ifs_no = '')")
	}
	var row models.StokHareket
	if err := q.Order("tarih DESC, id DESC").First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
