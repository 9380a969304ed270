// Package backup writes CSV snapshots of the ledger and VIP registry after
// every mutating operation, so a crash loses at most the last unsaved change.
package backup

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caiolopes/pdv-api/internal/domain/repository"
)

const (
	salesFile = "sales_backup.csv"
	vipsFile  = "vips_backup.csv"
)

// Writer persists durable snapshots of the POS state.
type Writer interface {
	// Snapshot writes the current ledger and VIP registry to disk.
	Snapshot(ctx context.Context) error
	// Clean removes existing backup files (system reset).
	Clean() error
}

// CSVWriter writes sales and VIP balances as CSV files under a storage dir.
type CSVWriter struct {
	dir      string
	saleRepo repository.SaleRepository
	vipRepo  repository.VIPRepository
}

// NewCSVWriter creates a CSV backup writer rooted at dir.
func NewCSVWriter(dir string, saleRepo repository.SaleRepository, vipRepo repository.VIPRepository) *CSVWriter {
	return &CSVWriter{dir: dir, saleRepo: saleRepo, vipRepo: vipRepo}
}

func (w *CSVWriter) Snapshot(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("backup: failed to create storage dir: %w", err)
	}

	sales, err := w.saleRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("backup: failed to load sales: %w", err)
	}

	saleRows := [][]string{{"id", "sale_no", "timestamp", "kind", "payment_method", "sub_total", "discount", "total", "vip_customer"}}
	for _, s := range sales {
		vip := ""
		if s.VIPCustomer != nil {
			vip = *s.VIPCustomer
		}
		saleRows = append(saleRows, []string{
			s.ID.String(),
			s.SaleNo,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Kind.String(),
			s.PaymentMethod.String(),
			formatCents(s.SubTotal),
			formatCents(s.Discount),
			formatCents(s.Total),
			vip,
		})
	}
	if err := w.writeFile(salesFile, saleRows); err != nil {
		return err
	}

	vips, err := w.vipRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("backup: failed to load VIP accounts: %w", err)
	}

	vipRows := [][]string{{"name", "balance"}}
	for _, v := range vips {
		vipRows = append(vipRows, []string{v.Name, formatCents(v.Balance)})
	}
	return w.writeFile(vipsFile, vipRows)
}

func (w *CSVWriter) Clean() error {
	for _, name := range []string{salesFile, vipsFile} {
		if err := os.Remove(filepath.Join(w.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("backup: failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// writeFile writes rows to a temp file and renames it into place, so a crash
// mid-write never leaves a truncated backup.
func (w *CSVWriter) writeFile(name string, rows [][]string) error {
	tmp, err := os.CreateTemp(w.dir, name+".tmp")
	if err != nil {
		return fmt.Errorf("backup: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("backup: failed to write %s: %w", name, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("backup: failed to flush %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("backup: failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(w.dir, name)); err != nil {
		return fmt.Errorf("backup: failed to replace %s: %w", name, err)
	}
	return nil
}

func formatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
