package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/caiolopes/pdv-api/pkg/printer"
	"github.com/caiolopes/pdv-api/pkg/ticket"
	"github.com/google/uuid"
)

// TicketService renders and prints drink vouchers for product sales
type TicketService struct {
	saleRepo    repository.SaleRepository
	configRepo  repository.ConfigRepository
	printer     printer.Printer
	printerType string
	standName   string
}

// NewTicketService creates a new ticket service. standName is the configured
// default header; the event configuration overrides it when set.
func NewTicketService(
	saleRepo repository.SaleRepository,
	configRepo repository.ConfigRepository,
	p printer.Printer,
	printerType string,
	standName string,
) *TicketService {
	return &TicketService{
		saleRepo:    saleRepo,
		configRepo:  configRepo,
		printer:     p,
		printerType: printerType,
		standName:   standName,
	}
}

// TicketsForSale expands a product sale into one ticket per unit sold.
// Settlement sales have no lines and therefore produce no tickets.
func TicketsForSale(standName string, sale *entity.Sale) []entity.Ticket {
	var tickets []entity.Ticket
	seq := 1
	for _, line := range sale.Lines {
		for i := 0; i < line.Quantity; i++ {
			tickets = append(tickets, entity.Ticket{
				StandName:     standName,
				Flavor:        line.Flavor,
				SaleShortID:   sale.ShortID(),
				PaymentMethod: sale.PaymentMethod.String(),
				Seq:           seq,
			})
			seq++
		}
	}
	return tickets
}

// ListTickets returns the tickets of a sale.
func (s *TicketService) ListTickets(ctx context.Context, saleID uuid.UUID) ([]entity.Ticket, error) {
	sale, standName, err := s.loadSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return TicketsForSale(standName, sale), nil
}

// RenderTicket returns the PNG bytes of one ticket, addressed by its 1-based
// sequence within the sale.
func (s *TicketService) RenderTicket(ctx context.Context, saleID uuid.UUID, seq int) ([]byte, error) {
	sale, standName, err := s.loadSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	tickets := TicketsForSale(standName, sale)
	if seq < 1 || seq > len(tickets) {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	t := tickets[seq-1]
	return ticket.Render(ticket.Data{
		StandName:     t.StandName,
		Flavor:        t.Flavor,
		SaleShortID:   t.SaleShortID,
		PaymentMethod: t.PaymentMethod,
	})
}

// PrintTickets sends all of a sale's tickets to the thermal printer and
// returns them so the handler can echo what was printed.
func (s *TicketService) PrintTickets(ctx context.Context, saleID uuid.UUID) ([]entity.Ticket, error) {
	sale, standName, err := s.loadSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	tickets := TicketsForSale(standName, sale)
	if len(tickets) == 0 {
		return nil, apperror.NewStateError("Sale has no tickets to print")
	}

	for _, t := range tickets {
		if err := s.printer.Print(FormatTicket(&t)); err != nil {
			return nil, fmt.Errorf("failed to print ticket %d/%d: %w", t.Seq, len(tickets), err)
		}
	}
	return tickets, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *TicketService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

func (s *TicketService) loadSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, string, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", apperror.NewNotFoundError("Sale")
	}

	standName := s.standName
	if cfg, err := s.configRepo.Get(ctx); err == nil && cfg != nil && cfg.StandName != "" {
		standName = cfg.StandName
	}
	return sale, standName, nil
}

// FormatTicket converts a Ticket into ESC/POS bytes for thermal printing.
func FormatTicket(t *entity.Ticket) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		SetBold(true).
		Text(t.StandName).
		SetBold(false).
		SetFontSize(printer.FontNormal).
		Separator('=').
		FeedLines(2)

	doc.SetFontSize(printer.FontDouble).
		Text(strings.ToUpper(t.Flavor)).
		SetFontSize(printer.FontNormal).
		LineFeed().
		TextF("ID: %s", t.SaleShortID).
		TextF("PAGTO: %s", strings.ToUpper(t.PaymentMethod)).
		FeedLines(2)

	doc.Separator('-').
		Text("VALIDO APENAS NA DATA").
		Text("DE EMISSAO, DURANTE A").
		Text("DURACAO DO EVENTO").
		Text("NAO HA REEMBOLSO").
		Separator('-').
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
