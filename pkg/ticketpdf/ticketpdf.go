// Package ticketpdf генерация PDF-билета для бронирования
package ticketpdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Ticket данные для печати билета
type Ticket struct {
	BookingCode   string
	PassengerName string
	From          string
	To            string
	TravelDate    time.Time
	Seats         []string
	TotalAmount   float64
	PaymentStatus string
	IssuedAt      time.Time
}

// Render рендерит билет в PDF и возвращает содержимое файла
func Render(t Ticket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "BusPark - Boarding Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booking: %s", t.BookingCode), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	row("Passenger", t.PassengerName)
	row("Route", fmt.Sprintf("%s - %s", t.From, t.To))
	row("Departure", t.TravelDate.Format("02 Jan 2006 15:04"))
	row("Seats", strings.Join(t.Seats, ", "))
	row("Total", fmt.Sprintf("%.2f", t.TotalAmount))
	row("Payment", t.PaymentStatus)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued at %s", t.IssuedAt.Format(time.RFC1123)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Please arrive at the terminal 30 minutes before departure.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ticketpdf: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
