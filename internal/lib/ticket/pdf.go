package ticket

import (
	"bytes"
	"fmt"

	"railBooker/internal/models"

	"github.com/phpdave11/gofpdf"
)

// BuildPDF renders a printable e-ticket for one booking.
func BuildPDF(tk models.Ticket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILWAY E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", tk.PNR),
		fmt.Sprintf("Passenger      : %s (age %d)", tk.PassengerName, tk.Age),
		fmt.Sprintf("Train          : %s - %s", tk.TrainNumber, tk.TrainName),
		fmt.Sprintf("Route          : %s -> %s", tk.Source, tk.Destination),
		fmt.Sprintf("Departure      : %s", tk.Departure),
		fmt.Sprintf("Journey Date   : %s", tk.JourneyDate.Format("2006-01-02")),
		fmt.Sprintf("Booked On      : %s", tk.BookingDate.Format("2006-01-02")),
		fmt.Sprintf("Fare           : %.2f", tk.Fare),
		fmt.Sprintf("Status         : %s", tk.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger. Please carry a photo ID during the journey.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
