package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/phpdave11/gofpdf"
)

const (
	dateLayout     = "02 Jan 2006"
	dateTimeLayout = "02 Jan 2006 15:04"
	timeLayout     = "15:04"
)

// Footer is printed at the bottom of every itinerary.
type Footer struct {
	Company string
	Contact string
	Email   string
}

var DefaultFooter = Footer{
	Company: "Plango",
	Contact: "9345543332",
	Email:   "plango@gmail.com",
}

type Renderer struct {
	footer Footer
}

func NewRenderer(footer Footer) *Renderer {
	return &Renderer{footer: footer}
}

// FileName is the attachment name used for downloads and shares.
func FileName(it dto.Itinerary) string {
	return fmt.Sprintf("itinerary_%s.pdf", it.ID.Hex())
}

// Render lays out the itinerary on A4 pages and returns the encoded document.
func (r *Renderer) Render(it dto.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary Details", false)
	pdf.SetAuthor(r.footer.Company, false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(255, 99, 71)
	pdf.CellFormat(0, 12, "Itinerary Details", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(32, 178, 170)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("Trip: %s to %s", it.StartPlace, it.EndPlace)), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(255, 69, 0)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Welcome, %s!", it.Username)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(51, 51, 51)
	summary := [][2]string{
		{"Start Date", it.StartDate.Format(dateLayout)},
		{"End Date", it.EndDate.Format(dateLayout)},
		{"Co-passengers", coPassengerNames(it.CoPassengers)},
	}
	for _, row := range summary {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(0, 123, 255)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(51, 51, 51)
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	section(pdf, "Flight Information")
	if len(it.FlightDetails) == 0 {
		line(pdf, tr, "No flights added.")
	}
	for _, f := range it.FlightDetails {
		line(pdf, tr, fmt.Sprintf("%s Flight %s", f.Airline, f.FlightNumber))
		line(pdf, tr, fmt.Sprintf("From: %s - To: %s", f.FromAirport, f.ToAirport))
		line(pdf, tr, "Boarding: "+f.BoardingTime.Format(dateTimeLayout))
		line(pdf, tr, "Departure: "+f.DepartureTime.Format(dateTimeLayout))
		line(pdf, tr, "Arrival: "+f.ArrivalTime.Format(dateTimeLayout))
		if f.SeatNumber != "" {
			line(pdf, tr, "Seat: "+f.SeatNumber)
		}
		pdf.Ln(2)
	}

	section(pdf, "Hotel Information")
	if len(it.HotelDetails) == 0 {
		line(pdf, tr, "No hotels added.")
	}
	for _, h := range it.HotelDetails {
		line(pdf, tr, "Name: "+h.Name)
		line(pdf, tr, "Address: "+h.Address)
		line(pdf, tr, fmt.Sprintf("Stay: %s - %s", h.CheckIn.Format(dateLayout), h.CheckOut.Format(dateLayout)))
		for _, room := range h.Rooms {
			line(pdf, tr, fmt.Sprintf("Room %s: %d occupant(s)", room.RoomNumber, room.Occupants))
		}
		pdf.Ln(2)
	}

	section(pdf, "Places to Visit")
	if len(it.PlacesToVisit) == 0 {
		line(pdf, tr, "No places added.")
	}
	for _, p := range it.PlacesToVisit {
		line(pdf, tr, fmt.Sprintf("%s (From: %s To: %s)", p.Name, p.StartTime.Format(timeLayout), p.EndTime.Format(timeLayout)))
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 6, "If you need further assistance, feel free to contact us.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Company: %s  Contact: %s  Email: %s",
		r.footer.Company, r.footer.Contact, r.footer.Email)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(255, 87, 51)
	pdf.CellFormat(0, 9, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 51, 51)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.MultiCell(0, 6, tr(text), "", "L", false)
}

func coPassengerNames(passengers []dto.CoPassenger) string {
	if len(passengers) == 0 {
		return "-"
	}

	names := make([]string, 0, len(passengers))
	for _, p := range passengers {
		names = append(names, p.Name)
	}

	return strings.Join(names, ", ")
}

// ShareBody is the plain text mail body sent along with a shared itinerary.
func ShareBody(it dto.Itinerary) string {
	return fmt.Sprintf("Hello,\n\n%s shared a trip from %s to %s (%s - %s) with you. "+
		"The full itinerary is attached as a PDF.\n",
		it.Username, it.StartPlace, it.EndPlace,
		it.StartDate.Format(dateLayout), it.EndDate.Format(dateLayout))
}
