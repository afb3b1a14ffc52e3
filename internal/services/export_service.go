package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

const (
	ExportJSONFilename = "jharkhand-itinerary.json"
	ExportPDFFilename  = "jharkhand-itinerary.pdf"
)

// ExporterInterface serializes a canonical itinerary into downloadable
// documents. ExportJSON is the contract format: exactly the day array,
// pretty-printed.
type ExporterInterface interface {
	ExportJSON(itinerary response_models.Itinerary) ([]byte, error)
	ExportPDF(itinerary response_models.Itinerary, prefs request_models.TripPreferences) ([]byte, error)
}

type Exporter struct {
	presenter CurrencyPresenterInterface
}

func NewExporter(presenter CurrencyPresenterInterface) ExporterInterface {
	return &Exporter{presenter: presenter}
}

func (e *Exporter) ExportJSON(itinerary response_models.Itinerary) ([]byte, error) {
	return json.MarshalIndent(itinerary, "", "  ")
}

// pdfAmount renders a base-currency amount for the PDF. The core fonts are
// cp1252 and cannot draw the rupee sign, so it becomes "Rs. ".
func (e *Exporter) pdfAmount(amount int64) (string, error) {
	formatted, err := e.presenter.Present(amount, BaseCurrency)
	if err != nil {
		return "", err
	}
	return strings.Replace(formatted, "₹", "Rs. ", 1), nil
}

func (e *Exporter) ExportPDF(itinerary response_models.Itinerary, prefs request_models.TripPreferences) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Jharkhand Trip Itinerary", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Starting from: %s\nGroup size: %d\nGenerated: %s",
		prefs.StartLocation,
		prefs.GroupSize,
		time.Now().Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(3)

	for _, day := range itinerary {
		dayTotal, err := e.pdfAmount(day.DayTotal)
		if err != nil {
			return nil, err
		}

		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 10, fmt.Sprintf("Day %d  -  %s", day.Day, dayTotal), "B", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, activity := range day.Activities {
			cost, err := e.pdfAmount(activity.EstimatedCost)
			if err != nil {
				return nil, err
			}
			line := fmt.Sprintf("%s: %s (%s)", activity.TimeOfDay, activity.Name, cost)
			if activity.Description != "" {
				line += " - " + activity.Description
			}
			pdf.MultiCell(0, 7, line, "", "L", false)
		}
		pdf.Ln(3)
	}

	tripTotal, err := e.pdfAmount(itinerary.TripTotal())
	if err != nil {
		return nil, err
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Trip total: "+tripTotal, "T", 1, "L", false, 0, "")

	// QR deep link to the start location; scan to open the map.
	if link := utils.MapSearchLink(prefs.StartLocation); link != "" {
		if qr, err := qrcode.Encode(link, qrcode.Medium, 128); err == nil {
			imgOpts := gofpdf.ImageOptions{ImageType: "png"}
			pdf.RegisterImageOptionsReader("maplink", imgOpts, bytes.NewReader(qr))
			pdf.ImageOptions("maplink", 160, 20, 30, 30, false, imgOpts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
