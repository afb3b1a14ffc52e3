package services

import (
	"bytes"
	"encoding/json"
	"testing"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
)

func exportFixture() response_models.Itinerary {
	return response_models.Itinerary{
		{
			Day:      1,
			DayTotal: 1000,
			Activities: []response_models.Activity{
				{Name: "Hundru Falls", TimeOfDay: response_models.Morning, Description: "98m waterfall", EstimatedCost: 800},
				{Name: "Jagannath Temple", TimeOfDay: response_models.Afternoon, EstimatedCost: 200},
			},
		},
		{
			Day:      2,
			DayTotal: 1500,
			Activities: []response_models.Activity{
				{Name: "Patratu Valley", TimeOfDay: response_models.Morning, EstimatedCost: 1500},
			},
		},
	}
}

func TestExportJSONIsTheCanonicalArray(t *testing.T) {
	exporter := NewExporter(newTestPresenter())

	doc, err := exporter.ExportJSON(exportFixture())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var parsed response_models.Itinerary
	if err := json.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("exported document is not valid JSON: %v", err)
	}
	if len(parsed) != 2 || parsed[0].Activities[0].Name != "Hundru Falls" {
		t.Errorf("export lost data: %+v", parsed)
	}
	if parsed[1].DayTotal != 1500 {
		t.Errorf("DayTotal = %d, want 1500", parsed[1].DayTotal)
	}
	if !bytes.Contains(doc, []byte(`"estimatedCost"`)) {
		t.Error("export should use the canonical field names")
	}
}

func TestExportPDFProducesDocument(t *testing.T) {
	exporter := NewExporter(newTestPresenter())

	doc, err := exporter.ExportPDF(exportFixture(), request_models.TripPreferences{
		StartLocation: "Ranchi",
		GroupSize:     2,
	})
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected a non-empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Errorf("expected a PDF header, got %q", doc[:min(8, len(doc))])
	}
}
