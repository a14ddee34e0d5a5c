package model

import "testing"

func TestParseFuelType(t *testing.T) {
	tests := []struct {
		in   string
		want FuelType
		ok   bool
	}{
		{"Unleaded95", FuelTypeUnleaded95, true},
		{"Diesel", FuelTypeDiesel, true},
		{"Octane100", FuelTypeOctane100, true},
		{"diesel", "", false},
		{"Octane98", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFuelType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFuelType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFuelTypeLabelsAndOrder(t *testing.T) {
	want := []string{"UNLEADED95", "DIESEL", "OCTANE100"}
	if len(FuelTypes) != len(want) {
		t.Fatalf("FuelTypes has %d entries, want %d", len(FuelTypes), len(want))
	}
	for i, ft := range FuelTypes {
		if ft.Label() != want[i] {
			t.Errorf("FuelTypes[%d].Label() = %s, want %s", i, ft.Label(), want[i])
		}
	}
}

func TestOkItemNumber(t *testing.T) {
	if n := FuelTypeUnleaded95.OkItemNumber(); n != 536 {
		t.Errorf("Unleaded95 = %d, want 536", n)
	}
	if n := FuelTypeOctane100.OkItemNumber(); n != 533 {
		t.Errorf("Octane100 = %d, want 533", n)
	}
	if n := FuelTypeDiesel.OkItemNumber(); n != 231 {
		t.Errorf("Diesel = %d, want 231", n)
	}
}

func TestExportKeyTokens(t *testing.T) {
	k := ExportKey{PK: "FUELPRICE#Diesel#extra", SK: "DATE#2022-01-02"}
	if fuel, ok := k.FuelToken(); !ok || fuel != "Diesel" {
		t.Errorf("FuelToken() = %q, %v", fuel, ok)
	}
	if date, ok := k.DateToken(); !ok || date != "2022-01-02" {
		t.Errorf("DateToken() = %q, %v", date, ok)
	}
	if _, ok := (ExportKey{PK: "nohash"}).FuelToken(); ok {
		t.Error("FuelToken() on key without separator should fail")
	}
	if date, ok := (ExportKey{SK: "DATE#"}).DateToken(); !ok || date != "" {
		t.Errorf("DateToken() on trailing separator = %q, %v; want empty, true", date, ok)
	}
}
