package phius

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestResnetFormulas(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mel 2br 1000ft2", MiscElectricLoads(2, 1000), 413 + 138 + 910},
		{"interior all led", LightingInterior(1000, 1), 0.8*(1/3.7)*1255 + 0.2*1255},
		{"interior no led", LightingInterior(1000, 0), 0.8*(4/3.7)*1255 + 0.2*1255},
		{"exterior all led", LightingExterior(1000, 1), 0.25 * 150},
		{"exterior no led", LightingExterior(1000, 0), 150},
		{"garage all led", LightingGarageKWH(1), 25},
		{"garage half", LightingGarageKWH(0.5), 62.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxEqual(tt.got, tt.want, 1e-9) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if DesignOccupancy(3) != 4 {
		t.Fatalf("DesignOccupancy(3) = %d", DesignOccupancy(3))
	}
}

func TestDefaults_AreCopies(t *testing.T) {
	d := Defaults(PHIUS)
	c := d[Dishwasher]
	c.EnergyDemand = 1
	d[Dishwasher] = c
	if PhiusEquipment[Dishwasher].EnergyDemand != 269 {
		t.Fatalf("package defaults changed through a copy")
	}
}

func TestSelect(t *testing.T) {
	set, missing := Select(PHIUS, Dishwasher, MEL, ConsumerElectronics)
	if len(set) != 2 || len(missing) != 1 || missing[0] != ConsumerElectronics {
		t.Fatalf("set = %v, missing = %v", set, missing)
	}
	if c, ok := Config(PHI, Fridge); !ok || c.Norm != PerDay {
		t.Fatalf("PHI fridge = %+v, %v", c, ok)
	}
}

func TestEquipmentKindText(t *testing.T) {
	for k := range kindNames {
		b, _ := k.MarshalText()
		var got EquipmentKind
		if err := got.UnmarshalText(b); err != nil || got != k {
			t.Fatalf("round trip %v = %v, %v", k, got, err)
		}
	}
	if _, err := ParseEquipmentKind("toaster"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if p, _ := ParseProgram("phpp"); p != PHI {
		t.Fatalf("ParseProgram(phpp) = %v", p)
	}
}

func TestEnergyNormString(t *testing.T) {
	if PerDay.String() != "kWh/day" || Watts.String() != "W" || PerYear.String() != "kWh/yr" {
		t.Fatalf("norm names = %s %s %s", PerDay, Watts, PerYear)
	}
}
