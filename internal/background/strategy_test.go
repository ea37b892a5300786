package background

import (
	"testing"

	"github.com/ironsheep/sprite-cutout/internal/imaging"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"fixed-threshold", FixedThreshold, false},
		{"simple", FixedThreshold, false},
		{"  Edge-Sampled ", EdgeSampled, false},
		{"advanced", EdgeSampled, false},
		{"corner-mode", CornerMode, false},
		{"corner", CornerMode, false},
		{"magic-wand", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range Strategies() {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}

	if Strategy(9).Valid() {
		t.Error("Strategy(9) should not be valid")
	}
	if got := Strategy(9).String(); got != "Strategy(9)" {
		t.Errorf("String of unknown strategy: got %q", got)
	}
}

func TestParseStrategyList(t *testing.T) {
	got, err := ParseStrategyList("edge-sampled, fixed-threshold,,corner-mode")
	if err != nil {
		t.Fatalf("ParseStrategyList failed: %v", err)
	}
	want := []Strategy{EdgeSampled, FixedThreshold, CornerMode}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"", " , ", "edge,advanced", "edge,bogus"} {
		if _, err := ParseStrategyList(bad); err == nil {
			t.Errorf("ParseStrategyList(%q) should fail", bad)
		}
	}
}

func TestBandTable_Alpha(t *testing.T) {
	table := BandTable{
		Metric: imaging.L1Distance,
		Bands: []Band{
			{Below: 10, Alpha: 0},
			{Below: 20, Alpha: 80},
		},
		Fallthrough: KeepAlpha,
	}
	ref := imaging.RGBColor{R: 100, G: 100, B: 100}

	tests := []struct {
		name      string
		pixel     imaging.RGBColor
		alpha     uint8
		wantAlpha uint8
		wantBand  int
	}{
		{"first band", imaging.RGBColor{R: 105, G: 100, B: 100}, 255, 0, 0},
		{"second band", imaging.RGBColor{R: 110, G: 100, B: 100}, 255, 80, 1},
		{"fallthrough keeps alpha", imaging.RGBColor{R: 150, G: 100, B: 100}, 77, 77, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha, band := table.Alpha(tt.pixel, ref, tt.alpha)
			if alpha != tt.wantAlpha || band != tt.wantBand {
				t.Errorf("Alpha: got (%d, %d), want (%d, %d)", alpha, band, tt.wantAlpha, tt.wantBand)
			}
		})
	}

	table.Fallthrough = ForceOpaque
	if alpha, _ := table.Alpha(imaging.RGBColor{}, ref, 12); alpha != 255 {
		t.Errorf("ForceOpaque fallthrough: got %d, want 255", alpha)
	}
}

func TestStrategy_Bands(t *testing.T) {
	for _, s := range Strategies() {
		table, err := s.Bands()
		if err != nil {
			t.Fatalf("%v.Bands() failed: %v", s, err)
		}
		for i := 1; i < len(table.Bands); i++ {
			if table.Bands[i].Below <= table.Bands[i-1].Below {
				t.Errorf("%v: bands not ordered closest first", s)
			}
		}
	}
	if _, err := Strategy(-1).Bands(); err != ErrUnknownStrategy {
		t.Errorf("unknown strategy: got %v, want ErrUnknownStrategy", err)
	}
}
