package dxf

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/hpgl/model"
)

func sampleDrawing() *model.Drawing {
	return model.NewDrawing(
		model.Path{model.Pt(10, 0), model.Pt(10, 10)},
		model.Path{model.Pt(7, 7)},
		model.Path{model.Pt(0, 0), model.Pt(400, 0), model.Pt(400, -120), model.Pt(-33, 57)},
	)
}

func TestPlan(t *testing.T) {
	plan := Plan(sampleDrawing())

	want := []PolylineMM{
		{model.Pt(0.25, 0), model.Pt(0.25, 0.25)},
		{model.Pt(0, 0), model.Pt(10, 0), model.Pt(10, -3), model.Pt(-0.825, 1.425)},
	}
	if len(plan) != len(want) {
		t.Fatalf("Plan() returned %d polylines, want %d", len(plan), len(want))
	}
	for i := range want {
		if len(plan[i]) != len(want[i]) {
			t.Fatalf("polyline %d has %d points, want %d", i, len(plan[i]), len(want[i]))
		}
		for j, p := range want[i] {
			got := plan[i][j]
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("polyline %d point %d = %v, want %v", i, j, got, p)
			}
		}
	}
}

func TestPlanRoundTrip(t *testing.T) {
	d := sampleDrawing()
	plan := Plan(d)

	var got []model.Path
	for _, pl := range plan {
		var p model.Path
		for _, pt := range pl {
			p = append(p, model.FromMM(pt))
		}
		got = append(got, p)
	}

	if diff := cmp.Diff(d.Drawable(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanNil(t *testing.T) {
	if plan := Plan(nil); plan != nil {
		t.Errorf("Plan(nil) = %v, want nil", plan)
	}
}

func TestEncodeEntityCount(t *testing.T) {
	tests := []struct {
		mode EntityMode
		want int
	}{
		{Polyline, 2},
		{Lines, 4},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			doc, err := Encode(sampleDrawing(), Options{Mode: tt.mode})
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if doc.Entities() != tt.want {
				t.Errorf("Entities() = %d, want %d", doc.Entities(), tt.want)
			}
			if doc.Mode() != tt.mode {
				t.Errorf("Mode() = %v, want %v", doc.Mode(), tt.mode)
			}
			if len(doc.Polylines()) != 2 {
				t.Errorf("Polylines() has %d paths, want 2", len(doc.Polylines()))
			}
		})
	}
}

func TestEncodeNothingDrawable(t *testing.T) {
	d := model.NewDrawing(model.Path{model.Pt(1, 1)}, model.Path{model.Pt(2, 2)})
	if _, err := Encode(d, DefaultOptions()); !errors.Is(err, ErrNothingToEncode) {
		t.Errorf("Encode() error = %v, want ErrNothingToEncode", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	t.Run("polyline", func(t *testing.T) {
		doc, err := Encode(sampleDrawing(), DefaultOptions())
		if err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}
		path := filepath.Join(dir, "poly.dxf")
		if err := doc.Save(path); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		text := string(data)
		if !strings.Contains(text, "LWPOLYLINE") {
			t.Error("expected LWPOLYLINE entities in output")
		}
		if !strings.Contains(text, DefaultLayer) {
			t.Errorf("expected layer %q in output", DefaultLayer)
		}
	})

	t.Run("lines", func(t *testing.T) {
		doc, err := Encode(sampleDrawing(), Options{Mode: Lines, Layer: "CUT"})
		if err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}
		path := filepath.Join(dir, "lines.dxf")
		if err := doc.Save(path); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		text := string(data)
		if strings.Contains(text, "LWPOLYLINE") {
			t.Error("lines mode must not write polylines")
		}
		if !strings.Contains(text, "CUT") {
			t.Error("expected layer CUT in output")
		}
	})

	t.Run("unwritable", func(t *testing.T) {
		doc, err := Encode(sampleDrawing(), DefaultOptions())
		if err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}
		if err := doc.Save(filepath.Join(dir, "missing", "out.dxf")); err == nil {
			t.Error("expected error saving into a missing directory")
		}
	})
}

func TestPlanCoordinatesFinite(t *testing.T) {
	for _, pl := range Plan(sampleDrawing()) {
		for _, p := range pl {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("NaN coordinate in plan: %v", pl)
			}
		}
	}
}
