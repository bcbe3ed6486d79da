package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/magsim/internal/magmath"
)

func sampleResult() *Result {
	observers := []magmath.Vec3{{Z: -1}, {Z: 0}, {Z: 1}}
	values := []magmath.Vec3{{Z: 0.25}, {Z: 1}, {Z: 0.25}}
	return NewResult("test", "B", "T", observers, values)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if rows[0][3] != "Bx" || rows[0][6] != "magnitude" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[2][2] != "0" || rows[2][5] != "1" || rows[2][6] != "1" {
		t.Errorf("middle row = %v", rows[2])
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var got Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Scenario != "test" || got.Field != "B" || got.Points != 3 {
		t.Errorf("metadata = %+v", got)
	}
	if got.Values[1] != (magmath.Vec3{Z: 1}) {
		t.Errorf("values round-trip: %+v", got.Values)
	}
	if got.Stats["max_magnitude"] != 1 {
		t.Errorf("stats = %v", got.Stats)
	}
}

func TestFieldMapSVG(t *testing.T) {
	nu, nv := 3, 2
	values := make([]magmath.Vec3, nu*nv)
	for i := range values {
		values[i] = magmath.Vec3{X: 0.1, Z: float64(i + 1)}
	}
	svg, err := FieldMapSVG(values, magmath.Vec3{X: 1}, magmath.Vec3{Z: 1}, nu, nv, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("malformed SVG envelope")
	}
	if strings.Count(svg, "<rect") != nu*nv+1 { // cells + background
		t.Errorf("got %d rects, want %d", strings.Count(svg, "<rect"), nu*nv+1)
	}
	if !strings.Contains(svg, "<line") {
		t.Error("expected direction ticks")
	}
}

func TestFieldMapSVGErrors(t *testing.T) {
	if _, err := FieldMapSVG(nil, magmath.Vec3{X: 1}, magmath.Vec3{Z: 1}, 1, 1, 10); err == nil {
		t.Error("expected grid-size error")
	}
	if _, err := FieldMapSVG(make([]magmath.Vec3, 5),
		magmath.Vec3{X: 1}, magmath.Vec3{Z: 1}, 2, 2, 10); err == nil {
		t.Error("expected length mismatch error")
	}
	if _, err := FieldMapSVG(make([]magmath.Vec3, 4),
		magmath.Vec3{X: 1}, magmath.Vec3{Z: 1}, 2, 2, 10); err == nil {
		t.Error("expected all-zero error")
	}
}
