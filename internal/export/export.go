// Package export writes field results to CSV, JSON and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/magsim/internal/magmath"
)

type Result struct {
	Scenario  string             `json:"scenario"`
	Field     string             `json:"field"`
	Unit      string             `json:"unit"`
	Points    int                `json:"points"`
	Observers []magmath.Vec3     `json:"observers"`
	Values    []magmath.Vec3     `json:"values"`
	Stats     map[string]float64 `json:"stats,omitempty"`
}

func NewResult(scenario, fieldName, unit string, observers, values []magmath.Vec3) *Result {
	r := &Result{
		Scenario:  scenario,
		Field:     fieldName,
		Unit:      unit,
		Points:    len(values),
		Observers: observers,
		Values:    values,
	}
	if len(values) > 0 {
		minMag, maxMag := values[0].Norm(), values[0].Norm()
		for _, v := range values {
			m := v.Norm()
			if m < minMag {
				minMag = m
			}
			if m > maxMag {
				maxMag = m
			}
		}
		r.Stats = map[string]float64{"min_magnitude": minMag, "max_magnitude": maxMag}
	}
	return r
}

func WriteJSON(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func SaveJSON(path string, r *Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, r)
}

func WriteCSV(w io.Writer, r *Result) error {
	cw := csv.NewWriter(w)
	fn := r.Field
	header := []string{"x", "y", "z", fn + "x", fn + "y", fn + "z", "magnitude"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, obs := range r.Observers {
		v := r.Values[i]
		row := []string{
			fmtF(obs.X), fmtF(obs.Y), fmtF(obs.Z),
			fmtF(v.X), fmtF(v.Y), fmtF(v.Z), fmtF(v.Norm()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, r *Result) error {
	if len(r.Observers) != len(r.Values) {
		return fmt.Errorf("observers/values length mismatch: %d vs %d", len(r.Observers), len(r.Values))
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, r)
}

func fmtF(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
