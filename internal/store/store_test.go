package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/magsim/internal/magmath"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTestStore(t)

	observers := []magmath.Vec3{{X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}}
	values := []magmath.Vec3{{Z: 0.1}, {Z: 1.2}, {Z: 0.1}}

	id, err := s.SaveRun("loop-axis", "B", 42*time.Millisecond, observers, values)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty run id")
	}

	run, gotObs, gotVals, err := s.LoadRun(id)
	if err != nil {
		t.Fatal(err)
	}
	if run.Scenario != "loop-axis" || run.Field != "B" || run.Points != 3 {
		t.Errorf("run metadata = %+v", run)
	}
	if run.ElapsedMS != 42 {
		t.Errorf("elapsed = %d ms, want 42", run.ElapsedMS)
	}
	for i := range observers {
		if gotObs[i] != observers[i] || gotVals[i] != values[i] {
			t.Errorf("sample %d round-trip mismatch: %+v/%+v", i, gotObs[i], gotVals[i])
		}
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	obs := []magmath.Vec3{{}}
	vals := []magmath.Vec3{{Z: 1}}

	if _, err := s.SaveRun("first", "B", 0, obs, vals); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	id2, err := s.SaveRun("second", "H", 0, obs, vals)
	if err != nil {
		t.Fatal(err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != id2 {
		t.Errorf("newest run first: got %s (%s)", runs[0].ID, runs[0].Scenario)
	}
}

func TestSaveRunLengthMismatch(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveRun("bad", "B", 0,
		[]magmath.Vec3{{}, {}}, []magmath.Vec3{{}})
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestDeleteRun(t *testing.T) {
	s := openTestStore(t)
	id, err := s.SaveRun("gone", "B", 0,
		[]magmath.Vec3{{}}, []magmath.Vec3{{Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteRun(id); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := s.LoadRun(id); err == nil {
		t.Fatal("expected load failure after delete")
	}
	if err := s.DeleteRun("missing"); err == nil {
		t.Fatal("expected error deleting unknown run")
	}
}
