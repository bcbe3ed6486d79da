package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/magsim/internal/engine"
	"github.com/san-kum/magsim/internal/export"
	"github.com/san-kum/magsim/internal/magmath"
	"github.com/san-kum/magsim/internal/render"
	"github.com/san-kum/magsim/internal/scenario"
	"github.com/san-kum/magsim/internal/store"
	"github.com/san-kum/magsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	fieldName  string
	atPoints   []string
	format     string
	save       bool
	maxRows    int
	// scan flags
	scanFrom   string
	scanTo     string
	scanPoints int
	// map flags
	gridOrigin string
	gridU      string
	gridV      string
	gridNU     int
	gridNV     int
	outFile    string
	cellPx     int
	// list/export flags
	listLimit int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "magsim",
		Short: "analytical magnetostatics field lab",
		RunE:  runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".magsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named preset scenario")
	rootCmd.PersistentFlags().StringVar(&fieldName, "field", "", "field to compute: B, H, M or J")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "compute the field at observer points",
		RunE:  runField,
	}
	fieldCmd.Flags().StringArrayVar(&atPoints, "at", nil, "observer point x,y,z in meters (repeatable)")
	fieldCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, json")
	fieldCmd.Flags().BoolVar(&save, "save", false, "store the run in the history database")
	fieldCmd.Flags().IntVar(&maxRows, "rows", 40, "max table rows (0 = all)")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "evaluate along a line and plot",
		RunE:  runScan,
	}
	scanCmd.Flags().StringVar(&scanFrom, "from", "", "scan start x,y,z")
	scanCmd.Flags().StringVar(&scanTo, "to", "", "scan end x,y,z")
	scanCmd.Flags().IntVar(&scanPoints, "points", 0, "number of scan points")
	scanCmd.Flags().BoolVar(&save, "save", false, "store the run in the history database")

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "evaluate a planar grid and write an SVG field map",
		RunE:  runMap,
	}
	mapCmd.Flags().StringVar(&gridOrigin, "origin", "", "grid origin x,y,z")
	mapCmd.Flags().StringVar(&gridU, "u", "", "grid u axis x,y,z")
	mapCmd.Flags().StringVar(&gridV, "v", "", "grid v axis x,y,z")
	mapCmd.Flags().IntVar(&gridNU, "nu", 0, "grid points along u")
	mapCmd.Flags().IntVar(&gridNV, "nv", 0, "grid points along v")
	mapCmd.Flags().StringVarP(&outFile, "out", "o", "fieldmap.svg", "output SVG path")
	mapCmd.Flags().IntVar(&cellPx, "cell", 14, "cell size in pixels")
	mapCmd.Flags().BoolVar(&save, "save", false, "store the run in the history database")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE:  listPresetsCmd,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "max runs to show")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output path (default stdout)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive observer explorer",
		RunE:  runTUI,
	}

	rootCmd.AddCommand(fieldCmd, scanCmd, mapCmd, presetsCmd, listCmd, exportCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScenario() (*scenario.Scenario, error) {
	var sc *scenario.Scenario
	switch {
	case configFile != "" && preset != "":
		return nil, fmt.Errorf("--config and --preset are mutually exclusive")
	case configFile != "":
		loaded, err := scenario.Load(configFile)
		if err != nil {
			return nil, err
		}
		sc = loaded
	case preset != "":
		sc = scenario.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'magsim presets')", preset)
		}
	default:
		sc = scenario.Default()
	}
	if fieldName != "" {
		sc.Field = fieldName
	}
	return sc, nil
}

func parseVec(s string) (magmath.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return magmath.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return magmath.Vec3{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = f
	}
	return magmath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func evaluate(sc *scenario.Scenario, observers []magmath.Vec3) ([]magmath.Vec3, time.Duration, error) {
	ft, err := sc.FieldType()
	if err != nil {
		return nil, 0, err
	}
	sources, err := sc.BuildSources()
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	values, err := engine.New().Evaluate(context.Background(), ft, sources, observers)
	if err != nil {
		return nil, 0, err
	}
	return values, time.Since(start), nil
}

func maybeSave(sc *scenario.Scenario, elapsed time.Duration, observers, values []magmath.Vec3) error {
	if !save {
		return nil
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	st, err := store.Open(filepath.Join(dataDir, "runs.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveRun(sc.Name, sc.Field, elapsed, observers, values)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", id)
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	var observers []magmath.Vec3
	if len(atPoints) > 0 {
		for _, s := range atPoints {
			p, err := parseVec(s)
			if err != nil {
				return err
			}
			observers = append(observers, p)
		}
	} else {
		observers, err = sc.BuildObservers()
		if err != nil {
			return err
		}
	}

	values, elapsed, err := evaluate(sc, observers)
	if err != nil {
		return err
	}

	unit := render.FieldUnit(sc.Field)
	result := export.NewResult(sc.Name, sc.Field, unit, observers, values)
	switch format {
	case "table":
		fmt.Print(render.Table(sc.Field, unit, observers, values, maxRows))
		fmt.Println(render.Summary(sc.Field, values))
	case "csv":
		if err := export.WriteCSV(os.Stdout, result); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(os.Stdout, result); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return maybeSave(sc, elapsed, observers, values)
}

func runScan(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	if scanFrom != "" || scanTo != "" {
		from, err := parseVec(scanFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := parseVec(scanTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		n := scanPoints
		if n <= 0 {
			n = scenario.DefaultScanPoints
		}
		sc.Observers = scenario.ObserverConfig{Scan: &scenario.ScanConfig{
			Start:  scenario.Vec{X: from.X, Y: from.Y, Z: from.Z},
			End:    scenario.Vec{X: to.X, Y: to.Y, Z: to.Z},
			Points: n,
		}}
	}
	if sc.Observers.Scan == nil {
		return fmt.Errorf("scan needs --from/--to or a scenario with observers.scan")
	}

	observers, err := sc.BuildObservers()
	if err != nil {
		return err
	}
	values, elapsed, err := evaluate(sc, observers)
	if err != nil {
		return err
	}

	fmt.Print(render.ScanPlot(sc.Field, values, 0, 0))
	fmt.Println(render.Summary(sc.Field, values))
	fmt.Printf("computed %d points in %s\n", len(values), elapsed.Round(time.Microsecond))

	return maybeSave(sc, elapsed, observers, values)
}

func runMap(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	if gridOrigin != "" || gridU != "" || gridV != "" {
		origin, err := parseVec(gridOrigin)
		if err != nil {
			return fmt.Errorf("--origin: %w", err)
		}
		u, err := parseVec(gridU)
		if err != nil {
			return fmt.Errorf("--u: %w", err)
		}
		v, err := parseVec(gridV)
		if err != nil {
			return fmt.Errorf("--v: %w", err)
		}
		nu, nv := gridNU, gridNV
		if nu <= 0 {
			nu = scenario.DefaultGridSize
		}
		if nv <= 0 {
			nv = scenario.DefaultGridSize
		}
		sc.Observers = scenario.ObserverConfig{Grid: &scenario.GridConfig{
			Origin: scenario.Vec{X: origin.X, Y: origin.Y, Z: origin.Z},
			U:      scenario.Vec{X: u.X, Y: u.Y, Z: u.Z},
			V:      scenario.Vec{X: v.X, Y: v.Y, Z: v.Z},
			NU:     nu, NV: nv,
		}}
	}
	if sc.Observers.Grid == nil {
		return fmt.Errorf("map needs --origin/--u/--v or a scenario with observers.grid")
	}

	observers, err := sc.BuildObservers()
	if err != nil {
		return err
	}
	values, elapsed, err := evaluate(sc, observers)
	if err != nil {
		return err
	}

	g := sc.Observers.Grid
	nu, nv := g.NU, g.NV
	if nu <= 0 {
		nu = scenario.DefaultGridSize
	}
	if nv <= 0 {
		nv = scenario.DefaultGridSize
	}
	svg, err := export.FieldMapSVG(values, g.U.V(), g.V.V(), nu, nv, cellPx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d grid, %s)\n", outFile, nu, nv, elapsed.Round(time.Microsecond))

	return maybeSave(sc, elapsed, observers, values)
}

func listPresetsCmd(cmd *cobra.Command, args []string) error {
	names := scenario.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFIELD\tSOURCES\tOBSERVERS")
	for _, name := range names {
		sc := scenario.GetPreset(name)
		obs := "points"
		if sc.Observers.Scan != nil {
			obs = "scan"
		} else if sc.Observers.Grid != nil {
			obs = "grid"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, sc.Field, len(sc.Sources), obs)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := store.Open(filepath.Join(dataDir, "runs.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(listLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSCENARIO\tFIELD\tPOINTS\tELAPSED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dms\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Scenario, r.Field, r.Points, r.ElapsedMS)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := store.Open(filepath.Join(dataDir, "runs.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	run, observers, values, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	result := export.NewResult(run.Scenario, run.Field, render.FieldUnit(run.Field), observers, values)

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return export.WriteCSV(out, result)
	case "json":
		return export.WriteJSON(out, result)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}
	ft, err := sc.FieldType()
	if err != nil {
		return err
	}
	sources, err := sc.BuildSources()
	if err != nil {
		return err
	}
	return tui.Run(sc.Name, sources, ft)
}
