package scenario

var Presets = map[string]*Scenario{
	"loop-axis": {
		Name:  "loop-axis",
		Field: "B",
		Sources: []SourceConfig{
			{Type: "circle", Diameter: 1, Current: 1},
		},
		Observers: ObserverConfig{
			Scan: &ScanConfig{Start: Vec{Z: -2}, End: Vec{Z: 2}, Points: 201},
		},
	},
	"helmholtz": {
		Name:  "helmholtz",
		Field: "B",
		Sources: []SourceConfig{
			{Type: "circle", Diameter: 1, Current: 1, Position: Vec{Z: -0.25}},
			{Type: "circle", Diameter: 1, Current: 1, Position: Vec{Z: 0.25}},
		},
		Observers: ObserverConfig{
			Scan: &ScanConfig{Start: Vec{Z: -0.5}, End: Vec{Z: 0.5}, Points: 201},
		},
	},
	"bar-magnet": {
		Name:  "bar-magnet",
		Field: "B",
		Sources: []SourceConfig{
			{Type: "cuboid", Dimensions: Vec{X: 0.02, Y: 0.02, Z: 0.05}, Polarization: Vec{Z: 1.2}},
		},
		Observers: ObserverConfig{
			Grid: &GridConfig{
				Origin: Vec{X: -0.05, Z: -0.08},
				U:      Vec{X: 0.1},
				V:      Vec{Z: 0.16},
				NU:     41, NV: 41,
			},
		},
	},
	"disc-magnet": {
		Name:  "disc-magnet",
		Field: "B",
		Sources: []SourceConfig{
			{Type: "cylinder", Diameter: 0.02, Height: 0.005, AxialJ: 1.3},
		},
		Observers: ObserverConfig{
			Scan: &ScanConfig{Start: Vec{Z: 0.003}, End: Vec{Z: 0.05}, Points: 151},
		},
	},
	"dipole-pair": {
		Name:  "dipole-pair",
		Field: "B",
		Sources: []SourceConfig{
			{Type: "dipole", Moment: Vec{Z: 1}, Position: Vec{X: -0.1}},
			{Type: "dipole", Moment: Vec{Z: -1}, Position: Vec{X: 0.1}},
		},
		Observers: ObserverConfig{
			Grid: &GridConfig{
				Origin: Vec{X: -0.3, Z: -0.2},
				U:      Vec{X: 0.6},
				V:      Vec{Z: 0.4},
				NU:     41, NV: 41,
			},
		},
	},
	"square-coil": {
		Name:  "square-coil",
		Field: "H",
		Sources: []SourceConfig{
			{Type: "polyline", Current: 10, Vertices: []Vec{
				{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5},
				{X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5},
			}},
		},
		Observers: ObserverConfig{
			Scan: &ScanConfig{Start: Vec{Z: -1}, End: Vec{Z: 1}, Points: 201},
		},
	},
}

func GetPreset(name string) *Scenario {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
