package config

// Document is the on-disk shape of fractile.yaml.
type Document struct {
	Version   string       `yaml:"version"`
	Viewport  ViewportDTO  `yaml:"viewport"`
	Tiles     TilesDTO     `yaml:"tiles"`
	Workers   int          `yaml:"workers"`
	Evaluator EvaluatorDTO `yaml:"evaluator"`
	Palette   string       `yaml:"palette"`
	Output    OutputDTO    `yaml:"output"`
	Script    []StepDTO    `yaml:"script"`
}

// ViewportDTO is the initial view. Origin is the [x, y] field point at the
// top-left screen pixel.
type ViewportDTO struct {
	Origin []float64 `yaml:"origin"`
	Scale  float64   `yaml:"scale"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
}

// TilesDTO is the tile geometry and cache policy.
type TilesDTO struct {
	Edge           int   `yaml:"edge"`
	Divisors       []int `yaml:"divisors"`
	EvictionFactor int   `yaml:"evictionFactor"`
	Overview       int   `yaml:"overview"`
	MaxTiles       int   `yaml:"maxTiles"`
}

// EvaluatorDTO parameterises the escape-time iteration.
type EvaluatorDTO struct {
	MaxIterations int `yaml:"maxIterations"`
	Bands         int `yaml:"bands"`
}

// OutputDTO is where the final frame is written.
type OutputDTO struct {
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
	Annotate bool   `yaml:"annotate"`
}

// StepDTO is one script step. Exactly one of Pan and Zoom must be set.
type StepDTO struct {
	Pan  []int    `yaml:"pan"`
	Zoom *float64 `yaml:"zoom"`
}
