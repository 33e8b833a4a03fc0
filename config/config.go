// SPDX-License-Identifier: MIT

package config

// Config is the full analysis configuration.
type Config struct {
	Neighbors NeighborConfig  `mapstructure:"neighbors" toml:"neighbors"`
	BondOrder BondOrderConfig `mapstructure:"bond_order" toml:"bond_order"`
	Solids    SolidConfig     `mapstructure:"solids" toml:"solids"`
	Structure StructureConfig `mapstructure:"structure" toml:"structure"`
	Cluster   ClusterConfig   `mapstructure:"cluster" toml:"cluster"`
	Histogram HistogramConfig `mapstructure:"histogram" toml:"histogram"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Metrics   MetricsConfig   `mapstructure:"metrics" toml:"metrics"`
	Log       LogConfig       `mapstructure:"log" toml:"log"`
}

// NeighborConfig selects the neighbor strategy and its knobs.
type NeighborConfig struct {
	Method    string  `mapstructure:"method" toml:"method" validate:"oneof=cutoff number sann adaptive voronoi"`
	Cutoff    float64 `mapstructure:"cutoff" toml:"cutoff" validate:"gte=0"`
	Count     int     `mapstructure:"count" toml:"count" validate:"gte=1"`
	Prefactor float64 `mapstructure:"prefactor" toml:"prefactor" validate:"gt=0"`
	Padding   float64 `mapstructure:"padding" toml:"padding" validate:"gt=0"`
	NLimit    int     `mapstructure:"nlimit" toml:"nlimit" validate:"gte=1"`
	Alpha     float64 `mapstructure:"alpha" toml:"alpha"`
	Filter    string  `mapstructure:"filter" toml:"filter" validate:"oneof=none same cross"`
	Cells     bool    `mapstructure:"cells" toml:"cells"`
	Symmetric bool    `mapstructure:"symmetric" toml:"symmetric"`
}

// BondOrderConfig lists the ℓ values and the derived quantities to compute.
// EntropyRho 0 uses the local density and EntropyRStop 0 the atom cutoff.
type BondOrderConfig struct {
	L              []int   `mapstructure:"l" toml:"l" validate:"dive,gte=0"`
	Averaged       bool    `mapstructure:"averaged" toml:"averaged"`
	Global         bool    `mapstructure:"global" toml:"global"`
	Disorder       bool    `mapstructure:"disorder" toml:"disorder"`
	Centrosymmetry int     `mapstructure:"centrosymmetry" toml:"centrosymmetry" validate:"evenorzero"`
	Entropy        bool    `mapstructure:"entropy" toml:"entropy"`
	EntropySigma   float64 `mapstructure:"entropy_sigma" toml:"entropy_sigma" validate:"gt=0"`
	EntropyRho     float64 `mapstructure:"entropy_rho" toml:"entropy_rho" validate:"gte=0"`
	EntropyRStart  float64 `mapstructure:"entropy_rstart" toml:"entropy_rstart" validate:"gt=0"`
	EntropyRStop   float64 `mapstructure:"entropy_rstop" toml:"entropy_rstop" validate:"gte=0"`
	EntropyStep    float64 `mapstructure:"entropy_step" toml:"entropy_step" validate:"gt=0"`
	EntropyKB      float64 `mapstructure:"entropy_kb" toml:"entropy_kb" validate:"gt=0"`
}

// SolidConfig drives the solid/liquid labelling.
type SolidConfig struct {
	Enabled        bool    `mapstructure:"enabled" toml:"enabled"`
	L              int     `mapstructure:"l" toml:"l" validate:"gte=0"`
	Threshold      float64 `mapstructure:"threshold" toml:"threshold"`
	AvgThreshold   float64 `mapstructure:"avg_threshold" toml:"avg_threshold"`
	MinConnections float64 `mapstructure:"min_connections" toml:"min_connections" validate:"gte=0"`
	Criterion      string  `mapstructure:"criterion" toml:"criterion" validate:"oneof=absolute fraction"`
	Compare        string  `mapstructure:"compare" toml:"compare" validate:"oneof=greater less"`
}

// StructureConfig drives common neighbor analysis.
type StructureConfig struct {
	CNA             bool    `mapstructure:"cna" toml:"cna"`
	Method          string  `mapstructure:"method" toml:"method" validate:"oneof=adaptive fixed"`
	LatticeConstant float64 `mapstructure:"lattice_constant" toml:"lattice_constant" validate:"gte=0"`
	Diamond         bool    `mapstructure:"diamond" toml:"diamond"`
}

// ClusterConfig drives clustering of eligible atoms.
type ClusterConfig struct {
	Enabled   bool    `mapstructure:"enabled" toml:"enabled"`
	Cutoff    float64 `mapstructure:"cutoff" toml:"cutoff" validate:"gte=0"`
	Iterative bool    `mapstructure:"iterative" toml:"iterative"`
}

// HistogramConfig drives the pair and angle histograms; Cut 0 disables
// the pair histogram and AngleBins 0 the angle histogram. Partial counts
// ordered CenterType → SecondType pairs only.
type HistogramConfig struct {
	Cut        float64 `mapstructure:"cut" toml:"cut" validate:"gte=0"`
	Low        float64 `mapstructure:"low" toml:"low" validate:"gte=0"`
	Bins       int     `mapstructure:"bins" toml:"bins" validate:"gte=1"`
	Workers    int     `mapstructure:"workers" toml:"workers" validate:"gte=1"`
	AngleBins  int     `mapstructure:"angle_bins" toml:"angle_bins" validate:"gte=0"`
	Partial    bool    `mapstructure:"partial" toml:"partial"`
	CenterType int     `mapstructure:"center_type" toml:"center_type"`
	SecondType int     `mapstructure:"second_type" toml:"second_type"`
}

// DatabaseConfig points at the result store; an empty path disables it.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr      string `mapstructure:"addr" toml:"addr"`
	Namespace string `mapstructure:"namespace" toml:"namespace" validate:"required"`
}

// LogConfig selects the logger flavor.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level" validate:"oneof=debug info warn error"`
}
