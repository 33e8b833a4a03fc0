// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/viper"

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// Neighbors
	v.SetDefault("neighbors.method", "cutoff")
	v.SetDefault("neighbors.cutoff", 0.0) // 0 derives the cutoff from the box density
	v.SetDefault("neighbors.count", 12)
	v.SetDefault("neighbors.prefactor", 1.2)
	v.SetDefault("neighbors.padding", 1.2)
	v.SetDefault("neighbors.nlimit", 6)
	v.SetDefault("neighbors.alpha", 1.0)
	v.SetDefault("neighbors.filter", "none")
	v.SetDefault("neighbors.cells", false)
	v.SetDefault("neighbors.symmetric", false)

	// Bond order
	v.SetDefault("bond_order.l", []int{4, 6})
	v.SetDefault("bond_order.averaged", true)
	v.SetDefault("bond_order.global", false)
	v.SetDefault("bond_order.disorder", false)
	v.SetDefault("bond_order.centrosymmetry", 0)
	v.SetDefault("bond_order.entropy", false)
	v.SetDefault("bond_order.entropy_sigma", 0.2)
	v.SetDefault("bond_order.entropy_rho", 0.0)
	v.SetDefault("bond_order.entropy_rstart", 0.001)
	v.SetDefault("bond_order.entropy_rstop", 0.0)
	v.SetDefault("bond_order.entropy_step", 0.001)
	v.SetDefault("bond_order.entropy_kb", 1.0)

	// Solids
	v.SetDefault("solids.enabled", false)
	v.SetDefault("solids.l", 6)
	v.SetDefault("solids.threshold", 0.5)
	v.SetDefault("solids.avg_threshold", 0.6)
	v.SetDefault("solids.min_connections", 6.0)
	v.SetDefault("solids.criterion", "absolute")
	v.SetDefault("solids.compare", "greater")

	// Structure
	v.SetDefault("structure.cna", true)
	v.SetDefault("structure.method", "adaptive")
	v.SetDefault("structure.lattice_constant", 0.0)
	v.SetDefault("structure.diamond", false)

	// Clusters
	v.SetDefault("cluster.enabled", false)
	v.SetDefault("cluster.cutoff", 0.0) // 0 uses each atom's own cutoff
	v.SetDefault("cluster.iterative", false)

	// Histograms
	v.SetDefault("histogram.cut", 0.0)
	v.SetDefault("histogram.low", 0.0)
	v.SetDefault("histogram.bins", 100)
	v.SetDefault("histogram.workers", 1)
	v.SetDefault("histogram.angle_bins", 0)
	v.SetDefault("histogram.partial", false)
	v.SetDefault("histogram.center_type", 1)
	v.SetDefault("histogram.second_type", 1)

	v.SetDefault("database.path", "")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("metrics.namespace", "atomlath")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
