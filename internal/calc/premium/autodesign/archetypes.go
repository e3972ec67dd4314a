package autodesign

// archetype holds the fixed multipliers and scores of one design family.
// Size, power, cost, throughput and energy scale a computed baseline; the
// scores are absolute starting points for the adjustment pass.
type archetype struct {
	id, name    string
	diameter    float64
	length      float64
	power       float64
	cost        float64
	efficiency  float64
	reliability float64
	environment float64
	maintenance float64
	payback     float64
	opCost      float64
	ballCharge  float64
	critical    float64
	throughput  float64
	energy      float64

	description   string
	advantages    []string
	disadvantages []string
	suitability   string
}

// archetypes are listed in ranking tie-break order.
var archetypes = []archetype{
	{
		id: Conservative, name: "Conservative design - high reliability",
		diameter: 1.1, length: 1.0, power: 1.3, cost: 0.85,
		efficiency: 82, reliability: 95, environment: 75, maintenance: 90,
		payback: 4.2, opCost: 12, ballCharge: 40, critical: 72, throughput: 0.95, energy: 1.3,
		description: "High safety margin for stable, dependable operation",
		advantages: []string{
			"High reliability (>95%)",
			"Low maintenance cost",
			"Stable performance across operating conditions",
			"Easy to service",
			"Long service life (25+ years)",
		},
		disadvantages: []string{
			"Higher initial investment",
			"Somewhat higher energy use",
			"Larger footprint",
			"Longer installation time",
		},
		suitability: "Suited to 24/7 operation and hard ores",
	},
	{
		id: Balanced, name: "Balanced design - economic optimum",
		diameter: 1, length: 1, power: 1.1, cost: 0.75,
		efficiency: 88, reliability: 87, environment: 82, maintenance: 83,
		payback: 3.1, opCost: 10, ballCharge: 38, critical: 75, throughput: 1.02, energy: 1.1,
		description: "Best trade-off between cost, performance and reliability",
		advantages: []string{
			"Optimal cost to performance ratio",
			"Good energy efficiency",
			"Well balanced operation",
			"Operational flexibility",
			"Moderate maintenance",
		},
		disadvantages: []string{
			"Needs closer monitoring",
			"Sensitive to feed variation",
			"Limited headroom in extreme conditions",
		},
		suitability: "Recommended for most industrial applications",
	},
	{
		id: Aggressive, name: "Aggressive design - maximum efficiency",
		diameter: 0.9, length: 1.1, power: 0.95, cost: 0.65,
		efficiency: 94, reliability: 78, environment: 90, maintenance: 72,
		payback: 2.3, opCost: 8.5, ballCharge: 42, critical: 78, throughput: 1.08, energy: 0.95,
		description: "Tuned for maximum efficiency and lowest energy use",
		advantages: []string{
			"High energy efficiency (>90%)",
			"Lower capital outlay",
			"Faster throughput",
			"Smaller environmental impact",
			"Smaller footprint",
		},
		disadvantages: []string{
			"Requires tighter process control",
			"Sensitive to feed quality",
			"Higher maintenance cost",
			"Needs skilled operators",
		},
		suitability: "Suited to soft ores and well controlled circuits",
	},
	{
		id: Modular, name: "Modular design - expandable",
		diameter: 0.85, length: 0.8, power: 0.8, cost: 0.6,
		efficiency: 85, reliability: 82, environment: 85, maintenance: 85,
		payback: 3.8, opCost: 9.2, ballCharge: 36, critical: 73, throughput: 0.8, energy: 0.8,
		description: "Modular layout that can be extended and upgraded later",
		advantages: []string{
			"Staged expansion",
			"High flexibility",
			"Lower investment risk",
			"Adapts to changing requirements",
			"Faster installation",
		},
		disadvantages: []string{
			"More complex engineering",
			"Higher unit cost",
			"Needs careful planning",
		},
		suitability: "Suited to projects with gradual growth",
	},
}
