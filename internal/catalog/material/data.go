package material

var catalog = map[string]Material{
	"hematite": {
		Name: "Hematite (Fe2O3)", Category: "iron ore", Subcategory: "oxide",
		Description: "High grade oxide iron ore",
		Wi: 12.8, Sg: 5.0, Hardness: Medium, Abrasiveness: AbrasiveMedium,
		RecommendedK: 390, Grindability: GrindGood,
		CapacityRange: [2]float64{500, 5000}, OptimalDiameter: [2]float64{3.5, 7.0},
		BondFc: 7.73, BondMaxBallSize: 76.2, CostFactor: 1.0, WearFactor: 1.2,
		CriticalSize: 150, Competency: 0.8, OreType: "hard", LiberationSize: 75,
		Regions:    []string{"Australia", "Brazil", "India", "China"},
		GradeRange: [2]float64{55, 67}, FlotationRecovery: 85,
		MagneticSeparation: true,
	},
	"magnetite": {
		Name: "Magnetite (Fe3O4)", Category: "iron ore", Subcategory: "magnetic",
		Description: "Magnetic iron ore with high separability",
		Wi: 10.2, Sg: 5.1, Hardness: Soft, Abrasiveness: AbrasiveLow,
		RecommendedK: 340, Grindability: GrindExcellent,
		CapacityRange: [2]float64{1000, 8000}, OptimalDiameter: [2]float64{4.0, 8.5},
		BondFc: 6.24, BondMaxBallSize: 76.2, CostFactor: 0.85, WearFactor: 0.9,
		CriticalSize: 106, Competency: 0.9, OreType: "medium", LiberationSize: 45,
		Regions:    []string{"Sweden", "Chile", "Norway"},
		GradeRange: [2]float64{58, 72}, FlotationRecovery: 75,
		MagneticSeparation: true, GravitySeparation: true,
	},
	"chalcopyrite": {
		Name: "Chalcopyrite (CuFeS2)", Category: "copper ore", Subcategory: "sulfide",
		Description: "The world's principal copper ore",
		Wi: 12.7, Sg: 4.2, Hardness: Medium, Abrasiveness: AbrasiveMedium,
		RecommendedK: 410, Grindability: GrindGood,
		CapacityRange: [2]float64{200, 3000}, OptimalDiameter: [2]float64{3.0, 6.5},
		BondFc: 8.95, BondMaxBallSize: 76.2, CostFactor: 1.15, WearFactor: 1.1,
		CriticalSize: 180, Competency: 0.75, OreType: "medium", LiberationSize: 100,
		Regions:    []string{"Chile", "Peru", "USA", "Australia"},
		GradeRange: [2]float64{0.4, 2.5}, FlotationRecovery: 92,
	},
	"chalcocite": {
		Name: "Chalcocite (Cu2S)", Category: "copper ore", Subcategory: "secondary",
		Description: "High grade secondary copper ore",
		Wi: 8.9, Sg: 5.7, Hardness: Soft, Abrasiveness: AbrasiveLow,
		RecommendedK: 320, Grindability: GrindExcellent,
		CapacityRange: [2]float64{100, 1500}, OptimalDiameter: [2]float64{2.5, 5.0},
		BondFc: 5.81, BondMaxBallSize: 63.5, CostFactor: 0.95, WearFactor: 0.8,
		CriticalSize: 125, Competency: 0.85, OreType: "soft", LiberationSize: 150,
		Regions:    []string{"Chile", "USA", "Zambia"},
		GradeRange: [2]float64{1.5, 15.0}, FlotationRecovery: 95,
	},
	"free_gold_quartz": {
		Name: "Free gold in quartz", Category: "gold", Subcategory: "free milling",
		Description: "Free gold in a quartz matrix",
		Wi: 14.8, Sg: 2.65, Hardness: Hard, Abrasiveness: AbrasiveHigh,
		RecommendedK: 430, Grindability: GrindHard,
		CapacityRange: [2]float64{50, 800}, OptimalDiameter: [2]float64{2.0, 4.5},
		BondFc: 11.2, BondMaxBallSize: 76.2, CostFactor: 1.3, WearFactor: 1.4,
		CriticalSize: 75, Competency: 0.6, OreType: "hard", LiberationSize: 25,
		Regions:    []string{"Australia", "Canada", "South Africa"},
		GradeRange: [2]float64{2, 25}, FlotationRecovery: 80,
		GravitySeparation: true,
	},
	"refractory_gold": {
		Name: "Refractory gold (pyrite/arsenopyrite)", Category: "gold", Subcategory: "refractory",
		Description: "Gold locked in sulfides",
		Wi: 18.5, Sg: 4.8, Hardness: VeryHard, Abrasiveness: AbrasiveVeryHigh,
		RecommendedK: 480, Grindability: GrindHard,
		CapacityRange: [2]float64{25, 400}, OptimalDiameter: [2]float64{1.8, 3.5},
		BondFc: 14.6, BondMaxBallSize: 63.5, CostFactor: 1.8, WearFactor: 1.8,
		CriticalSize: 37, Competency: 0.45, OreType: "very_hard", LiberationSize: 15,
		Regions:    []string{"Nevada", "Ghana", "Uzbekistan"},
		GradeRange: [2]float64{3, 12}, FlotationRecovery: 70,
		MagneticSeparation: true,
	},
	"limestone_cement": {
		Name: "Cement limestone", Category: "industrial", Subcategory: "cement",
		Description: "Limestone for cement production",
		Wi: 11.6, Sg: 2.7, Hardness: Soft, Abrasiveness: AbrasiveLow,
		RecommendedK: 350, Grindability: GrindExcellent,
		CapacityRange: [2]float64{2000, 15000}, OptimalDiameter: [2]float64{4.5, 12.0},
		BondFc: 7.49, BondMaxBallSize: 101.6, CostFactor: 0.7, WearFactor: 0.6,
		CriticalSize: 200, Competency: 1.1, OreType: "soft", LiberationSize: 300,
		Regions:    []string{"Global"},
		GradeRange: [2]float64{85, 98},
	},
	"cement_clinker": {
		Name: "Cement clinker", Category: "cement", Subcategory: "clinker",
		Description: "Portland cement clinker",
		Wi: 13.5, Sg: 3.1, Hardness: Hard, Abrasiveness: AbrasiveHigh,
		RecommendedK: 440, Grindability: GrindMedium,
		CapacityRange: [2]float64{1500, 8000}, OptimalDiameter: [2]float64{3.5, 8.0},
		BondFc: 9.67, BondMaxBallSize: 76.2, CostFactor: 1.1, WearFactor: 1.3,
		CriticalSize: 45, Competency: 0.8, OreType: "hard", LiberationSize: 32,
		Regions:    []string{"Global"},
		GradeRange: [2]float64{95, 99},
	},
	"phosphate_morocco": {
		Name: "Moroccan phosphate", Category: "fertilizer", Subcategory: "phosphate",
		Description: "Moroccan phosphate rock, the largest reserves worldwide",
		Wi: 9.8, Sg: 2.9, Hardness: Soft, Abrasiveness: AbrasiveLow,
		RecommendedK: 320, Grindability: GrindExcellent,
		CapacityRange: [2]float64{800, 4000}, OptimalDiameter: [2]float64{3.0, 6.0},
		BondFc: 6.11, BondMaxBallSize: 88.9, CostFactor: 0.8, WearFactor: 0.7,
		CriticalSize: 250, Competency: 1.0, OreType: "soft", LiberationSize: 150,
		Regions:    []string{"Morocco", "Western Sahara"},
		GradeRange: [2]float64{28, 34}, FlotationRecovery: 88,
		GravitySeparation: true,
	},
	"bituminous_coal": {
		Name: "Bituminous coal", Category: "fuel", Subcategory: "coal",
		Description: "High quality bituminous coal",
		Wi: 11.4, Sg: 1.3, Hardness: Soft, Abrasiveness: AbrasiveVeryLow,
		RecommendedK: 300, Grindability: GrindExcellent,
		CapacityRange: [2]float64{1000, 6000}, OptimalDiameter: [2]float64{3.0, 7.0},
		BondFc: 8.77, BondMaxBallSize: 114.3, CostFactor: 0.6, WearFactor: 0.4,
		CriticalSize: 300, Competency: 1.2, OreType: "very_soft", LiberationSize: 500,
		Regions:    []string{"USA", "Australia", "Germany"},
		GradeRange: [2]float64{55, 85}, FlotationRecovery: 95,
		MagneticSeparation: true, GravitySeparation: true,
	},
	"platinum_ore": {
		Name: "Platinum group metals ore", Category: "precious metals", Subcategory: "platinum",
		Description: "Ore bearing platinum group metals",
		Wi: 16.2, Sg: 3.2, Hardness: Hard, Abrasiveness: AbrasiveHigh,
		RecommendedK: 460, Grindability: GrindHard,
		CapacityRange: [2]float64{50, 500}, OptimalDiameter: [2]float64{2.0, 4.0},
		BondFc: 12.8, BondMaxBallSize: 63.5, CostFactor: 1.6, WearFactor: 1.5,
		CriticalSize: 38, Competency: 0.65, OreType: "hard", LiberationSize: 20,
		Regions:    []string{"South Africa", "Russia", "Zimbabwe"},
		GradeRange: [2]float64{3, 15}, FlotationRecovery: 85,
		MagneticSeparation: true, GravitySeparation: true,
	},
	"nickel_laterite": {
		Name: "Nickel laterite", Category: "nickel", Subcategory: "oxide",
		Description: "Lateritic oxide nickel ore",
		Wi: 9.1, Sg: 2.8, Hardness: Soft, Abrasiveness: AbrasiveMedium,
		RecommendedK: 310, Grindability: GrindGood,
		CapacityRange: [2]float64{200, 2000}, OptimalDiameter: [2]float64{2.5, 5.5},
		BondFc: 5.94, BondMaxBallSize: 76.2, CostFactor: 0.9, WearFactor: 1.0,
		CriticalSize: 180, Competency: 0.9, OreType: "soft", LiberationSize: 100,
		Regions:    []string{"Indonesia", "Philippines", "Cuba"},
		GradeRange: [2]float64{1.0, 2.5}, FlotationRecovery: 65,
		MagneticSeparation: true,
	},
	"bauxite_gibbsite": {
		Name: "Gibbsitic bauxite", Category: "aluminium", Subcategory: "bauxite",
		Description: "High quality gibbsitic bauxite",
		Wi: 8.5, Sg: 2.4, Hardness: Soft, Abrasiveness: AbrasiveLow,
		RecommendedK: 290, Grindability: GrindExcellent,
		CapacityRange: [2]float64{1000, 5000}, OptimalDiameter: [2]float64{3.5, 7.5},
		BondFc: 5.23, BondMaxBallSize: 88.9, CostFactor: 0.75, WearFactor: 0.7,
		CriticalSize: 250, Competency: 1.0, OreType: "soft", LiberationSize: 200,
		Regions:    []string{"Australia", "Guinea", "Brazil"},
		GradeRange: [2]float64{50, 60}, FlotationRecovery: 80,
		GravitySeparation: true,
	},
}
