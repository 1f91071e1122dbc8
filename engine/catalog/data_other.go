package catalog

// Remaining European market brands.
var segmentOther = Catalog{
	"Renault": {
		"Clio": {
			{Generation: "Gen 4", Years: "2012-2019", BaseSystem: "Základný (4 repro) alebo R-Link (6 repro)", PremiumSystem: "Bose Sound System (7 repro)"},
			{Generation: "Gen 5", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose Sound System (9 repro)"},
		},
		"Megane": {
			{Generation: "Gen 3 (Facelift)", Years: "2012-2016", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Bose Sound System (9 repro)"},
			{Generation: "Gen 4 (Spaľovací)", Years: "2016-2023", BaseSystem: "Základný (4-8 repro)", PremiumSystem: "Bose Sound System (9 repro)"},
			{Generation: "Megane E-Tech (Elektrický)", Years: "2022-súčasnosť", BaseSystem: "Arkamys (6 repro)", PremiumSystem: "Harman Kardon (9 repro, 410W)"},
		},
		"Captur": {
			{Generation: "Gen 1", Years: "2013-2019", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Bose Sound System (7 repro)"},
			{Generation: "Gen 2", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose Sound System (9 repro)"},
		},
		"Austral": {
			{Generation: "Gen 1", Years: "2022-súčasnosť", BaseSystem: "Arkamys (8 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
	},

	"Dacia": {
		"Duster": {
			{Generation: "Gen 1 (Facelift)", Years: "2013-2017", BaseSystem: "Základný (2-4 repro)", PremiumSystem: "Media Nav (4 repro)"},
			{Generation: "Gen 2", Years: "2017-2023", BaseSystem: "Základný (4 repro)", PremiumSystem: "Media Nav (6 repro)"},
		},
		"Sandero": {
			{Generation: "Gen 2", Years: "2012-2020", BaseSystem: "Základný (2-4 repro)", PremiumSystem: "Media Nav (4 repro)"},
			{Generation: "Gen 3", Years: "2020-súčasnosť", BaseSystem: "Základný (4 repro)", PremiumSystem: "Media Nav (6 repro)"},
		},
	},

	"Volvo": {
		"S60/V60": {
			{Generation: "Gen 2", Years: "2010-2018", BaseSystem: "High Performance (8 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
			{Generation: "Gen 3", Years: "2019-súčasnosť", BaseSystem: "High Performance (10 repro)", PremiumSystem: "Harman Kardon (14 repro) ALEBO Bowers & Wilkins (15 repro)"},
		},
		"S90/V90": {
			{Generation: "Gen 2", Years: "2016-súčasnosť", BaseSystem: "High Performance (10 repro)", PremiumSystem: "Harman Kardon (14 repro) ALEBO Bowers & Wilkins (19 repro)"},
		},
		"XC60": {
			{Generation: "Gen 1", Years: "2008-2017", BaseSystem: "High Performance (8 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
			{Generation: "Gen 2", Years: "2017-súčasnosť", BaseSystem: "High Performance (10 repro)", PremiumSystem: "Harman Kardon (14 repro) ALEBO Bowers & Wilkins (15 repro)"},
		},
		"XC90": {
			{Generation: "Gen 2", Years: "2015-súčasnosť", BaseSystem: "High Performance (10 repro)", PremiumSystem: "Harman Kardon (14 repro) ALEBO Bowers & Wilkins (19 repro)"},
		},
	},

	"Ford": {
		"Fiesta": {
			{Generation: "Mk7", Years: "2008-2017", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Sony (8 repro)"},
			{Generation: "Mk8", Years: "2017-2023", BaseSystem: "Základný (6 repro)", PremiumSystem: "B&O Play (10 repro)"},
		},
		"Focus": {
			{Generation: "Mk3", Years: "2011-2018", BaseSystem: "Základný (6 repro)", PremiumSystem: "Sony (10 repro)"},
			{Generation: "Mk4", Years: "2018-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "B&O Play (10 repro)"},
		},
		"Kuga": {
			{Generation: "Gen 2", Years: "2012-2019", BaseSystem: "Základný (6 repro)", PremiumSystem: "Sony (10 repro)"},
			{Generation: "Gen 3", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "B&O Play (10 repro)"},
		},
	},

	"Jaguar": {
		"XE": {
			{Generation: "X760", Years: "2015-súčasnosť", BaseSystem: "Jaguar Sound (6 repro, 80W)", PremiumSystem: "Meridian Sound (11 repro, 380W) ALEBO Meridian Surround (17 repro, 825W)"},
		},
		"F-Pace": {
			{Generation: "X761", Years: "2016-súčasnosť", BaseSystem: "Jaguar Sound (8 repro)", PremiumSystem: "Meridian Sound (11 repro, 380W) ALEBO Meridian Surround (17 repro, 825W)"},
		},
	},

	"Land Rover": {
		"Range Rover Evoque": {
			{Generation: "L538 (Gen 1)", Years: "2011-2018", BaseSystem: "Land Rover Sound (8 repro)", PremiumSystem: "Meridian Sound (11 repro, 380W) ALEBO Meridian Surround (17 repro, 825W)"},
			{Generation: "L551 (Gen 2)", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro) alebo Sound System (10 repro, 180W)", PremiumSystem: "Meridian Sound (14 repro, 400W) ALEBO Meridian Surround (16 repro, 650W)"},
		},
		"Defender": {
			{Generation: "L663", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Meridian Sound (10 repro, 400W) ALEBO Meridian Surround (14 repro, 700W)"},
		},
	},

	"Mini": {
		"Cooper (Hatch)": {
			{Generation: "F56 (Gen 3)", Years: "2014-súčasnosť", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
		"Countryman": {
			{Generation: "F60 (Gen 2)", Years: "2017-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
	},
}
