package catalog

// German premium brands.
var segmentGerman = Catalog{
	"BMW": {
		"Rad 1": {
			{Generation: "F20/F21", Years: "2011-2019", BaseSystem: "Základný (6 repro) alebo HiFi (7 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
		"Rad 3": {
			{Generation: "F30/F31", Years: "2012-2018", BaseSystem: "Základný (6 repro) alebo HiFi (9 repro, 205W)", PremiumSystem: "Harman Kardon Surround (16 repro, 600W)"},
			{Generation: "G20/G21", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro) alebo HiFi (10 repro, 205W)", PremiumSystem: "Harman Kardon Surround (16 repro, 464W)"},
		},
		"Rad 5": {
			{Generation: "F10/F11 (Facelift)", Years: "2013-2016", BaseSystem: "HiFi (12 repro, 205W)", PremiumSystem: "Harman Kardon (16 repro, 600W) ALEBO Bang & Olufsen High End (16 repro, 1200W)"},
			{Generation: "G30/G31", Years: "2017-2023", BaseSystem: "HiFi (12 repro, 205W)", PremiumSystem: "Harman Kardon (16 repro, 600W) ALEBO Bowers & Wilkins Diamond (16 repro, 1400W)"},
		},
		"X1": {
			{Generation: "E84", Years: "2009-2015", BaseSystem: "Základný (6 repro) alebo HiFi (8 repro)", PremiumSystem: "Harman Kardon (11 repro)"},
			{Generation: "F48", Years: "2015-2022", BaseSystem: "Základný (6 repro) alebo HiFi (7 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
		"X3": {
			{Generation: "F25", Years: "2010-2017", BaseSystem: "Základný (6 repro) alebo HiFi (9 repro)", PremiumSystem: "Harman Kardon (16 repro)"},
			{Generation: "G01", Years: "2017-súčasnosť", BaseSystem: "HiFi (12 repro)", PremiumSystem: "Harman Kardon (16 repro)"},
		},
		"X5": {
			{Generation: "F15", Years: "2013-2018", BaseSystem: "HiFi (9 repro)", PremiumSystem: "Harman Kardon (16 repro) ALEBO Bang & Olufsen High End (16 repro)"},
			{Generation: "G05", Years: "2018-súčasnosť", BaseSystem: "HiFi (10 repro)", PremiumSystem: "Harman Kardon (16 repro) ALEBO Bowers & Wilkins Diamond (20 repro)"},
		},
	},

	"Mercedes-Benz": {
		"A-Class": {
			{Generation: "W176", Years: "2012-2018", BaseSystem: "Audio 20 (6 repro)", PremiumSystem: "Harman Kardon Logic7 (12 repro)"},
			{Generation: "W177", Years: "2018-súčasnosť", BaseSystem: "Základný (6 repro) alebo Advanced (10 repro)", PremiumSystem: "Burmester Surround (12 repro)"},
		},
		"C-Class": {
			{Generation: "W204 (Facelift)", Years: "2011-2014", BaseSystem: "Audio 20 (cca 8 repro)", PremiumSystem: "Harman Kardon Logic7 (12 repro)"},
			{Generation: "W205", Years: "2014-2021", BaseSystem: "Audio 20 (cca 8 repro)", PremiumSystem: "Burmester Surround (13 repro, 590W)"},
			{Generation: "W206", Years: "2021-súčasnosť", BaseSystem: "Základný systém", PremiumSystem: "Burmester 3D Surround (15 repro, 710W)"},
		},
		"E-Class": {
			{Generation: "W212 (Facelift)", Years: "2013-2016", BaseSystem: "Audio 20", PremiumSystem: "Harman Kardon Logic7 (14 repro)"},
			{Generation: "W213", Years: "2016-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Burmester Surround (13 repro) ALEBO Burmester High-End 3D (23 repro)"},
		},
		"S-Class": {
			{Generation: "W222", Years: "2013-2020", BaseSystem: "Základný (10 repro)", PremiumSystem: "Burmester Surround (13 repro) ALEBO Burmester High-End 3D (24 repro)"},
			{Generation: "W223", Years: "2020-súčasnosť", BaseSystem: "Burmester 3D Surround (15 repro)", PremiumSystem: "Burmester High-End 4D (31 repro)"},
		},
		"GLC-Class": {
			{Generation: "X253", Years: "2015-2022", BaseSystem: "Audio 20 (8 repro)", PremiumSystem: "Burmester Surround (13 repro, 590W)"},
		},
		"GLE-Class": {
			{Generation: "W166 (ML-Class)", Years: "2011-2018", BaseSystem: "Audio 20", PremiumSystem: "Harman Kardon Logic7 (14 repro)"},
			{Generation: "V167", Years: "2019-súčasnosť", BaseSystem: "Advanced (9 repro)", PremiumSystem: "Burmester Surround (13 repro)"},
		},
	},
}
