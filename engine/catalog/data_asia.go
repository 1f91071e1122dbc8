package catalog

// Japanese and Korean brands.
var segmentAsia = Catalog{
	"Toyota": {
		"Yaris": {
			{Generation: "XP130 (Gen 3)", Years: "2011-2019", BaseSystem: "Toyota Touch (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
			{Generation: "XP210 (Gen 4)", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL (8 repro)"},
		},
		"Corolla": {
			{Generation: "E170 (Gen 11)", Years: "2013-2018", BaseSystem: "Toyota Touch 2 (6 repro)", PremiumSystem: "Žiaden značkový prémiový systém (v EÚ)"},
			{Generation: "E210 (Gen 12)", Years: "2018-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL (8 repro)"},
		},
		"C-HR": {
			{Generation: "Gen 1", Years: "2016-2023", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL (9 repro)"},
		},
		"RAV4": {
			{Generation: "XA40 (Gen 4)", Years: "2013-2018", BaseSystem: "Toyota Touch 2 (6 repro)", PremiumSystem: "JBL GreenEdge (11 repro)"},
			{Generation: "XA50 (Gen 5)", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL (11 repro)"},
		},
	},

	"Lexus": {
		"IS": {
			{Generation: "XE30", Years: "2013-súčasnosť", BaseSystem: "Lexus Premium (Pioneer) (10 repro)", PremiumSystem: "Mark Levinson Premium Surround (15 repro, 835W)"},
		},
		"NX": {
			{Generation: "AZ10 (Gen 1)", Years: "2014-2021", BaseSystem: "Lexus Premium (Pioneer) (10 repro)", PremiumSystem: "Mark Levinson (14 repro)"},
			{Generation: "AZ20 (Gen 2)", Years: "2021-súčasnosť", BaseSystem: "Lexus Premium (10 repro)", PremiumSystem: "Mark Levinson (17 repro)"},
		},
		"RX": {
			{Generation: "AL10 (Gen 3 facelift)", Years: "2012-2015", BaseSystem: "Lexus Premium (9 repro)", PremiumSystem: "Mark Levinson (15 repro)"},
			{Generation: "AL20 (Gen 4)", Years: "2015-2022", BaseSystem: "Lexus Premium (9 alebo 12 repro)", PremiumSystem: "Mark Levinson (15 repro)"},
		},
	},

	"Honda": {
		"Civic": {
			{Generation: "Gen 9 (FK)", Years: "2012-2017", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Honda Premium Audio (8 repro)"},
			{Generation: "Gen 10 (FK)", Years: "2017-2022", BaseSystem: "Základný (8 repro)", PremiumSystem: "Honda Premium Audio (11 repro)"},
			{Generation: "Gen 11 (FE/FL)", Years: "2022-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Bose Centerpoint (12 repro)"},
		},
		"CR-V": {
			{Generation: "Gen 4 (RM)", Years: "2012-2018", BaseSystem: "Základný (6 repro)", PremiumSystem: "Premium Audio System (7 repro)"},
			{Generation: "Gen 5 (RW)", Years: "2018-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Honda Premium Audio (9 repro)"},
		},
	},

	"Nissan": {
		"Juke": {
			{Generation: "F16 (Gen 2)", Years: "2019-súčasnosť", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Bose Personal Plus (8 repro)"},
		},
		"Qashqai": {
			{Generation: "J11 (Gen 2)", Years: "2013-2021", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Bose (8 repro)"},
			{Generation: "J12 (Gen 3)", Years: "2021-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose Premium (10 repro)"},
		},
		"X-Trail": {
			{Generation: "T32 (Gen 3)", Years: "2013-2021", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose (8 repro)"},
		},
	},

	"Mazda": {
		"Mazda 3": {
			{Generation: "BM/BN (Gen 3)", Years: "2013-2018", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Bose Centerpoint 2 (9 repro)"},
			{Generation: "BP (Gen 4)", Years: "2019-súčasnosť", BaseSystem: "Mazda Harmonic Acoustics (8 repro)", PremiumSystem: "Bose (12 repro)"},
		},
		"Mazda 6": {
			{Generation: "GJ/GL (Gen 3)", Years: "2012-súčasnosť", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Bose Centerpoint 2 (11 repro)"},
		},
		"CX-5": {
			{Generation: "KE (Gen 1)", Years: "2012-2017", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose (9 repro)"},
			{Generation: "KF (Gen 2)", Years: "2017-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose (10 repro)"},
		},
	},

	"Subaru": {
		"Outback": {
			{Generation: "BS (Gen 5)", Years: "2014-2019", BaseSystem: "Základný (6 repro)", PremiumSystem: "Harman Kardon (12 repro)"},
		},
		"Forester": {
			{Generation: "SJ (Gen 4)", Years: "2012-2018", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Harman Kardon (8 repro)"},
		},
	},

	"Mitsubishi": {
		"ASX": {
			{Generation: "Gen 1 (viacero faceliftov)", Years: "2010-súčasnosť", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Rockford Fosgate (9 repro, 710W)"},
		},
		"Outlander": {
			{Generation: "Gen 3 (PHEV v EÚ)", Years: "2012-2021", BaseSystem: "Základný (6 repro)", PremiumSystem: "Rockford Fosgate (9 repro, 710W)"},
		},
	},

	"Suzuki": {
		"Vitara": {
			{Generation: "Gen 4", Years: "2015-súčasnosť", BaseSystem: "Základný (4 repro)", PremiumSystem: "Rozšírený systém (6 repro, 2x tweeter)"},
		},
		"S-Cross": {
			{Generation: "Gen 2", Years: "2013-2021", BaseSystem: "Základný (4 repro)", PremiumSystem: "Rozšírený systém (6 repro)"},
		},
	},

	"Hyundai": {
		"i20": {
			{Generation: "Gen 2 (GB)", Years: "2014-2020", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
			{Generation: "Gen 3 (BC3)", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose Premium Sound (8 repro)"},
		},
		"i30": {
			{Generation: "GD (Gen 2)", Years: "2012-2017", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Príplatkový systém (6 repro + zosilňovač)"},
			{Generation: "PD (Gen 3)", Years: "2017-súčasnosť", BaseSystem: "Základný (4 alebo 6 repro)", PremiumSystem: "Žiaden značkový prémiový systém (na väčšine EÚ trhov)"},
		},
		"Tucson": {
			{Generation: "ix35 (Gen 2)", Years: "2009-2015", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (7 repro)"},
			{Generation: "TL (Gen 3)", Years: "2015-2020", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (8 repro)"},
			{Generation: "NX4 (Gen 4)", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Krell Premium Sound (8 repro)"},
		},
		"Santa Fe": {
			{Generation: "Gen 3 (DM)", Years: "2012-2018", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (10 repro)"},
			{Generation: "Gen 4 (TM)", Years: "2018-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Krell Premium Sound (10 repro)"},
		},
	},

	"Kia": {
		"Ceed": {
			{Generation: "JD (Gen 2)", Years: "2012-2018", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (7 repro, na niektorých trhoch)"},
			{Generation: "CD (Gen 3)", Years: "2018-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL Premium Sound (8 repro)"},
		},
		"Sportage": {
			{Generation: "SL (Gen 3)", Years: "2010-2015", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (7 repro)"},
			{Generation: "QL (Gen 4)", Years: "2016-2021", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL Premium Sound (8 repro)"},
			{Generation: "NQ5 (Gen 5)", Years: "2021-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Harman Kardon Premium Sound (8 repro)"},
		},
		"Sorento": {
			{Generation: "Gen 2 (XM Facelift)", Years: "2012-2014", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (10 repro)"},
			{Generation: "Gen 3 (UM)", Years: "2015-2020", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Premium Sound (10 repro)"},
			{Generation: "Gen 4 (MQ4)", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose Premium Sound (12 repro)"},
		},
	},

	"Genesis": {
		"G70": {
			{Generation: "Gen 1", Years: "2017-súčasnosť (vstup do EÚ cca 2021)", BaseSystem: "Základný (9 repro)", PremiumSystem: "Lexicon (15 repro)"},
		},
		"GV80": {
			{Generation: "Gen 1", Years: "2020-súčasnosť (vstup do EÚ cca 2021)", BaseSystem: "Genesis Premium (12 repro)", PremiumSystem: "Lexicon (21 repro)"},
		},
	},
}
