package catalog

// Stellantis brands (French, Italian, Opel, Jeep).
var segmentStellantis = Catalog{
	"Peugeot": {
		"208": {
			{Generation: "Gen 1", Years: "2012-2019", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "JBL Hi-Fi (8 repro)"},
			{Generation: "Gen 2", Years: "2019-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Focal (10 repro) - (menej časté)"},
		},
		"308": {
			{Generation: "T9 (Gen 2)", Years: "2013-2021", BaseSystem: "Základný (6 repro)", PremiumSystem: "Denon Hi-Fi (9 repro)"},
			{Generation: "P5 (Gen 3)", Years: "2021-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Focal Premium Hi-Fi (10 repro)"},
		},
		"3008": {
			{Generation: "Gen 1", Years: "2008-2016", BaseSystem: "Základný (6 repro)", PremiumSystem: "JBL Hi-Fi (8 repro)"},
			{Generation: "Gen 2", Years: "2016-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Focal Premium Hi-Fi (10 repro)"},
		},
		"508": {
			{Generation: "Gen 1", Years: "2011-2017", BaseSystem: "Základný (8 repro)", PremiumSystem: "JBL Hi-Fi (10 repro)"},
			{Generation: "Gen 2", Years: "2018-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Focal Premium Hi-Fi (10 repro)"},
		},
	},

	"Citroen": {
		"C3": {
			{Generation: "Gen 3", Years: "2016-súčasnosť", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
		},
		"C4": {
			{Generation: "Gen 2", Years: "2010-2018", BaseSystem: "Základný (6 repro)", PremiumSystem: "Denon Hi-Fi (9 repro, s DSP)"},
			{Generation: "Gen 3", Years: "2020-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Hi-Fi System (8 repro s Arkamys processing)"},
		},
		"C5 Aircross": {
			{Generation: "Gen 1", Years: "2017-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Citroën HiFi System (8 repro, Arkamys)"},
		},
	},

	"DS Automobiles": {
		"DS 4": {
			{Generation: "Gen 2", Years: "2021-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Focal Electra (14 repro)"},
		},
		"DS 7 Crossback": {
			{Generation: "Gen 1", Years: "2017-súčasnosť", BaseSystem: "Základný (8 repro, Arkamys)", PremiumSystem: "Focal Electra (14 repro, 515W)"},
		},
	},

	"Opel": {
		"Corsa": {
			{Generation: "E", Years: "2014-2019", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
			{Generation: "F", Years: "2019-súčasnosť", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
		},
		"Astra": {
			{Generation: "J (Facelift)", Years: "2012-2015", BaseSystem: "Základný (6 repro)", PremiumSystem: "Infinity Sound System (7 repro)"},
			{Generation: "K", Years: "2015-2021", BaseSystem: "Základný (6 repro)", PremiumSystem: "Bose (7 repro)"},
			{Generation: "L", Years: "2021-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Hi-Fi Sound System (8 repro) (Neznačkový)"},
		},
		"Insignia": {
			{Generation: "A (Facelift)", Years: "2013-2017", BaseSystem: "Základný (7 repro)", PremiumSystem: "Bose (9 repro)"},
			{Generation: "B", Years: "2017-2023", BaseSystem: "Základný (7 repro)", PremiumSystem: "Bose (8 repro)"},
		},
	},

	"Fiat": {
		"500": {
			{Generation: "Moderný (Facelift)", Years: "2016-súčasnosť (spaľovací)", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "BeatsAudio (7 repro, 440W)"},
			{Generation: "500e (Elektrický)", Years: "2020-súčasnosť", BaseSystem: "Základný (4 repro)", PremiumSystem: "JBL Premium Audio (7 repro)"},
		},
		"Tipo": {
			{Generation: "Aegae", Years: "2015-súčasnosť", BaseSystem: "Uconnect (4 alebo 6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
		},
	},

	"Alfa Romeo": {
		"Giulia": {
			{Generation: "952", Years: "2016-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Harman Kardon (14 repro, 900W)"},
		},
		"Stelvio": {
			{Generation: "949", Years: "2017-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Harman Kardon (14 repro, 900W)"},
		},
		"Tonale": {
			{Generation: "Gen 1", Years: "2022-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "Harman Kardon (14 repro)"},
		},
	},

	"Maserati": {
		"Ghibli": {
			{Generation: "M157", Years: "2013-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Harman Kardon (10 repro, 900W) ALEBO Bowers & Wilkins (15 repro, 1280W)"},
		},
	},

	"Jeep": {
		"Renegade": {
			{Generation: "Gen 1", Years: "2014-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "BeatsAudio (9 repro, 506W)"},
		},
		"Compass": {
			{Generation: "MP", Years: "2017-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "BeatsAudio (9 repro, 506W)"},
		},
	},
}
