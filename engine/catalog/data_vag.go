package catalog

// Volkswagen Group brands, Cupra included.
var segmentVAG = Catalog{
	"Skoda": {
		"Octavia": {
			{Generation: "Gen 3 (5E)", Years: "2012-2019", BaseSystem: "Základný (4-8 repro)", PremiumSystem: "Canton Sound System (10 repro)"},
			{Generation: "Gen 4 (NX)", Years: "2020-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Canton Sound System (12 repro)"},
		},
		"Superb": {
			{Generation: "Gen 2 (3T) (Facelift)", Years: "2013-2015", BaseSystem: "'Swing' / 'Bolero' (8 repro)", PremiumSystem: "Škoda Sound System (10 repro)"},
			{Generation: "Gen 3 (3V)", Years: "2015-2023", BaseSystem: "'Swing' / 'Bolero' (8 repro)", PremiumSystem: "Canton Sound System (12 repro)"},
		},
		"Kodiaq": {
			{Generation: "Gen 1", Years: "2016-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Canton Sound System (10 repro)"},
		},
		"Fabia": {
			{Generation: "Gen 3 (NJ)", Years: "2014-2021", BaseSystem: "Základný (4 repro)", PremiumSystem: "Škoda Surround (6 repro, Arkamys)"},
		},
	},

	"Volkswagen": {
		"Golf": {
			{Generation: "Gen 7 (Mk7)", Years: "2012-2019", BaseSystem: "'Composition' (4-8 repro)", PremiumSystem: "Dynaudio Excite (10 repro)"},
			{Generation: "Gen 8 (Mk8)", Years: "2020-súčasnosť", BaseSystem: "Základný (7 repro)", PremiumSystem: "Harman Kardon (10 repro)"},
		},
		"Passat": {
			{Generation: "B7", Years: "2010-2014", BaseSystem: "'RCD 310' (8 repro)", PremiumSystem: "Dynaudio Confidence (10 repro)"},
			{Generation: "B8", Years: "2014-2023", BaseSystem: "'Composition Media' (8 repro)", PremiumSystem: "Dynaudio Confidence (12 repro)"},
		},
		"Tiguan": {
			{Generation: "Gen 1 (Facelift)", Years: "2011-2016", BaseSystem: "'RCD 310' (8 repro)", PremiumSystem: "Dynaudio (8 repro)"},
			{Generation: "Gen 2", Years: "2016-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Dynaudio Excite (10 repro)"},
		},
		"Polo": {
			{Generation: "Gen 5 (6R/6C)", Years: "2009-2017", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
			{Generation: "Gen 6 (AW)", Years: "2017-súčasnosť", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "BeatsAudio (6 repro + subwoofer)"},
		},
		"Touareg": {
			{Generation: "Gen 2 (7P)", Years: "2010-2018", BaseSystem: "Základný (8 repro)", PremiumSystem: "Dynaudio Confidence (12 repro)"},
			{Generation: "Gen 3 (CR)", Years: "2018-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Dynaudio Consequence (14 repro)"},
		},
	},

	"Audi": {
		"A3": {
			{Generation: "8V", Years: "2012-2020", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen Sound System (14 repro)"},
			{Generation: "8Y", Years: "2020-súčasnosť", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen 3D (15 repro)"},
		},
		"A4": {
			{Generation: "B8 (Facelift)", Years: "2012-2015", BaseSystem: "Audi Sound System (10 repro, 180W)", PremiumSystem: "Bang & Olufsen Sound System (14 repro, 505W)"},
			{Generation: "B9", Years: "2016-súčasnosť", BaseSystem: "Audi Sound System (10 repro, 180W)", PremiumSystem: "Bang & Olufsen 3D Sound System (19 repro, 755W)"},
		},
		"A6": {
			{Generation: "C7 (4G)", Years: "2011-2018", BaseSystem: "Audi Sound System (10 repro, 180W)", PremiumSystem: "Bose Surround (14 repro) ALEBO Bang & Olufsen Advanced 3D (15 repro)"},
			{Generation: "C8 (4K)", Years: "2018-súčasnosť", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen Premium 3D (16 repro) ALEBO Bang & Olufsen Advanced 3D (19 repro)"},
		},
		"Q5": {
			{Generation: "Gen 1 (8R Facelift)", Years: "2012-2017", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen Sound System (14 repro)"},
			{Generation: "Gen 2 (FY)", Years: "2017-súčasnosť", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen 3D (19 repro)"},
		},
		"Q7": {
			{Generation: "Gen 1 (4L Facelift)", Years: "2009-2015", BaseSystem: "Základný (8 repro)", PremiumSystem: "Bose Surround (14 repro) ALEBO Bang & Olufsen Advanced (14 repro)"},
			{Generation: "Gen 2 (4M)", Years: "2015-súčasnosť", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bose 3D (19 repro) ALEBO Bang & Olufsen 3D Advanced (23 repro)"},
		},
	},

	"Seat": {
		"Leon": {
			{Generation: "Gen 3 (5F)", Years: "2012-2020", BaseSystem: "Základný (6-8 repro)", PremiumSystem: "Seat Sound System (10 repro)"},
			{Generation: "Gen 4 (KL)", Years: "2020-súčasnosť", BaseSystem: "Základný (7 repro)", PremiumSystem: "BeatsAudio (10 repro, 340W)"},
		},
		"Ibiza": {
			{Generation: "Gen 4 (6J Facelift)", Years: "2012-2017", BaseSystem: "Základný (4-6 repro)", PremiumSystem: "Žiaden značkový prémiový systém"},
			{Generation: "Gen 5 (6F)", Years: "2017-súčasnosť", BaseSystem: "Základný (6 repro)", PremiumSystem: "BeatsAudio (7 repro, 300W)"},
		},
		"Ateca": {
			{Generation: "Gen 1", Years: "2016-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Seat Sound System (10 repro)"},
		},
	},

	"Cupra": {
		"Formentor": {
			{Generation: "Gen 1", Years: "2020-súčasnosť", BaseSystem: "Základný (7 repro)", PremiumSystem: "BeatsAudio (10 repro, 340W)"},
		},
		"Born": {
			{Generation: "Gen 1", Years: "2021-súčasnosť", BaseSystem: "Základný (5 repro)", PremiumSystem: "BeatsAudio (10 repro)"},
		},
	},

	"Porsche": {
		"911": {
			{Generation: "991", Years: "2011-2018", BaseSystem: "Sound Package Plus (9 repro)", PremiumSystem: "Bose Surround (12 repro) ALEBO Burmester High-End (12 repro)"},
			{Generation: "992", Years: "2019-súčasnosť", BaseSystem: "Sound Package Plus (8 repro)", PremiumSystem: "Bose Surround (12 repro) ALEBO Burmester High-End (13 repro)"},
		},
		"Macan": {
			{Generation: "95B", Years: "2014-súčasnosť", BaseSystem: "Sound Package Plus (10 repro, 150W)", PremiumSystem: "Bose Surround (14 repro, 665W) ALEBO Burmester High-End (16 repro, 1000W+)"},
		},
		"Cayenne": {
			{Generation: "Gen 2 (92A)", Years: "2010-2017", BaseSystem: "Sound Package Plus (10 repro)", PremiumSystem: "Bose Surround (14 repro) ALEBO Burmester High-End (16 repro)"},
			{Generation: "Gen 3 (PO536)", Years: "2017-súčasnosť", BaseSystem: "Sound Package Plus (10 repro)", PremiumSystem: "Bose Surround (14 repro) ALEBO Burmester 3D High-End (21 repro)"},
		},
		"Panamera": {
			{Generation: "Gen 1 (970)", Years: "2009-2016", BaseSystem: "Sound Package Plus (10 repro)", PremiumSystem: "Bose Surround (14 repro) ALEBO Burmester High-End (16 repro)"},
			{Generation: "Gen 2 (971)", Years: "2016-súčasnosť", BaseSystem: "Hi-Fi (10 repro)", PremiumSystem: "Bose Surround (14 repro) ALEBO Burmester 3D High-End (21 repro)"},
		},
	},

	"Bentley": {
		"Continental GT": {
			{Generation: "Gen 3", Years: "2018-súčasnosť", BaseSystem: "Bentley Signature (10 repro, 650W)", PremiumSystem: "Bang & Olufsen for Bentley (16 repro, 1500W) ALEBO Naim for Bentley (18 repro, 2200W)"},
		},
	},
}
