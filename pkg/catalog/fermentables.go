package catalog

// FermentableEntry is one row of the fermentables table.
type FermentableEntry struct {
	Key  string
	Name string
	// PPG is gravity points per pound per gallon at full conversion.
	PPG int
	// Grain entries are mashed and absorb water.
	Grain bool
	// FullyFermentable entries ferment out completely regardless of culture.
	FullyFermentable bool
}

func grain(key, name string, ppg int) FermentableEntry {
	return FermentableEntry{Key: key, Name: name, PPG: ppg, Grain: true}
}

func adjunct(key, name string, ppg int) FermentableEntry {
	return FermentableEntry{Key: key, Name: name, PPG: ppg}
}

func sugar(key, name string, ppg int) FermentableEntry {
	return FermentableEntry{Key: key, Name: name, PPG: ppg, FullyFermentable: true}
}

// Sources: Home Brewer's Companion; Beersmith grain list where noted.
var fermentables = []FermentableEntry{
	grain("AcidMalt", "Acid malt", 27), // Germany, Beersmith
	grain("AmericanTwoRow", "American 2-row", 37),
	grain("AmericanSixRow", "American 6-row", 35),
	grain("AmericanPaleAle", "American pale ale", 36),
	grain("BelgianPaleAle", "Belgian pale ale", 37),
	grain("BelgianPilsener", "Belgian pilsener", 37),
	adjunct("DriedMaltExtract", "Dried malt extract", 44),
	grain("EnglishTwoRow", "English 2-row", 38),
	grain("EnglishMild", "English mild", 37),
	grain("MarisOtter", "Maris Otter", 38),
	grain("GoldenPromise", "Golden Promise", 38),
	grain("WheatMalt", "Wheat malt", 38),
	grain("AmericanRyeMalt", "American rye malt", 36),
	grain("GermanRyeMalt", "German rye malt", 38),
	grain("GermanPilsner", "German pilsner", 37),
	grain("EnglishRyeMalt", "English rye malt", 40),
	grain("EnglishOatMalt", "English oat malt", 35),
	grain("AmericanVienna", "American Vienna", 36),
	grain("GermanVienna", "German Vienna", 37),
	grain("AmericanCarapils", "American Carapils", 34), // dextrine
	grain("BelgianCarapils", "Belgian Carapils", 36),
	grain("AmericanMunich", "American Munich", 34),
	grain("GermanMunich", "German Munich", 37),
	grain("GermanMunichII", "German Munich II", 36),
	grain("BelgianMunich", "Belgian Munich", 37),
	grain("Caramunich", "Caramunich", 33),
	grain("AmericanCaramel10", "American caramel 10", 35),
	grain("AmericanCaramel20", "American caramel 20", 35),
	grain("AmericanCaramel40", "American caramel 40", 35),
	grain("AmericanCaramel60", "American caramel 60", 34),
	grain("AmericanCaramel120", "American caramel 120", 33),
	grain("EnglishCrystal20_30", "English crystal 20-30", 36),
	grain("EnglishCrystal60_70", "English crystal 60-70", 34),
	grain("EnglishCaramalt", "English Caramalt", 36),
	grain("BelgianCrystal", "Belgian crystal", 36),
	grain("AmericanVictory", "American Victory", 33),
	grain("BelgianBiscuit", "Belgian biscuit", 36),
	grain("BelgianAromatic", "Belgian aromatic", 36),
	grain("EnglishBrown", "English brown", 33),
	grain("EnglishAmber", "English amber", 33),
	grain("BelgianSpecialB", "Belgian Special B", 35),
	grain("AmericanChocolate", "American chocolate", 28),
	grain("EnglishPaleChocolate", "English pale chocolate", 34),
	grain("EnglishChocolate", "English chocolate", 34),
	grain("Carahell", "Carahell", 35), // guess
	grain("Black", "Black", 25),
	grain("RoastedBarley", "Roasted barley", 18),
	grain("BarleyRaw", "Barley, raw", 32), // 30 to 34
	grain("BarleyFlaked", "Barley, flaked", 32),
	grain("CornFlaked", "Corn, flaked", 39),
	grain("CornGrits", "Corn grits", 37),
	grain("MilletRaw", "Millet, raw", 37),
	grain("SorghumRaw", "Sorghum, raw", 37),
	grain("OatsRaw", "Oats, raw", 33),
	grain("OatsFlaked", "Oats, flaked", 33),
	grain("RiceRaw", "Rice, raw", 38),
	grain("RiceFlaked", "Rice, flaked", 38),
	grain("RyeRaw", "Rye, raw", 36),
	grain("RyeFlaked", "Rye, flaked", 36),
	grain("WheatFlaked", "Wheat, flaked", 33),
	grain("WheatRaw", "Wheat, raw", 37),
	grain("WheatTorrified", "Wheat, torrified", 35),

	adjunct("AgaveSyrup", "Agave syrup", 34),
	sugar("BelgianCandiSugar", "Belgian candi sugar", 46),
	sugar("BelgianCandiSyrup", "Belgian candi syrup", 36),
	sugar("CaneSugar", "Cane sugar", 46),
	sugar("TableSugar", "Table sugar", 46),
	sugar("TurbinadoSugar", "Turbinado sugar", 46),
	sugar("LightBrownSugar", "Light brown sugar", 46),
	sugar("DarkBrownSugar", "Dark brown sugar", 46),
	sugar("CornSugarDextrose", "Corn sugar (dextrose)", 46),
	adjunct("Lactose", "Lactose", 35),
	sugar("Honey", "Honey", 32), // 30 to 35
	sugar("MapleSap", "Maple sap", 9),
	sugar("MapleSyrup", "Maple syrup", 30), // variable
	sugar("Molasses", "Molasses", 36),
	sugar("Rapadura", "Rapadura", 40),
	sugar("RiceExtract", "Rice extract", 34),
	sugar("WhiteSorghumSyrup", "White sorghum syrup", 38),

	adjunct("PumpkinPuree", "Pumpkin puree", 2),
}
