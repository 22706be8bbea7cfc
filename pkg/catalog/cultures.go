package catalog

// CultureEntry is one row of the culture bank. Min and Max are apparent
// attenuation percentages.
type CultureEntry struct {
	Key  string
	Name string
	Min  float64
	Max  float64
}

// Attenuation is the midpoint of the entry's range.
func (c CultureEntry) Attenuation() float64 {
	return (c.Min + c.Max) / 2
}

var cultures = []CultureEntry{
	{"AmericanAleUS05", "US-05, American Ale", 81, 81},
	{"AmericanAle1056", "WY1056, American Ale", 73, 77},
	{"CaliforniaAle", "WLP001, California Ale", 73, 80},
	{"EnglishAle", "WLP002, English Ale", 63, 70},
	{"IrishAle", "WLP004, Irish Ale", 69, 74},
	{"DryEnglishAle", "WLP007, Dry English Ale", 70, 80},
	{"CaliforniaAleV", "WLP051, California Ale V", 70, 75},
	{"FrenchAle", "WLP072, French Ale", 68, 75},
	{"CreamAleBlend", "WLP080, Cream Ale Blend", 75, 80},
	{"Hefeweizen", "WLP300, Hefeweizen", 72, 76},
	{"BelgianWit", "WLP400, Belgian Wit", 74, 78},
	{"MonasteryAle", "WLP500, Monastery Ale", 75, 80},
	{"AbbeyAle", "WLP530, Abbey Ale", 75, 80},
	{"BelgianAle", "WLP550, Belgian Ale", 78, 85},
	{"BelgianSaisonI", "WLP565, Belgian Saison I", 65, 75},
	{"BelgianSaisonII", "WLP566, Belgian Saison II", 78, 85},
	{"BelgianStyleSaison", "WLP568, Belgian Style Saison", 70, 80},
	{"BelgianGoldenAle", "WLP570, Belgian Golden Ale", 73, 78},
	{"BelgianSaisonIII", "WLP585, Belgian Saison III", 70, 74},
	{"TrappistHighGravity", "WY3787, Trappist Style High Gravity", 74, 78},
	{"FrenchSaisonWhiteLabs", "WLP590, French Saison", 73, 80},
	{"FrenchSaisonWyeast", "WY3711, French Saison", 77, 83},
	{"SanFranciscoLager", "WLP810, San Francisco Lager", 65, 70},
	{"OktoberfestLager", "WLP820, Oktoberfest/Märzen Lager", 65, 73},
	{"SacchromycesBruxellensisTrois", "WLP644, Sacchromyces bruxellensis Trois", 85, 100},
	{"BrettanomycesClaussenii", "WLP645, Brettanomyces claussenii", 85, 100},
	{"BrettanomycesBruxellensisTroisVrai", "WLP648, Brettanomyces bruxellensis Trois Vrai", 85, 100},
	{"BrettanomycesBruxellensis", "WLP650, Brettanomyces bruxellensis", 85, 100},
	{"BrettanomycesLambicus", "WLP653, Brettanomyces lambicus", 85, 100},
	{"SourMix1", "WLP655, Sour Mix 1", 85, 100},
	{"FlemishAleBlend", "WLP665, Flemish Ale Blend", 80, 100},
	{"AmericanFarmhouseBlend", "WLP670, American Farmhouse Blend", 75, 82},
	{"LactobacillusBrevis", "WLP672, Lactobacillus Brevis", 80, 80},
	{"LactobacillusDelbrueckii", "WLP677, Lactobacillus Delbrueckii", 75, 82},
	{"HouseSourMix", "House sour mix", 86, 86},
	{"BottleDregs", "Bottle dregs", 0, 100},
}
