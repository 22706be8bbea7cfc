// Package recipe reads and writes recipe documents: YAML files with
// tagged ingredients and timings and an optional brew log of gravity
// readings.
//
//	name: Cascade Pale
//	volume: 5.5
//	parameters:
//	  efficiency: 0.72
//	ingredients:
//	  - !Grain {ppg: AmericanTwoRow, weight: 10}
//	  - !Hop {name: Cascade, alpha: 7.0, weight: 1.0, timing: !Boil 60}
//	  - !Culture {culture: AmericanAleUS05}
//	log:
//	  - !Hydrometer {date: 2024-03-02, gravity: 1.046, T: 72, note: OG}
//
// Fermentable tags take either a catalog key or an integer PPG as ppg;
// the latter needs a name.
package recipe
