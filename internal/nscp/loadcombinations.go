// Package nscp provides the NSCP 2015 strength design load combinations
// used to factor load cases before analysis.
package nscp

import (
	"fmt"
	"strings"
)

// Case identifies the load case a load belongs to.
type Case string

const (
	Dead       Case = "D"
	Live       Case = "L"
	Roof       Case = "Lr"
	Wind       Case = "W"
	Earthquake Case = "E"
	Rain       Case = "R"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// Lookup finds a combination by ID.
func Lookup(id string) (LoadCombination, bool) {
	for _, lc := range LoadCombinations {
		if lc.ID == id {
			return lc, true
		}
	}
	return LoadCombination{}, false
}

// ParseCase accepts a case name in any letter case ("d", "LR", "Lr").
func ParseCase(s string) (Case, error) {
	for _, c := range []Case{Dead, Live, Roof, Wind, Earthquake, Rain} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown load case %q (want D, L, Lr, W, E or R)", s)
}

// Factor returns the load factor the combination applies to case c. A load
// with no case is not factored.
func (lc LoadCombination) Factor(c Case) float64 {
	switch c {
	case "":
		return 1
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	default:
		return 0
	}
}
