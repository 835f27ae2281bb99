// SPDX-License-Identifier: MIT

package economy

// Good is a tradeable product. Values are dense indices usable as array offsets.
type Good int

const (
	Log Good = iota
	Wood
	Meat
	Food

	NumGoods = int(Food) + 1
)

// Goods lists every Good in index order.
var Goods = [NumGoods]Good{Log, Wood, Meat, Food}

var goodNames = [NumGoods]string{"Log", "Wood", "Meat", "Food"}

func (g Good) String() string {
	if g < 0 || int(g) >= NumGoods {
		return "Good(?)"
	}

	return goodNames[g]
}

// Labor is an occupation; each Labor runs exactly one Industry.
type Labor int

const (
	Lumberjack Labor = iota
	Carpenter
	Fisher
	Hunter
	Cook

	NumLabors = int(Cook) + 1
)

// Labors lists every Labor in index order.
var Labors = [NumLabors]Labor{Lumberjack, Carpenter, Fisher, Hunter, Cook}

var laborNames = [NumLabors]string{"Lumberjack", "Carpenter", "Fisher", "Hunter", "Cook"}

func (l Labor) String() string {
	if l < 0 || int(l) >= NumLabors {
		return "Labor(?)"
	}

	return laborNames[l]
}

// Flow is an amount of one good per laborer per tick.
type Flow struct {
	Good   Good
	Amount float32
}

// Industry is the recipe a single laborer follows each tick.
type Industry struct {
	Inputs  []Flow
	Outputs []Flow
}

var industries = [NumLabors]Industry{
	Lumberjack: {Outputs: []Flow{{Log, 10}}},
	Carpenter:  {Inputs: []Flow{{Log, 10}}, Outputs: []Flow{{Wood, 10}}},
	Fisher:     {Inputs: []Flow{{Wood, 0.1}}, Outputs: []Flow{{Meat, 1}}},
	Hunter:     {Outputs: []Flow{{Meat, 1}}},
	Cook:       {Inputs: []Flow{{Wood, 0.2}, {Meat, 1}}, Outputs: []Flow{{Food, 1}}},
}

// Industry returns the recipe of l. The returned slices must not be modified.
func (l Labor) Industry() Industry { return industries[l] }
