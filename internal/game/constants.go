package game

// Bunker is an inclusive range of years that traps non-wedge clubs
type Bunker struct {
	Name string
	From int
	To   int
}

// Contains reports whether year lies inside the bunker
func (b Bunker) Contains(year int) bool {
	return b.From <= year && year <= b.To
}

// Bunkers are the fixed hazards on every hole
var Bunkers = []Bunker{
	{Name: "Black Death", From: 1347, To: 1351},
	{Name: "First World War", From: 1914, To: 1918},
	{Name: "Second World War", From: 1939, To: 1945},
}

// StartYear is where every round tees off
const StartYear = 0

// BunkerAt returns the bunker containing year, if any
func BunkerAt(year int) (Bunker, bool) {
	for _, b := range Bunkers {
		if b.Contains(year) {
			return b, true
		}
	}
	return Bunker{}, false
}
