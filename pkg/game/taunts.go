package game

import (
	"fmt"
	"math/rand/v2"
)

var taunts = []string{
	"noob",
	"nuh-uh",
	"what are they cooking",
	"trolling are we?",
	"nt",
	"stop",
	"?",
	"so bad",
	"imagine",
	"no",
	"wrong",
	"ぴえん",
	"あほ",
	"ちがうよ",
	"また?",
}

// tauntMessage picks a randomized failure message mentioning the user and
// the option they chose.
func tauntMessage(rng *rand.Rand, user, choice string) string {
	taunt := taunts[rng.IntN(len(taunts))]
	return fmt.Sprintf("%s @%s (%s)", taunt, user, choice)
}
