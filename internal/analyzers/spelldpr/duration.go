package spelldpr

import (
	"regexp"
	"strconv"
	"strings"
)

const maxSustainedRounds = 100

var (
	oneRoundPattern = regexp.MustCompile(`\b1 round\b`)
	minutesPattern  = regexp.MustCompile(`(\d+)\s*minute`)
	roundsPattern   = regexp.MustCompile(`(\d+)\s*round`)
)

// EstimateDuration converts duration text into combat rounds. Minutes
// count as ten rounds each, capped at 100. A concentration duration with
// no number is taken as a one minute fight.
func EstimateDuration(duration string) int {
	d := strings.ToLower(duration)

	switch {
	case d == "":
		return 1
	case strings.Contains(d, "instantaneous"), oneRoundPattern.MatchString(d):
		return 1
	}

	if m := minutesPattern.FindStringSubmatch(d); m != nil {
		n, _ := strconv.Atoi(m[1])
		return min(n*10, maxSustainedRounds)
	}
	if m := roundsPattern.FindStringSubmatch(d); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if strings.Contains(d, "concentration") {
		return 10
	}
	return 1
}
