package dice

type keepKey struct {
	count, sides, kept int
	mode               KeepMode
}

// Exact expectations for the keep rules that show up constantly in play.
// Anything else goes through the order statistic approximation.
var exactKeepAverages = map[keepKey]float64{
	{count: 4, sides: 6, kept: 3, mode: KeepHighest}:  12.24,
	{count: 2, sides: 20, kept: 1, mode: KeepHighest}: 13.825,
	{count: 2, sides: 20, kept: 1, mode: KeepLowest}:  7.175,
}

// Average is the expected value of the expression
func (e *Expression) Average() float64 {
	if e == nil {
		return 0
	}

	total := float64(e.Modifier)
	for _, t := range e.Terms {
		total += t.Average()
	}
	return total
}

// Average is the expected value of the term alone
func (t Term) Average() float64 {
	if t.Keep == nil {
		return float64(t.Count) * float64(t.Sides+1) / 2
	}
	return keepAverage(t.Count, t.Sides, t.Keep)
}

func keepAverage(n, s int, keep *Keep) float64 {
	if v, ok := exactKeepAverages[keepKey{count: n, sides: s, kept: keep.Count, mode: keep.Mode}]; ok {
		return v
	}

	sum := 0.0
	for i := 0; i < keep.Count; i++ {
		rank := i + 1
		if keep.Mode == KeepHighest {
			rank = n - i
		}
		sum += float64(s+1) * float64(rank) / float64(n+1)
	}
	return sum
}

// Minimum is the lowest possible total; dropped dice do not count
func (e *Expression) Minimum() int {
	if e == nil {
		return 0
	}

	total := e.Modifier
	for _, t := range e.Terms {
		total += t.Kept()
	}
	return total
}

// Maximum is the highest possible total; dropped dice do not count
func (e *Expression) Maximum() int {
	if e == nil {
		return 0
	}

	total := e.Modifier
	for _, t := range e.Terms {
		total += t.Kept() * t.Sides
	}
	return total
}

// Summary describes an expression given as text
type Summary struct {
	Valid    bool
	Original string
	Average  float64
	Minimum  int
	Maximum  int
	Terms    []Term
	Modifier int
}

// Summarize parses text and reports its statistics. Invalid text yields
// Valid false rather than an error.
func Summarize(text string) Summary {
	expr, err := Parse(text)
	if err != nil {
		return Summary{Original: text}
	}

	return Summary{
		Valid:    true,
		Original: text,
		Average:  expr.Average(),
		Minimum:  expr.Minimum(),
		Maximum:  expr.Maximum(),
		Terms:    expr.Terms,
		Modifier: expr.Modifier,
	}
}
