package classification

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/moodring/internal/arith"
	"github.com/Veraticus/moodring/internal/model"
)

// Verdict scores for the default rule table.
const (
	MathCorrectScore   = 0.9
	MathIncorrectScore = -0.9
	HardWorkScore      = -0.6
	WeekdayScore       = 0.5
	DateScore          = 0.6
	NationalDayScore   = 0.8

	// MathTolerance is the absolute difference under which both sides of an
	// equation are considered equal.
	MathTolerance = 1e-4
)

// Rule names of the default table.
const (
	RuleMath        = "math-equation"
	RuleHardWork    = "hard-work"
	RuleWeekday     = "weekday"
	RuleDate        = "calendar-date"
	RuleDay         = "calendar-day"
	RuleNationalDay = "independence-day"
)

const (
	number        = `\d+(?:\.\d+)?`
	signedNumber  = `-?` + number
	wordOperators = `plus|minus|times|multiplied\s+by|divided\s+by|over`
	wordEquals    = `equals|is\s+equal\s+to|is`
	monthNames    = `january|february|march|april|may|june|july|august|september|october|november|december|` +
		`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

	// Every operand may carry a sign so "-5 + 3" and "2 * -3" keep it
	// through stripping.
	mathPattern = signedNumber + `(?:\s*[-+*/]\s*` + signedNumber + `)+(?:\s*=\s*` + signedNumber + `)+` +
		`|` + signedNumber + `(?:\s*(?:` + wordOperators + `)\s*` + signedNumber + `)+\s*(?:` + wordEquals + `)\s*` + signedNumber
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Worded operators are rewritten before stripping. Longer phrases come first
// so "is equal to" is not consumed as "is".
var operatorWords = strings.NewReplacer(
	"multiplied by", "*",
	"divided by", "/",
	"is equal to", "=",
	"equals", "=",
	"plus", "+",
	"minus", "-",
	"times", "*",
	"over", "/",
	"is", "=",
)

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        RuleMath,
			Description: "Verifies arithmetic equalities such as 5 + 3 = 8",
			Pattern:     mathPattern,
			Category:    model.CategoryMath,
			Priority:    100,
			Verdict:     mathVerdict,
		},
		{
			Name:        RuleHardWork,
			Description: "Expressions of difficulty or hard work",
			Pattern:     `\bworked\s+hard\b|\bhard\s+a\s*lot\b`,
			Category:    model.CategoryEmotional,
			Priority:    90,
			Verdict: func(_ Match, _ time.Time) *model.AnalysisResult {
				return verdict(model.SentimentNegative, HardWorkScore, "Expression of difficulty or hard work")
			},
		},
		{
			Name:        RuleWeekday,
			Description: `Checks "today is <weekday>" against the current weekday`,
			Pattern:     `\btoday\s+is\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
			Category:    model.CategoryDate,
			Priority:    80,
			Verdict:     weekdayVerdict,
		},
		{
			Name:        RuleDate,
			Description: `Checks "today is <day> <month>" against the current date`,
			Pattern:     `\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthNames + `)\b`,
			Category:    model.CategoryDate,
			Priority:    70,
			Verdict:     dateVerdict,
		},
		{
			Name:        RuleDay,
			Description: `Checks "today is the <day>" against the current day of month`,
			Pattern:     `\btoday\s+is\s+(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)\b`,
			Category:    model.CategoryDate,
			Priority:    65,
			Verdict:     dayVerdict,
		},
		{
			Name:        RuleNationalDay,
			Description: "15th August referenced as independence day",
			Pattern:     `\b15th\s+august\b`,
			Category:    model.CategoryDate,
			Priority:    60,
			Verdict: func(m Match, _ time.Time) *model.AnalysisResult {
				if !strings.Contains(m.Lower, "independence day") {
					return nil
				}
				return verdict(model.SentimentPositive, NationalDayScore, "Reference to national day")
			},
		},
	}
}

// NewDefaultDetector builds a detector over DefaultRules.
func NewDefaultDetector() *Detector {
	d, err := NewDetector(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("default rules are invalid: %v", err))
	}
	return d
}

func mathVerdict(m Match, _ time.Time) *model.AnalysisResult {
	equation := strings.Join(strings.Fields(strings.ToLower(m.Groups[0])), " ")
	equation = operatorWords.Replace(equation)
	equation = stripNonArithmetic(equation)

	parts := strings.Split(equation, "=")
	if len(parts) != 2 {
		return verdict(model.SentimentNeutral, 0, "Could not parse the mathematical statement")
	}

	leftSide, rightSide := parts[0], parts[1]
	expected, err := strconv.ParseFloat(rightSide, 64)
	if err != nil {
		return verdict(model.SentimentNeutral, 0, "Could not parse the mathematical statement")
	}

	actual, err := arith.Eval(leftSide)
	if err != nil {
		return verdict(model.SentimentNeutral, 0, "Could not evaluate the mathematical expression")
	}

	if math.Abs(actual-expected) < MathTolerance {
		return verdict(model.SentimentPositive, MathCorrectScore,
			fmt.Sprintf("The mathematical statement is correct: %s = %s", leftSide, formatNumber(expected)))
	}
	return verdict(model.SentimentNegative, MathIncorrectScore,
		fmt.Sprintf("The mathematical statement is incorrect. %s actually equals %s, not %s",
			leftSide, formatNumber(actual), formatNumber(expected)))
}

func stripNonArithmetic(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || strings.ContainsRune("+-*/=.", r) {
			return r
		}
		return -1
	}, s)
}

// formatNumber prints v without trailing zeros, rounding away float noise
// such as 0.30000000000000004.
func formatNumber(v float64) string {
	rounded := math.Round(v*1e9) / 1e9
	if rounded == 0 {
		rounded = 0 // normalize -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func weekdayVerdict(m Match, now time.Time) *model.AnalysisResult {
	claimed := strings.ToLower(m.Groups[1])
	actual := now.Weekday().String()

	if claimed == strings.ToLower(actual) {
		return verdict(model.SentimentPositive, WeekdayScore,
			"Correct statement about current day: today is "+actual)
	}
	return verdict(model.SentimentNegative, -WeekdayScore,
		fmt.Sprintf("Incorrect statement about current day: today is %s, not %s", actual, titleCase(claimed)))
}

func mentionsToday(lower string) bool {
	return strings.Contains(lower, "today is") ||
		strings.Contains(lower, "today's") ||
		strings.Contains(lower, "today’s")
}

func dateVerdict(m Match, now time.Time) *model.AnalysisResult {
	if !mentionsToday(m.Lower) {
		return nil
	}

	day, err := strconv.Atoi(m.Groups[1])
	if err != nil {
		return nil
	}
	month := monthIndex[strings.ToLower(m.Groups[2])]

	actual := fmt.Sprintf("the %s of %s", Ordinal(now.Day()), now.Month())
	if day == now.Day() && month == now.Month() {
		return verdict(model.SentimentPositive, DateScore,
			"Correct statement about current date: today is "+actual)
	}
	return verdict(model.SentimentNegative, -DateScore,
		fmt.Sprintf("Incorrect statement about current date: today is %s, not the %s of %s",
			actual, Ordinal(day), month))
}

func dayVerdict(m Match, now time.Time) *model.AnalysisResult {
	day, err := strconv.Atoi(m.Groups[1])
	if err != nil {
		return nil
	}

	actual := "the " + Ordinal(now.Day())
	if day == now.Day() {
		return verdict(model.SentimentPositive, DateScore,
			"Correct statement about current date: today is "+actual)
	}
	return verdict(model.SentimentNegative, -DateScore,
		fmt.Sprintf("Incorrect statement about current date: today is %s, not the %s", actual, Ordinal(day)))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
