// Package classification provides the special-case detectors that settle a
// verdict before lexicon scoring runs: arithmetic checks, calendar facts and
// fixed phrases.
package classification

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/moodring/internal/model"
)

// ErrMissingVerdict is returned for rules without a verdict function.
var ErrMissingVerdict = errors.New("rule has no verdict function")

// Match carries what a rule's pattern found in the input.
type Match struct {
	Text   string   // the original input
	Lower  string   // the input lower-cased
	Groups []string // leftmost match followed by its capture groups
}

// VerdictFunc turns a pattern match into a final verdict. Returning nil
// declines and lets the next rule try.
type VerdictFunc func(m Match, now time.Time) *model.AnalysisResult

// Rule is a named pattern with the verdict it produces.
type Rule struct {
	Verdict     VerdictFunc
	Name        string
	Description string
	Pattern     string // case-insensitive unless it sets its own flags
	Category    model.Category
	Priority    int // higher priority rules are checked first
}

type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

// Detector evaluates rules in priority order; the first rule that produces
// a verdict wins. It holds no mutable state and is safe for concurrent use.
type Detector struct {
	rules []compiledRule
}

// NewDetector compiles rules and orders them by priority. Rules with equal
// priority keep their relative order.
func NewDetector(rules []Rule) (*Detector, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, r := range rules {
		if r.Verdict == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingVerdict, r.Name)
		}

		regexStr := r.Pattern
		if !strings.HasPrefix(regexStr, "(?") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}

		compiled = append(compiled, compiledRule{
			Rule:  r,
			regex: regex,
		})
	}

	slices.SortStableFunc(compiled, func(a, b compiledRule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	return &Detector{rules: compiled}, nil
}

// Detect returns the verdict of the first rule that fires, or nil when every
// rule declines.
func (d *Detector) Detect(text string, now time.Time) *model.AnalysisResult {
	lower := strings.ToLower(text)

	for _, r := range d.rules {
		groups := r.regex.FindStringSubmatch(text)
		if groups == nil {
			continue
		}

		result := r.Verdict(Match{Text: text, Lower: lower, Groups: groups}, now)
		if result == nil {
			continue
		}

		result.Rule = r.Name
		if result.Category == "" {
			result.Category = r.Category
		}
		return result
	}

	return nil
}

// Rules returns the rules in evaluation order.
func (d *Detector) Rules() []Rule {
	rules := make([]Rule, len(d.rules))
	for i, r := range d.rules {
		rules[i] = r.Rule
	}
	return rules
}

func verdict(sentiment model.Sentiment, score float64, info string) *model.AnalysisResult {
	return &model.AnalysisResult{
		Sentiment:   sentiment,
		Score:       score,
		ContextInfo: info,
	}
}
