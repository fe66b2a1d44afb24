package classification

import (
	"testing"
	"time"

	"github.com/Veraticus/moodring/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules_Order(t *testing.T) {
	d := NewDefaultDetector()

	var names []string
	for _, r := range d.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{RuleMath, RuleHardWork, RuleWeekday, RuleDate, RuleDay, RuleNationalDay}, names)
}

func TestMathRule(t *testing.T) {
	d := NewDefaultDetector()

	tests := []struct {
		name      string
		text      string
		sentiment model.Sentiment
		info      string
		score     float64
	}{
		{
			name:      "correct addition",
			text:      "5 + 3 = 8",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 5+3 = 8",
		},
		{
			name:      "incorrect addition",
			text:      "5 + 3 = 9",
			sentiment: model.SentimentNegative,
			score:     MathIncorrectScore,
			info:      "The mathematical statement is incorrect. 5+3 actually equals 8, not 9",
		},
		{
			name:      "embedded in a sentence",
			text:      "My kid says 12 / 4 = 3, right?",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 12/4 = 3",
		},
		{
			name:      "operator precedence",
			text:      "2 + 3 * 4 = 14",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 2+3*4 = 14",
		},
		{
			name:      "precedence mistake",
			text:      "2 + 3 * 4 = 20",
			sentiment: model.SentimentNegative,
			score:     MathIncorrectScore,
			info:      "The mathematical statement is incorrect. 2+3*4 actually equals 14, not 20",
		},
		{
			name:      "negative result",
			text:      "3 - 5 = -2",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 3-5 = -2",
		},
		{
			name:      "decimal within tolerance",
			text:      "0.1 + 0.2 = 0.3",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 0.1+0.2 = 0.3",
		},
		{
			name:      "fractional actual value",
			text:      "7 / 2 = 3",
			sentiment: model.SentimentNegative,
			score:     MathIncorrectScore,
			info:      "The mathematical statement is incorrect. 7/2 actually equals 3.5, not 3",
		},
		{
			name:      "worded plus equals",
			text:      "5 plus 3 equals 8",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 5+3 = 8",
		},
		{
			name:      "worded times is",
			text:      "6 TIMES 7 is 41",
			sentiment: model.SentimentNegative,
			score:     MathIncorrectScore,
			info:      "The mathematical statement is incorrect. 6*7 actually equals 42, not 41",
		},
		{
			name:      "worded divided by",
			text:      "10 divided by 4 is equal to 2.5",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 10/4 = 2.5",
		},
		{
			name:      "worded minus",
			text:      "9 minus 4 equals 5",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 9-4 = 5",
		},
		{
			name:      "negative first operand",
			text:      "-5 + 3 = -2",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: -5+3 = -2",
		},
		{
			name:      "negative first operand incorrect",
			text:      "-4 * 2 = 8",
			sentiment: model.SentimentNegative,
			score:     MathIncorrectScore,
			info:      "The mathematical statement is incorrect. -4*2 actually equals -8, not 8",
		},
		{
			name:      "negative operand after operator",
			text:      "2 * -3 = -6",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 2*-3 = -6",
		},
		{
			name:      "subtracting a negative",
			text:      "10 - -2 = 12",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 10--2 = 12",
		},
		{
			name:      "signed operand inside a sentence",
			text:      "I owe -3 + 5 = 2 dollars",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: -3+5 = 2",
		},
		{
			name:      "worded with negative operand",
			text:      "4 plus -6 equals -2",
			sentiment: model.SentimentPositive,
			score:     MathCorrectScore,
			info:      "The mathematical statement is correct: 4+-6 = -2",
		},
		{
			name:      "division by zero",
			text:      "5 / 0 = 1",
			sentiment: model.SentimentNeutral,
			score:     0,
			info:      "Could not evaluate the mathematical expression",
		},
		{
			name:      "chained equals",
			text:      "1 + 1 = 2 = 3",
			sentiment: model.SentimentNeutral,
			score:     0,
			info:      "Could not parse the mathematical statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(tt.text, monday)
			require.NotNil(t, result)
			assert.Equal(t, RuleMath, result.Rule)
			assert.Equal(t, model.CategoryMath, result.Category)
			assert.Equal(t, tt.sentiment, result.Sentiment)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
			assert.Equal(t, tt.info, result.ContextInfo)
		})
	}
}

func TestMathRule_NoEquation(t *testing.T) {
	d := NewDefaultDetector()

	for _, text := range []string{"I have 5 apples", "5 + 3", "what is 5 plus 3", "2024-05-13"} {
		t.Run(text, func(t *testing.T) {
			assert.Nil(t, d.Detect(text, monday))
		})
	}
}

func TestHardWorkRule(t *testing.T) {
	d := NewDefaultDetector()

	for _, text := range []string{"I worked hard today", "studied hard a lot", "It was hard alot"} {
		t.Run(text, func(t *testing.T) {
			result := d.Detect(text, monday)
			require.NotNil(t, result)
			assert.Equal(t, RuleHardWork, result.Rule)
			assert.Equal(t, model.SentimentNegative, result.Sentiment)
			assert.InDelta(t, HardWorkScore, result.Score, 1e-9)
			assert.Equal(t, model.CategoryEmotional, result.Category)
			assert.Equal(t, "Expression of difficulty or hard work", result.ContextInfo)
		})
	}

	assert.Nil(t, d.Detect("a hardworking team", monday))
}

func TestMathRule_WinsOverHardWork(t *testing.T) {
	result := NewDefaultDetector().Detect("I worked hard: 5 + 3 = 8", monday)
	require.NotNil(t, result)
	assert.Equal(t, RuleMath, result.Rule)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
}

func TestWeekdayRule(t *testing.T) {
	d := NewDefaultDetector()
	tuesday := monday.AddDate(0, 0, 1)

	result := d.Detect("Today is Monday", monday)
	require.NotNil(t, result)
	assert.Equal(t, RuleWeekday, result.Rule)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.Equal(t, "Correct statement about current day: today is Monday", result.ContextInfo)

	result = d.Detect("today is monday", tuesday)
	require.NotNil(t, result)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
	assert.InDelta(t, -0.5, result.Score, 1e-9)
	assert.Equal(t, "Incorrect statement about current day: today is Tuesday, not Monday", result.ContextInfo)
	assert.Equal(t, model.CategoryDate, result.Category)

	assert.Nil(t, d.Detect("today is mondayish", monday))
	assert.Nil(t, d.Detect("monday is today", monday))
}

func TestDateRule(t *testing.T) {
	d := NewDefaultDetector()

	tests := []struct {
		now       time.Time
		name      string
		text      string
		sentiment model.Sentiment
		info      string
		score     float64
	}{
		{
			name:      "matching day and month",
			text:      "Today is 13th May",
			now:       monday,
			sentiment: model.SentimentPositive,
			score:     DateScore,
			info:      "Correct statement about current date: today is the 13th of May",
		},
		{
			name:      "full month name without suffix",
			text:      "today's date: 13 may",
			now:       monday,
			sentiment: model.SentimentPositive,
			score:     DateScore,
		},
		{
			name:      "right day wrong month",
			text:      "today is 13th june",
			now:       monday,
			sentiment: model.SentimentNegative,
			score:     -DateScore,
			info:      "Incorrect statement about current date: today is the 13th of May, not the 13th of June",
		},
		{
			name:      "wrong day",
			text:      "today is the 3rd of May",
			now:       monday,
			sentiment: model.SentimentNegative,
			score:     -DateScore,
			info:      "Incorrect statement about current date: today is the 13th of May, not the 3rd of May",
		},
		{
			name:      "ordinal of current day",
			text:      "today is 22 sept",
			now:       time.Date(2024, time.September, 22, 0, 0, 0, 0, time.UTC),
			sentiment: model.SentimentPositive,
			score:     DateScore,
			info:      "Correct statement about current date: today is the 22nd of September",
		},
		{
			name:      "eleventh takes th",
			text:      "today is 1 jan",
			now:       time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
			sentiment: model.SentimentNegative,
			score:     -DateScore,
			info:      "Incorrect statement about current date: today is the 11th of January, not the 1st of January",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(tt.text, tt.now)
			require.NotNil(t, result)
			assert.Equal(t, RuleDate, result.Rule)
			assert.Equal(t, tt.sentiment, result.Sentiment)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
			if tt.info != "" {
				assert.Equal(t, tt.info, result.ContextInfo)
			}
		})
	}
}

func TestDateRule_RequiresToday(t *testing.T) {
	assert.Nil(t, NewDefaultDetector().Detect("My birthday is 3rd May", monday))
}

func TestDayRule(t *testing.T) {
	d := NewDefaultDetector()

	result := d.Detect("today is the 13th", monday)
	require.NotNil(t, result)
	assert.Equal(t, RuleDay, result.Rule)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.Equal(t, "Correct statement about current date: today is the 13th", result.ContextInfo)

	result = d.Detect("I think today is 21st", monday)
	require.NotNil(t, result)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
	assert.InDelta(t, -DateScore, result.Score, 1e-9)
	assert.Equal(t, "Incorrect statement about current date: today is the 13th, not the 21st", result.ContextInfo)
}

func TestNationalDayRule(t *testing.T) {
	d := NewDefaultDetector()

	result := d.Detect("15th August is Independence Day", monday)
	require.NotNil(t, result)
	assert.Equal(t, RuleNationalDay, result.Rule)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.InDelta(t, NationalDayScore, result.Score, 1e-9)
	assert.Equal(t, "Reference to national day", result.ContextInfo)
	assert.Equal(t, model.CategoryDate, result.Category)

	assert.Nil(t, d.Detect("15th August is a holiday", monday))
}

func TestNationalDayRule_DateCheckTakesPriority(t *testing.T) {
	result := NewDefaultDetector().Detect("today is 15th august, independence day", monday)
	require.NotNil(t, result)
	assert.Equal(t, RuleDate, result.Rule)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
}
