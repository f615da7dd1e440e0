package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilan/diagnostic"
	"nilan/token"
)

func TestEvaluateSimpleArithmetic(t *testing.T) {
	result, diags := Evaluate("1 + 2 * 3", token.DefaultModeFlags(), nil)
	require.Empty(t, diags)
	assert.Equal(t, 7.0, result.Value)
}

func TestEvaluateRespectsParenthesesOverPrecedence(t *testing.T) {
	result, diags := Evaluate("(1 + 2) * 3", token.DefaultModeFlags(), nil)
	require.Empty(t, diags)
	assert.Equal(t, 9.0, result.Value)
}

func TestEvaluateFunctionAndConstant(t *testing.T) {
	result, diags := Evaluate("sqrt(PI * PI)", token.DefaultModeFlags(), nil)
	require.Empty(t, diags)
	assert.InDelta(t, 3.14159265, result.Value, 1e-6)
}

func TestEvaluateUnaryMinus(t *testing.T) {
	result, diags := Evaluate("-4 + 2", token.DefaultModeFlags(), nil)
	require.Empty(t, diags)
	assert.Equal(t, -2.0, result.Value)
}

func TestEvaluatePowerIsRightAssociative(t *testing.T) {
	result, diags := Evaluate("2 ^ 3 ^ 2", token.DefaultModeFlags(), nil)
	require.Empty(t, diags)
	assert.InDelta(t, 512.0, result.Value, 1e-9)
}

func TestEvaluateDivideByZeroHaltsAtEvaluator(t *testing.T) {
	_, diags := Evaluate("1 / 0", token.DefaultModeFlags(), nil)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.StageEvaluator, diags[0].Stage)
	assert.Equal(t, diagnostic.DivideByZero, diags[0].Code)
}

func TestEvaluateMalformedNumberHaltsAtLexer(t *testing.T) {
	_, diags := Evaluate("1.2.3 + 1", token.DefaultModeFlags(), nil)
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.StageLexer, diags[0].Stage)
	assert.Equal(t, diagnostic.NumberMultipleDecimalPoints, diags[0].Code)
	assert.EqualValues(t, 3, diags[0].Cursor)
}

func TestEvaluateUnbalancedParenthesesHaltsAtValidator(t *testing.T) {
	_, diags := Evaluate("(1 + 2", token.DefaultModeFlags(), nil)
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.StageValidator, diags[0].Stage)
}

func TestEvaluateBlankSourceHaltsAtTokenizer(t *testing.T) {
	_, diags := Evaluate("   ", token.DefaultModeFlags(), nil)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.StageTokenizer, diags[0].Stage)
	assert.Equal(t, diagnostic.NoInput, diags[0].Code)
}

func TestEvaluateAggregatesMultipleLexerErrors(t *testing.T) {
	_, diags := Evaluate("1.2.3 + 4.5.6", token.DefaultModeFlags(), nil)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, diagnostic.NumberMultipleDecimalPoints, d.Code)
	}
}

func TestEvaluateEqualsIsUnexpectedByDefault(t *testing.T) {
	_, diags := Evaluate("1 = 2", token.DefaultModeFlags(), nil)
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.StageValidator, diags[0].Stage)
	assert.Equal(t, diagnostic.UnexpectedToken, diags[0].Code)
}
