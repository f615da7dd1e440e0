package token

import (
	"strings"
	"testing"
)

func TestConstantsAndFunctionsAreInverses(t *testing.T) {
	for name, id := range Constants {
		if ConstantNames[id] != name {
			t.Errorf("ConstantNames[%v] = %q, want %q", id, ConstantNames[id], name)
		}
	}
	for name, id := range Functions {
		if FunctionNames[id] != name {
			t.Errorf("FunctionNames[%v] = %q, want %q", id, FunctionNames[id], name)
		}
	}
}

func TestConstantValuesCoversEveryConstant(t *testing.T) {
	for name, id := range Constants {
		if _, ok := ConstantValues[id]; !ok {
			t.Errorf("ConstantValues missing an entry for %s", name)
		}
	}
}

func TestLiteralBytesMatchesRecognisedSymbols(t *testing.T) {
	want := "+-*/^(),="
	for _, b := range []byte(want) {
		if !LiteralBytes[b] {
			t.Errorf("LiteralBytes[%q] = false, want true", b)
		}
	}
	if len(LiteralBytes) != len(want) {
		t.Errorf("LiteralBytes has %d entries, want %d", len(LiteralBytes), len(want))
	}
}

func TestTokenStringIncludesCursor(t *testing.T) {
	tok := NewNumber(3.5, 7)
	got := tok.String()
	if got == "" {
		t.Fatal("String() returned empty string")
	}
	if !strings.Contains(got, "@7") {
		t.Errorf("String() = %q, want it to include cursor @7", got)
	}
}

func TestDefaultModeFlagsOnlyEnablesExpressionEvaluation(t *testing.T) {
	mode := DefaultModeFlags()
	if !mode.ExpressionEvaluationAllowed {
		t.Error("ExpressionEvaluationAllowed should default to true")
	}
	if mode.CommentsAllowed || mode.NewlineContinuationsAllowed || mode.VariableDefinitionsAllowed || mode.FunctionDefinitionsAllowed {
		t.Error("every optional extension should default to false")
	}
}
