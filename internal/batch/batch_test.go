package batch

import (
	"testing"

	"github.com/oisee/fixedint/pkg/fixedint"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	out, err := evaluate("256 u add 18446744073709551615 1")
	require.NoError(t, err)
	require.Equal(t, "18446744073709551616", out)
}

func TestEvaluateSignedDiv(t *testing.T) {
	out, err := evaluate("128 i div -7 2")
	require.NoError(t, err)
	require.Equal(t, "-3", out)
}

func TestEvaluateDivideByZeroReportsError(t *testing.T) {
	_, err := evaluate("128 u div 10 0")
	require.ErrorIs(t, err, fixedint.ErrDivideByZero)
}

func TestEvaluateGcdLcm(t *testing.T) {
	out, err := evaluate("128 u gcd 48 18")
	require.NoError(t, err)
	require.Equal(t, "6", out)

	out, err = evaluate("128 u lcm 4 6")
	require.NoError(t, err)
	require.Equal(t, "12", out)
}

func TestEvaluateUnknownOperation(t *testing.T) {
	_, err := evaluate("128 u frobnicate 1 2")
	require.Error(t, err)
}

func TestEvaluateUnsupportedWidth(t *testing.T) {
	_, err := evaluate("64 u add 1 2")
	require.Error(t, err)
}

func TestEvaluateMalformedExpression(t *testing.T) {
	_, err := evaluate("128 u add 1")
	require.Error(t, err)
}

func TestWorkerPoolRunCollectsAllRecords(t *testing.T) {
	tasks := []Task{
		{Line: 1, Expr: "128 u add 1 2"},
		{Line: 2, Expr: "128 u mul 3 4"},
		{Line: 3, Expr: "128 u div 1 0"},
	}
	wp := NewWorkerPool(2)
	wp.Run(tasks, false)

	require.Equal(t, 3, wp.Results.Len())
	require.Equal(t, 1, wp.Results.Failed())

	recs := wp.Results.Records()
	require.Equal(t, "3", recs[0].Output)
	require.Equal(t, "12", recs[1].Output)
	require.NotEmpty(t, recs[2].Err)
}
