package asm

import (
	"errors"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm24/cpu"
)

// EXPR_STEP_LIMIT bounds the work of a single $(...) evaluation.
const EXPR_STEP_LIMIT = 10000

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_STEP_LIMIT)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range cpu.Constants {
		pred[key] = starlark.MakeInt(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || !cpu.InRange(int(st_int64)) {
		err = ErrValueRange("$(" + expr + ")")
		return
	}

	value = int(st_int64)
	return
}

// evalNumber evaluates a signed decimal integer or a $(...) expression,
// and checks that it fits a word's content field.
func evalNumber(word string) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return parenEval(word[2 : len(word)-1])
	}

	v64, err := strconv.ParseInt(word, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = ErrValueRange(word)
		return
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	if !cpu.InRange(int(v64)) {
		err = ErrValueRange(word)
		return
	}

	value = int(v64)
	return
}

// numberCategory classifies an evalNumber error.
func numberCategory(err error) Category {
	var re ErrValueRange
	if errors.As(err, &re) {
		return CATEGORY_RANGE
	}
	return CATEGORY_SYNTAX
}
