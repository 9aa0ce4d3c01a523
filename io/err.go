package io

import (
	"errors"

	"github.com/ezrec/asm24/translate"
)

var f = translate.From

var (
	// Emitter errors
	ErrObjectMissing = errors.New(f("no object to emit"))
)
