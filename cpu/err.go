package cpu

import (
	"github.com/ezrec/asm24/translate"
)

var f = translate.From

type ErrEncodingUnknown string

func (err ErrEncodingUnknown) Error() string {
	return f("'%v' is not an encoding (hex, binary, base64)", string(err))
}
