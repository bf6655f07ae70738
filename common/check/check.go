package check

import "fmt"

// PanicIfNot panics on false (use it as a lightweight assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIfNotf panics on false with a formatted message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr panics if err is not nil.
// Use it for errors that can only be caused by a programming mistake.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
