//go:build cgo

// Command capi exports the mylib helpers through the C ABI.
//
// Build a static archive (MYLIB_STATIC) or a shared library
// (MYLIB_EXPORTS) with:
//
//	go build -buildmode=c-archive -o libmylib.a ./capi
//	go build -buildmode=c-shared  -o libmylib.so ./capi
//
// Both modes emit a libmylib.h header declaring the functions below.
package main

/*
#include <stdlib.h>
*/
import "C"

import "github.com/thirukguru/mylib-demo/mylib"

// The version string lives for the whole process, like a string literal.
var cVersion = C.CString(mylib.Version())

//export mylib_add
func mylib_add(a, b C.int) C.int {
	return C.int(mylib.Add(int32(a), int32(b)))
}

//export mylib_multiply
func mylib_multiply(a, b C.int) C.int {
	return C.int(mylib.Multiply(int32(a), int32(b)))
}

//export mylib_get_version
func mylib_get_version() *C.char {
	return cVersion
}

func main() {}
