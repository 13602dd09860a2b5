// Package match wraps the regular-expression engines the koans are evaluated
// with behind one small interface.
//
// The harness never evaluates patterns itself. It asks an Engine to compile a
// pattern and then asks the compiled Pattern whether a subject matches:
//
//	eng, err := match.Lookup("go")
//	if err != nil {
//	    return err
//	}
//	ok, err := match.Matches(eng, "3.14159", `^\d+[.]\d+$`)
//
// # Engines
//
//   - go: the standard library regexp package (RE2 syntax). Default.
//   - re2: github.com/wasilibs/go-re2, the C++ RE2 library compiled to wasm.
//   - ecmascript: github.com/dlclark/regexp2 in ECMAScript mode, closest to
//     the JavaScript engine the koans were first written against.
//
// All three treat ^ and $ as start and end of input, exclude newline from .,
// and read {,m} as literal text rather than a quantifier. They differ on the
// other line terminators and on \s:
//
//	                 go    re2   ecmascript
//	"\r" =~ ^.*$     yes   yes   no
//	"\u2028" =~ ^.*$ yes   yes   yes
//	"\v" in \s       no    no    yes
//
// Only ecmascript stops . at \r, and only its \s includes \v. No engine
// stops . at U+2028. The built-in koans avoid these characters, so they pass
// on every engine.
//
// # Errors
//
// A pattern an engine cannot parse produces a *PatternSyntaxError. Any other
// error returned by Matches is a failure of the engine itself.
package match
