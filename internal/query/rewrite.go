package query

import (
	"go/scanner"
	"go/token"
)

// normalizeSource maps the advertised lowercase method spelling onto
// the exported one for the single name Go reserves: `.select(...)`
// becomes `.Select(...)`. The rewrite is token-driven, so the word
// inside string literals is left alone.
func normalizeSource(src string) string {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)

	buf := []byte(src)
	prev := token.ILLEGAL
	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SELECT && prev == token.PERIOD {
			buf[file.Offset(pos)] = 'S'
		}
		prev = tok
	}
	return string(buf)
}
