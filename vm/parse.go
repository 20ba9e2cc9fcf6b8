// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"bytes"
	"io"
	"strconv"
	"text/scanner"
)

// ParseError is a single error found while parsing program text.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrParse is returned by Parse. It lists all the errors found in the source
// text.
type ErrParse []*ParseError

func (e ErrParse) Error() string {
	var b bytes.Buffer
	for i, pe := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pe.Error())
	}
	return b.String()
}

type parser struct {
	i    Image
	s    scanner.Scanner
	errs ErrParse
}

func (p *parser) error(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, &ParseError{pos, msg})
}

// cell parses a possibly signed integer. tok is the current token. It returns
// the last token read.
func (p *parser) cell(tok rune) (Cell, rune, bool) {
	var neg bool
	switch tok {
	case '-':
		neg = true
		fallthrough
	case '+':
		tok = p.s.Scan()
	}
	if tok != scanner.Int {
		p.error("expected integer, got " + strconv.Quote(p.s.TokenText()))
		return 0, tok, false
	}
	s := p.s.TokenText()
	if neg {
		s = "-" + s
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.error("invalid integer " + s)
		return 0, tok, false
	}
	return Cell(n), tok, true
}

func (p *parser) parse(name string, r io.Reader) {
	// state:
	// 0: need a cell
	// 1: need a comma or EOF
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.Mode = scanner.ScanInts
	p.s.Filename = name

	tok := p.s.Scan()
	if tok == scanner.EOF {
		p.error("empty program")
		return
	}
	for ; tok != scanner.EOF; tok = p.s.Scan() {
		switch state {
		case 0:
			var (
				v  Cell
				ok bool
			)
			v, tok, ok = p.cell(tok)
			if !ok {
				// resync on the next comma
				for tok != scanner.EOF && tok != ',' {
					tok = p.s.Scan()
				}
				if tok == scanner.EOF {
					return
				}
				continue
			}
			p.i = append(p.i, v)
			state = 1
		case 1:
			if tok != ',' {
				p.error("expected ',', got " + strconv.Quote(p.s.TokenText()))
				continue
			}
			state = 0
		}
	}
	if state == 0 {
		p.error("unexpected end of program after ','")
	}
}

// Parse reads program text from r and returns the corresponding memory image.
// The text is a list of comma separated decimal integers, white space is
// ignored. The name parameter is only used to report error positions.
//
// If the source text contains errors, the returned error will be of type
// ErrParse.
func Parse(name string, r io.Reader) (Image, error) {
	var p parser
	p.parse(name, r)
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.i, nil
}
