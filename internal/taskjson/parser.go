package taskjson

import "fmt"

// parser is a recursive-descent parser over the scanner's token stream.
// The grammar is deliberately minimal: a flat object of key/value pairs,
// where exactly one key ("tasks") may hold an array of flat objects.
// Nothing nests beyond that.
type parser struct {
	sc  *scanner
	tok token
}

func newParser(input string) (*parser, error) {
	p := &parser{sc: newScanner(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return fmt.Errorf("%w: expected %s, found %s at offset %d", ErrInvalidFormat, kind, p.tok.kind, p.tok.pos)
	}
	return p.advance()
}

// object parses a flat { "key": value, ... } into a key/value map.
// allowTasksArray permits the single "tasks" array the document grammar
// supports; when the array is seen its elements are returned separately.
func (p *parser) object(allowTasksArray bool) (map[string]string, []map[string]string, error) {
	if err := p.expect(tokLBrace); err != nil {
		return nil, nil, err
	}

	fields := make(map[string]string)
	var tasks []map[string]string

	for p.tok.kind != tokRBrace {
		if p.tok.kind != tokString {
			return nil, nil, fmt.Errorf("%w: expected key string, found %s at offset %d", ErrInvalidFormat, p.tok.kind, p.tok.pos)
		}
		key := p.tok.text
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
		if err := p.expect(tokColon); err != nil {
			return nil, nil, err
		}

		switch p.tok.kind {
		case tokString, tokBare:
			fields[key] = p.tok.text
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
		case tokLBracket:
			if !allowTasksArray || key != "tasks" {
				return nil, nil, fmt.Errorf("%w: unexpected array for key %q at offset %d", ErrInvalidFormat, key, p.tok.pos)
			}
			arr, err := p.taskArray()
			if err != nil {
				return nil, nil, err
			}
			tasks = arr
		case tokLBrace:
			return nil, nil, fmt.Errorf("%w: nested object for key %q at offset %d", ErrInvalidFormat, key, p.tok.pos)
		default:
			return nil, nil, fmt.Errorf("%w: expected value for key %q, found %s at offset %d", ErrInvalidFormat, key, p.tok.kind, p.tok.pos)
		}

		// Commas between pairs are consumed but not required, matching
		// the tolerance of the scan-based reader this replaces.
		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
		}
	}

	return fields, tasks, p.advance()
}

func (p *parser) taskArray() ([]map[string]string, error) {
	if err := p.expect(tokLBracket); err != nil {
		return nil, err
	}

	elems := []map[string]string{}
	for p.tok.kind != tokRBracket {
		if p.tok.kind != tokLBrace {
			return nil, fmt.Errorf("%w: expected task object, found %s at offset %d", ErrInvalidFormat, p.tok.kind, p.tok.pos)
		}
		fields, _, err := p.object(false)
		if err != nil {
			return nil, err
		}
		elems = append(elems, fields)

		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	return elems, p.advance()
}
