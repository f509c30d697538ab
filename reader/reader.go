package reader

import (
	"strconv"
	"strings"

	. "github.com/bshepherdson/mal/go/types"
)

type MalReader struct {
	tokens []string
	index  int
}

// Next and Peek step over comment tokens, so comments never reach the parser.
func (r *MalReader) Next() (string, bool) {
	t, ok := r.Peek()
	if !ok {
		return t, false
	}

	r.index++
	return t, true
}

func (r *MalReader) Peek() (string, bool) {
	for r.index < len(r.tokens) && r.tokens[r.index][0] == ';' {
		r.index++
	}
	if r.index >= len(r.tokens) {
		return "EOF", false
	}
	return r.tokens[r.index], true
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',', '(', ')', '[', ']', '{', '}', '\'', '"', '`', ';':
		return true
	}
	return false
}

// Tokenize splits input into raw tokens. It never fails: an unterminated
// string comes out as a token without its closing quote and is rejected when
// it is parsed.
func Tokenize(input string) []string {
	t := make([]string, 0, 16)
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch c {
		case ' ', '\t', '\n', '\r', '\f', '\v', ',':
			pos++
			continue // Whitespace and commas are skipped.

		case '~':
			if pos+1 < len(input) && input[pos+1] == '@' { // ~@ is a thing
				t = append(t, "~@")
				pos += 2
			} else {
				t = append(t, "~") // so is just ~
				pos++
			}

		case '[', ']', '{', '}', '(', ')', '\'', '`', '^', '@':
			t = append(t, string(c))
			pos++

		case '"': // Raw string literal, escapes left in place.
			end := pos + 1
		string_loop:
			for end < len(input) {
				switch input[end] {
				case '"':
					end++
					break string_loop
				case '\\':
					if end+1 >= len(input) || input[end+1] == '\n' {
						break string_loop
					}
					end += 2
				default:
					end++
				}
			}
			t = append(t, input[pos:end])
			pos = end

		case ';': // The rest of the line.
			end := strings.IndexByte(input[pos:], '\n')
			if end < 0 {
				end = len(input) - pos
			}
			t = append(t, input[pos:pos+end])
			pos += end

		default:
			// Keep going until we see something special.
			end := pos + 1
			for end < len(input) && !isDelimiter(input[end]) {
				end++
			}
			t = append(t, input[pos:end])
			pos = end
		}
	}
	return t
}

// ReadStr reads the first form in input. A nil Data with a nil error means
// the input held no form at all.
func ReadStr(input string) (Data, error) {
	r := &MalReader{Tokenize(input), 0}
	if _, ok := r.Peek(); !ok {
		return nil, nil
	}
	return ReadForm(r)
}

func ReadForm(r *MalReader) (Data, error) {
	t, ok := r.Peek()
	if !ok {
		return nil, Unbalancedf("expected form, got EOF")
	}

	switch t {
	case "'":
		return nextWrapped(r, "quote")
	case "`":
		return nextWrapped(r, "quasiquote")
	case "~":
		return nextWrapped(r, "unquote")
	case "~@":
		return nextWrapped(r, "splice-unquote")
	case "@":
		return nextWrapped(r, "deref")
	case "^":
		return readMeta(r)
	case "(":
		return readSeq(r, ")")
	case "[":
		return readSeq(r, "]")
	case "{":
		return readHashMap(r)
	case ")", "]", "}":
		return nil, Unbalancedf("unexpected '%s'", t)
	default:
		return readAtom(r)
	}
}

func nextWrapped(r *MalReader, wrapper string) (Data, error) {
	r.Next()
	next, err := ReadForm(r) // Read the next form.
	if err != nil {
		return nil, err
	}

	return &DList{[]Data{&DSymbol{wrapper}, next}}, nil
}

// ^meta target reads as (with-meta target meta).
func readMeta(r *MalReader) (Data, error) {
	r.Next()
	meta, err := ReadForm(r)
	if err != nil {
		return nil, err
	}
	target, err := ReadForm(r)
	if err != nil {
		return nil, err
	}

	return &DList{[]Data{&DSymbol{"with-meta"}, target, meta}}, nil
}

// readForms collects forms up to close and consumes it.
func readForms(r *MalReader, close string) ([]Data, error) {
	r.Next() // Skip the opener.
	ret := []Data{}
	for {
		t, ok := r.Peek()
		if !ok {
			return nil, Unbalancedf("expected '%s', got EOF", close)
		}
		if t == close {
			break
		}

		f, err := ReadForm(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}

	r.Next() // Skip over the closer.
	return ret, nil
}

func readSeq(r *MalReader, close string) (Data, error) {
	members, err := readForms(r, close)
	if err != nil {
		return nil, err
	}
	if close == "]" {
		return &DVector{members}, nil
	}
	return &DList{members}, nil
}

func readHashMap(r *MalReader) (Data, error) {
	forms, err := readForms(r, "}")
	if err != nil {
		return nil, err
	}
	if len(forms)%2 != 0 {
		return nil, Unbalancedf("map literal is missing a value")
	}

	entries := make([]Entry, 0, len(forms)/2)
	for i := 0; i < len(forms); i += 2 {
		entries = append(entries, Entry{forms[i], forms[i+1]})
	}
	return NewHashMap(entries)
}

func isInteger(t string) bool {
	if t[0] == '-' {
		t = t[1:]
	}
	if t == "" {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	return true
}

func readAtom(r *MalReader) (Data, error) {
	t, ok := r.Next()
	if !ok {
		return nil, Unbalancedf("expected atom, got EOF")
	}

	if isInteger(t) {
		// Out of range falls through to a symbol.
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return &DNumber{n}, nil
		}
	}

	switch {
	case t == "true":
		return True, nil
	case t == "false":
		return False, nil
	case t == "nil":
		return Nil, nil
	case t[0] == '"':
		return readString(t)
	case t[0] == ':':
		return &DKeyword{t[1:]}, nil
	}
	return &DSymbol{t}, nil
}

func readString(t string) (Data, error) {
	if len(t) < 2 || t[len(t)-1] != '"' {
		return nil, Unbalancedf("expected '\"', got EOF")
	}

	body := t[1 : len(t)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(body) {
			return nil, Unbalancedf("expected '\"', got EOF")
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		default:
			return nil, Unbalancedf("bad escape '\\%c'", body[i])
		}
	}

	return &DString{Str: b.String(), Display: t}, nil
}
