package engine

// kwPrefix marks keyword arguments after preprocessing. A :keyword token
// becomes the string literal "__kw_keyword", which avoids registering
// keyword symbols as globals.
const kwPrefix = "__kw_"

// preprocessSource rewrites emboss Lisp source into a form zygomys
// accepts:
//
//   - :keyword tokens become "__kw_keyword" string literals (:= stays).
//   - Hyphens inside identifiers become underscores, since zygomys reads
//     them as subtraction (nut-trap -> nut_trap).
//   - Traditional ; line comments become zygomys // comments.
//
// String literal contents (double-quoted and backtick-quoted) pass
// through untouched.
func preprocessSource(source string) string {
	p := preprocessor{src: []byte(source)}
	p.out = make([]byte, 0, len(source)+len(source)/4)
	for p.i < len(p.src) {
		switch {
		case p.cur() == '"':
			p.copyString('"', true)
		case p.cur() == '`':
			p.copyString('`', false)
		case p.cur() == ';':
			p.convertComment()
		case p.cur() == ':':
			p.convertKeyword()
		case p.cur() == '-':
			p.convertHyphen()
		default:
			p.emit(p.cur())
			p.i++
		}
	}
	return string(p.out)
}

type preprocessor struct {
	src []byte
	out []byte
	i   int
}

func (p *preprocessor) cur() byte { return p.src[p.i] }

func (p *preprocessor) emit(bs ...byte) { p.out = append(p.out, bs...) }

// copyString copies a quoted literal verbatim, honoring backslash
// escapes when escapes is true.
func (p *preprocessor) copyString(quote byte, escapes bool) {
	p.emit(p.cur())
	p.i++
	for p.i < len(p.src) && p.cur() != quote {
		if escapes && p.cur() == '\\' && p.i+1 < len(p.src) {
			p.emit(p.cur(), p.src[p.i+1])
			p.i += 2
			continue
		}
		p.emit(p.cur())
		p.i++
	}
	if p.i < len(p.src) {
		p.emit(p.cur())
		p.i++
	}
}

// convertComment rewrites ;-style line comments as // comments, which is
// what zygomys expects.
func (p *preprocessor) convertComment() {
	p.emit('/', '/')
	for p.i < len(p.src) && p.cur() == ';' {
		p.i++
	}
	for p.i < len(p.src) && p.cur() != '\n' {
		p.emit(p.cur())
		p.i++
	}
}

// convertKeyword rewrites :name as the "__kw_name" string literal,
// leaving the := assignment operator alone.
func (p *preprocessor) convertKeyword() {
	if p.i+1 >= len(p.src) || !isLetter(p.src[p.i+1]) {
		// := or a bare colon.
		p.emit(p.cur())
		p.i++
		return
	}
	j := p.i + 1
	for j < len(p.src) && isKWChar(p.src[j]) {
		j++
	}
	p.emit('"')
	p.emit([]byte(kwPrefix)...)
	p.emit(p.src[p.i+1 : j]...)
	p.emit('"')
	p.i = j
}

// convertHyphen turns a hyphen between identifier characters into an
// underscore; a minus operator keeps its meaning.
func (p *preprocessor) convertHyphen() {
	if p.i > 0 && p.i+1 < len(p.src) &&
		isIdentChar(p.src[p.i-1]) && isLetter(p.src[p.i+1]) {
		p.emit('_')
	} else {
		p.emit('-')
	}
	p.i++
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
