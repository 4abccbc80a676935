package emitter

import (
	"strings"
)

const indentUnit = "\t"

// section accumulates the text of one logical part of a unit together with
// its own indentation depth.
type section struct {
	sb    strings.Builder
	depth int
}

func (s *section) writeIndent() {
	for range s.depth {
		s.sb.WriteString(indentUnit)
	}
}

// writeLine appends text at the current depth. Empty text yields an empty
// line without indentation.
func (s *section) writeLine(text string) {
	if text != "" {
		s.writeIndent()
		s.sb.WriteString(text)
	}
	s.sb.WriteByte('\n')
}

// writeLineByLine writes every line of text at the current depth, keeping
// the relative indentation the lines already carry.
func (s *section) writeLineByLine(text string) {
	for _, line := range splitLines(text) {
		s.writeLine(line)
	}
}

func (s *section) openBlock(comment string) {
	s.writeLine(braceLine("{", comment))
	s.depth++
}

func (s *section) closeBlock(comment string) {
	if s.depth == 0 {
		panic(ErrUnbalancedBlock)
	}
	s.depth--
	s.writeLine(braceLine("}", comment))
}

func (s *section) empty() bool {
	return s.sb.Len() == 0
}

func (s *section) String() string {
	return s.sb.String()
}

func braceLine(brace, comment string) string {
	if strings.TrimSpace(comment) == "" {
		return brace
	}
	return brace + " // " + comment
}

// splitLines splits text on line boundaries. A single trailing terminator
// does not produce a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
