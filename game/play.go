package game

import (
	"errors"
	"fmt"
	"strings"
)

const passToken = "p"

var ErrBadToken = errors.New("bad transcript token")

// Play is one transcript entry: a disc placed at Position, or a pass.
type Play struct {
	Position Position
	Pass     bool
}

func MovePlay(p Position) Play {
	return Play{Position: p}
}

func PassPlay() Play {
	return Play{Pass: true}
}

func (p Play) String() string {
	if p.Pass {
		return passToken
	}
	return p.Position.String()
}

// FormatTranscript joins the plays with sep, e.g. "d3,c5,p".
func FormatTranscript(plays []Play, sep string) string {
	tokens := make([]string, len(plays))
	for i, p := range plays {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, sep)
}

// ParseTranscript reads plays written either comma separated ("d3,c5,p") or
// concatenated ("d3c5p"). Whitespace is ignored.
func ParseTranscript(text string) ([]Play, error) {
	var compact strings.Builder
	for _, r := range strings.ToLower(text) {
		switch r {
		case ',', ' ', '\t', '\n', '\r':
			continue
		}
		compact.WriteRune(r)
	}

	s := compact.String()
	plays := make([]Play, 0, len(s)/2)
	for i := 0; i < len(s); {
		if s[i] == passToken[0] {
			plays = append(plays, PassPlay())
			i++
			continue
		}
		if i+2 > len(s) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadToken, s[i:], i)
		}
		p, err := ParsePosition(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d: %w", ErrBadToken, i, err)
		}
		plays = append(plays, MovePlay(p))
		i += 2
	}
	return plays, nil
}
