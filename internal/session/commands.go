package session

import (
	"errors"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments. A negative count means the
// rest of the line is taken as one argument.
var commandNargs = map[string]int{
	"g": 0,  // get the board
	"o": 2,  // open <row> <col>
	"n": 0,  // new game
	"h": -1, // cheat <password>
}

// Reply is the result of one command line.
type Reply struct {
	Frame Frame        `json:"frame"`
	Cheat *CheatResult `json:"cheat,omitempty"`
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// Execute runs one command line against the session. The password of "h"
// is everything after the first space, taken verbatim.
func (s *Session) Execute(line string) (Reply, error) {
	cmd, rest, _ := strings.Cut(strings.TrimLeftFunc(line, unicode.IsSpace), " ")
	cmd = strings.TrimRightFunc(cmd, unicode.IsSpace)
	nargs, ok := commandNargs[cmd]
	if !ok {
		return Reply{}, ErrUnknownCommand
	}

	var args []string
	if nargs >= 0 {
		args = strings.Fields(rest)
		if nargs != len(args) {
			return Reply{}, ErrNargs
		}
	}

	switch cmd {
	case "g":
		return Reply{Frame: s.Frame()}, nil
	case "o":
		row, col, err := parseRowCol(args)
		if err != nil {
			return Reply{}, err
		}
		frame, err := s.OnCellClicked(row, col)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Frame: frame}, nil
	case "n":
		return Reply{Frame: s.OnRestartRequested()}, nil
	case "h":
		res := s.OnCheatAttempt(rest)
		return Reply{Frame: res.Frame, Cheat: &res}, nil
	}
	return Reply{}, ErrUnknownCommand
}

func ByLine(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, "\n")
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
