package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const help = `commands:
  o <row> <col>  open a cell
  n              new game
  h              enter the password to reveal mines
  q              quit
`

// Play runs a game on sess, reading commands from in until "q" or EOF.
func Play(in io.Reader, out io.Writer, sess *session.Session) error {
	scanner := bufio.NewScanner(in)

	frame := sess.Frame()
	fmt.Fprint(out, help)
	printFrame(out, frame)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "q":
			return nil
		case "?":
			fmt.Fprint(out, help)
			continue
		case "h":
			fmt.Fprint(out, "Please enter the password to reveal mines: ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			res := sess.OnCheatAttempt(scanner.Text())
			if !res.Accepted {
				fmt.Fprintln(out, "The password you entered is incorrect.")
				continue
			}
			frame = res.Frame
			printFrame(out, frame)
			continue
		}

		reply, err := sess.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		if reply.Cheat != nil && !reply.Cheat.Accepted {
			fmt.Fprintln(out, "The password you entered is incorrect.")
			continue
		}

		prev := frame.Outcome
		frame = reply.Frame
		printFrame(out, frame)

		if prev != frame.Outcome {
			switch frame.Outcome {
			case mines.Lost:
				fmt.Fprintln(out, "You hit a mine! Type n to try again or q to exit.")
			case mines.Won:
				fmt.Fprintln(out, "You win! You successfully revealed all non-mine cells. Type n to play again or q to exit.")
			}
		}
	}
}

func printFrame(out io.Writer, frame session.Frame) {
	fmt.Fprint(out, "   ")
	for col := range frame.Cols {
		fmt.Fprintf(out, "%d ", col)
	}
	fmt.Fprintln(out)
	for row, line := range strings.Split(strings.TrimSuffix(frame.String(), "\n"), "\n") {
		fmt.Fprintf(out, "%d: %s\n", row, line)
	}
}
