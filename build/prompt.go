package build

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errAborted = errors.New("aborted by user")

// askPath asks user for input document when it is possible, otherwise
// DefaultInput is assumed.
func askPath(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultInput, nil
	}
	return readPath(in, out)
}

func readPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintf(out, "? path (%s) [The path of your HTML file.] ", DefaultInput)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && len(line) == 0 {
		// Ctrl+D
		fmt.Fprintln(out)
		return "", errAborted
	}
	if line = strings.TrimSpace(line); len(line) == 0 {
		return DefaultInput, nil
	}
	return line, nil
}
