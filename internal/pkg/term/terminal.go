package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/xerrors"
)

// Terminal обеспечивает построчный интерактивный ввод сообщений.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	stdinfd int
}

// NewTerminal создает новый экземпляр Terminal поверх стандартных потоков.
func NewTerminal() *Terminal {
	return newTerminal(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

func newTerminal(in io.Reader, out io.Writer, fd int) *Terminal {
	return &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		stdinfd: fd,
	}
}

// Interactive сообщает, подключен ли ввод к терминалу.
func (t *Terminal) Interactive() bool {
	return term.IsTerminal(t.stdinfd)
}

// ReadLine выводит приглашение и читает одну строку без завершающего перевода строки.
// В конце ввода возвращает io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.EOF
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", xerrors.Errorf("failed to read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println выводит строку ответа.
func (t *Terminal) Println(text string) error {
	if _, err := fmt.Fprintln(t.out, text); err != nil {
		return xerrors.Errorf("failed to write line: %w", err)
	}
	return nil
}
