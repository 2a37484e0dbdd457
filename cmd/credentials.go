package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// credentialFlags are shared by login and register.
type credentialFlags struct {
	username      string
	password      string
	passwordStdin bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "password (prefer --password-stdin or the prompt)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "read the password from stdin")
}

// resolve fills in whatever the flags left out, prompting when stdin is a terminal.
// Missing values are returned empty and left to credential validation.
func (f *credentialFlags) resolve(cmd *cobra.Command) (string, string, error) {
	if f.passwordStdin && f.password != "" {
		return "", "", usageError(cmd, errors.New("--password and --password-stdin are mutually exclusive"))
	}

	in := cmd.InOrStdin()
	interactive := isTerminal(in)
	reader := bufio.NewReader(in)

	username := f.username
	if username == "" && interactive {
		fmt.Fprint(cmd.ErrOrStderr(), "Username: ")
		line, err := readLine(reader)
		if err != nil {
			return "", "", fmt.Errorf("reading username: %w", err)
		}
		username = line
	}

	password := f.password
	switch {
	case f.passwordStdin:
		line, err := readLine(reader)
		if err != nil {
			return "", "", fmt.Errorf("reading password from stdin: %w", err)
		}
		password = line
	case password == "" && interactive:
		fd, _ := fileDescriptor(in)
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}

	return username, password, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func fileDescriptor(v any) (int, bool) {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func isTerminal(v any) bool {
	fd, ok := fileDescriptor(v)
	return ok && term.IsTerminal(fd)
}
