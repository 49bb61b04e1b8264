package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// readSecret resolves the secret bytes to split from, in priority order:
// an explicit literal argument, --file, --env, --stdin, or (as a last
// resort) an interactive masked prompt — the ingestion sources spec §1
// names for the CLI front-end.
func readSecret(literal, file, env string, stdin bool) ([]byte, error) {
	switch {
	case literal != "":
		return []byte(literal), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		return data, nil
	case env != "":
		v, ok := os.LookupEnv(env)
		if !ok {
			return nil, fmt.Errorf("environment variable %s is not set", env)
		}
		return []byte(v), nil
	case stdin:
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin was empty")
		}
		return scanner.Bytes(), nil
	default:
		fmt.Fprint(os.Stderr, "Enter secret: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading interactive secret: %w", err)
		}
		return pw, nil
	}
}
