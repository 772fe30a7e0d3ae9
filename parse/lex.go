package parse

import "github.com/google/shlex"

// Split tokenizes a command line using shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []string{}
	}

	return args, nil
}
