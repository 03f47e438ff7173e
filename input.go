package cinoas

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseInfile parses the keyword input file named by filename into a
// fresh configuration table. Lines are `keyword=value`, # starts a
// comment, and a value may span lines inside braces:
//
//	geometry={
//	C 0.0 0.0 0.6695
//	...
//	}
func ParseInfile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	conf := NewConfig()
	scanner := bufio.NewScanner(f)
	var (
		block   strings.Builder
		inblock bool
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case !inblock && (len(line) == 0 || line[0] == '#'):
		case inblock && strings.Contains(line, "}"):
			inblock = false
			if err := conf.process(strings.TrimSpace(block.String())); err != nil {
				return nil, err
			}
			block.Reset()
		case strings.Contains(line, "{"):
			block.WriteString(strings.SplitN(line, "{", 2)[0])
			inblock = true
		case inblock:
			block.WriteString(line + "\n")
		default:
			if err := conf.process(line); err != nil {
				return nil, err
			}
		}
	}
	return conf, scanner.Err()
}

// process extracts one keyword line into the table
func (c *Config) process(line string) error {
	for k := Key(0); k < NumKeys; k++ {
		if !(*c)[k].Re.MatchString(line) {
			continue
		}
		val := strings.TrimSpace(strings.SplitN(line, "=", 2)[1])
		v, err := (*c)[k].Extract(val)
		if err != nil {
			return fmt.Errorf("keyword %s: %w", k, err)
		}
		(*c)[k].Value = v
		(*c)[k].Seen = true
		return nil
	}
	return fmt.Errorf("unrecognized input line %q", line)
}
