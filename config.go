package cinoas

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Key is a type for input keyword indices
type Key int

// Keys in the configuration array. To add a new keyword, add a Key
// here and to the String method below, then give it an entry in
// NewConfig.
const (
	WfnFile Key = iota
	ThresholdOcc
	ThresholdVir
	NumActOcc
	NumActVir
	PrintLevel
	Psi4Cmd
	Basis
	Geometry
	NumRoots
	AvgStates
	NumKeys
)

func (k Key) String() string {
	return []string{
		"WfnFile",
		"ThresholdOcc",
		"ThresholdVir",
		"NumActOcc",
		"NumActVir",
		"PrintLevel",
		"Psi4Cmd",
		"Basis",
		"Geometry",
		"NumRoots",
		"AvgStates",
	}[k]
}

// Keyword pairs the regexp recognizing one input line with the
// function extracting its typed value. Seen records whether the input
// file actually supplied the keyword, as opposed to the default
// standing; the selection criteria hang on that distinction.
type Keyword struct {
	Re      *regexp.Regexp
	Extract func(string) (interface{}, error)
	Value   interface{}
	Seen    bool
}

type Config [NumKeys]Keyword

// At returns the Value of c at k
func (c *Config) At(k Key) interface{} {
	return (*c)[k].Value
}

func (c *Config) Str(k Key) string {
	return (*c)[k].Value.(string)
}

func (c *Config) Float(k Key) float64 {
	return (*c)[k].Value.(float64)
}

func (c *Config) Int(k Key) int {
	return (*c)[k].Value.(int)
}

// Supplied reports whether k appeared in the parsed input
func (c *Config) Supplied(k Key) bool {
	return (*c)[k].Seen
}

func (c Config) String() string {
	var buf strings.Builder
	for i, kw := range c {
		fmt.Fprintf(&buf, "%s: %v\n", Key(i), kw.Value)
	}
	return buf.String()
}

func StringKeyword(str string) (interface{}, error) {
	return str, nil
}

func FloatKeyword(str string) (interface{}, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return nil, fmt.Errorf("%v parsing %q", err, str)
	}
	return f, nil
}

func IntKeyword(str string) (interface{}, error) {
	v, err := strconv.Atoi(str)
	if err != nil {
		return nil, fmt.Errorf("%v parsing %q", err, str)
	}
	return v, nil
}

// NewConfig returns the default configuration table
func NewConfig() *Config {
	return &Config{
		WfnFile: {
			Re:      regexp.MustCompile(`(?i)^wfnfile=`),
			Extract: StringKeyword,
			Value:   "wfn.yaml",
		},
		ThresholdOcc: {
			Re:      regexp.MustCompile(`(?i)^threshold_occ=`),
			Extract: FloatKeyword,
		},
		ThresholdVir: {
			Re:      regexp.MustCompile(`(?i)^threshold_vir=`),
			Extract: FloatKeyword,
		},
		NumActOcc: {
			Re:      regexp.MustCompile(`(?i)^num_act_occ=`),
			Extract: IntKeyword,
		},
		NumActVir: {
			Re:      regexp.MustCompile(`(?i)^num_act_vir=`),
			Extract: IntKeyword,
		},
		PrintLevel: {
			Re:      regexp.MustCompile(`(?i)^print_level=`),
			Extract: IntKeyword,
			Value:   0,
		},
		Psi4Cmd: {
			Re:      regexp.MustCompile(`(?i)^psi4=`),
			Extract: StringKeyword,
			Value:   "psi4",
		},
		Basis: {
			Re:      regexp.MustCompile(`(?i)^basis=`),
			Extract: StringKeyword,
			Value:   "cc-pVDZ",
		},
		Geometry: {
			Re:      regexp.MustCompile(`(?i)^geometry=`),
			Extract: StringKeyword,
		},
		NumRoots: {
			Re:      regexp.MustCompile(`(?i)^num_roots=`),
			Extract: IntKeyword,
			Value:   4,
		},
		AvgStates: {
			Re:      regexp.MustCompile(`(?i)^avg_states=`),
			Extract: StringKeyword,
			Value:   "",
		},
	}
}

// Criteria materializes the selection criteria from the parsed table.
// Only keywords actually present in the input become criteria, so the
// absent-versus-defaulted distinction survives into the selector.
func (c *Config) Criteria() (Criteria, error) {
	crit := Criteria{PrintLevel: c.Int(PrintLevel)}
	if c.Supplied(ThresholdOcc) {
		t := c.Float(ThresholdOcc)
		if t <= 0 || t > 1 {
			return crit, fmt.Errorf("threshold_occ %g outside (0,1]", t)
		}
		crit.ThresholdOcc = &t
	}
	if c.Supplied(ThresholdVir) {
		t := c.Float(ThresholdVir)
		if t <= 0 || t > 1 {
			return crit, fmt.Errorf("threshold_vir %g outside (0,1]", t)
		}
		crit.ThresholdVir = &t
	}
	if c.Supplied(NumActOcc) {
		n := c.Int(NumActOcc)
		if n < 0 {
			return crit, fmt.Errorf("num_act_occ %d is negative", n)
		}
		crit.NumActOcc = &n
	}
	if c.Supplied(NumActVir) {
		n := c.Int(NumActVir)
		if n < 0 {
			return crit, fmt.Errorf("num_act_vir %d is negative", n)
		}
		crit.NumActVir = &n
	}
	return crit, nil
}
