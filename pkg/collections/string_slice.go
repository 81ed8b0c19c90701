package collections

import "strings"

// StringSlice is a repeatable flag.  Each occurrence appends its value;
// comma-separated values append one element per item.
type StringSlice []string

func (s *StringSlice) String() string {
	return strings.Join(*s, ",")
}

// Set implements the flag.Value interface.
func (s *StringSlice) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}
