package main

import (
	"strconv"

	"github.com/function61/ionice/pkg/ionconfig"
	"github.com/function61/ionice/pkg/ioprio"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*classValue)(nil)
	_ pflag.Value = (*dataValue)(nil)
	_ pflag.Value = (*selectorValue)(nil)
)

// pflag.Value implementations that feed straight into ionconfig.Config. Set()
// errors are remembered in *parseErr so we can report them verbatim instead
// of pflag's "invalid argument ... for flag" wrapping.

type classValue struct {
	class    *ioprio.Class
	parseErr *error
}

func (c *classValue) Set(arg string) error {
	class, err := ionconfig.ParseClass(arg)
	if err != nil {
		*c.parseErr = err
		return err
	}

	*c.class = class
	return nil
}

func (c *classValue) String() string {
	return c.class.String()
}

func (c *classValue) Type() string {
	return "class"
}

type dataValue struct {
	data     *int
	parseErr *error
}

func (d *dataValue) Set(arg string) error {
	data, err := ionconfig.ParseData(arg)
	if err != nil {
		*d.parseErr = err
		return err
	}

	*d.data = data
	return nil
}

func (d *dataValue) String() string {
	return strconv.Itoa(*d.data)
}

func (d *dataValue) Type() string {
	return "int"
}

// one per -p / -P / -u, all sharing the same selector
type selectorValue struct {
	selector *ionconfig.Selector
	who      ioprio.Who
	parseErr *error
}

func (s *selectorValue) Set(arg string) error {
	if err := s.selector.Add(s.who, arg); err != nil {
		*s.parseErr = err
		return err
	}

	return nil
}

func (s *selectorValue) String() string {
	if s.selector.Who != s.who {
		return ""
	}

	ids := ""
	for i, id := range s.selector.IDs {
		if i > 0 {
			ids += ","
		}
		ids += strconv.Itoa(id)
	}

	return ids
}

func (s *selectorValue) Type() string {
	return s.who.String()
}
