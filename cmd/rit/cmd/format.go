// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const formatFlag = "format"

// Formatter renders data to a writer
type Formatter interface {
	Format(w io.Writer, data interface{}) error
}

// FormatterFunc is a function usable as a Formatter
type FormatterFunc func(w io.Writer, data interface{}) error

// Format data with the function
func (f FormatterFunc) Format(w io.Writer, data interface{}) error {
	return f(w, data)
}

var (
	jsonFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	})

	yamlFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
		b, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	})

	commandFormatters = make(map[*cobra.Command]map[string]Formatter)
)

// addFormatFlag registers a --format flag on a command, supporting json, yaml and the given formatters
func addFormatFlag(cmd *cobra.Command, defaultFormat string, formatters ...map[string]Formatter) string {
	available := map[string]Formatter{
		"json": jsonFormatter,
		"yaml": yamlFormatter,
	}
	for _, extra := range formatters {
		for name, f := range extra {
			available[name] = f
		}
	}
	commandFormatters[cmd] = available

	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	cmd.Flags().StringVarP(&ritFlags.format, formatFlag, "o", defaultFormat,
		fmt.Sprintf("The output format: %s", strings.Join(names, ", ")))
	return formatFlag
}

// printFormatted renders data with the format selected for the command
func printFormatted(cmd *cobra.Command, data interface{}) error {
	name := ritFlags.format
	if f := cmd.Flags().Lookup(formatFlag); f != nil && !f.Changed {
		name = f.DefValue
	}
	f, ok := commandFormatters[cmd][name]
	if !ok {
		return fmt.Errorf("unsupported output format %q", name)
	}
	return f.Format(cmd.OutOrStdout(), data)
}
