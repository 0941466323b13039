package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"ninjagen/internal/errs"
	"ninjagen/internal/ninja"
	"ninjagen/internal/skeleton"
)

func checkFormat(format string) error {
	switch format {
	case "", "table", "json", "yaml":
		return nil
	}
	return errs.Usage("unknown format %q (use table, json or yaml)", format)
}

func listSkeletons(w io.Writer, format string) error {
	switch format {
	case "json":
		return writeJSON(w, map[string]interface{}{
			"skeletons": skeleton.Skeletons,
			"total":     len(skeleton.Skeletons),
		})
	case "yaml":
		return writeYAML(w, map[string]interface{}{
			"skeletons": skeleton.Skeletons,
			"total":     len(skeleton.Skeletons),
		})
	default: // table
		return listSkeletonsTable(w)
	}
}

func listSkeletonsTable(w io.Writer) error {
	fmt.Fprintln(w, "Available skeletons:")
	fmt.Fprintln(w, "--------------------")

	// Find max name length for formatting
	maxNameLen := 0
	for _, s := range skeleton.Skeletons {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	for _, s := range skeleton.Skeletons {
		padding := strings.Repeat(" ", maxNameLen-len(s.Name)+2)
		fmt.Fprintf(w, "  %s%s%s (ninjagen %s)\n", s.Name, padding, s.Description, s.Command)
	}

	fmt.Fprintf(w, "\nTotal: %d skeletons\n", len(skeleton.Skeletons))
	return nil
}

func writeRecords(w io.Writer, format string, docs []ninja.DocumentRecords) error {
	total := 0
	for _, d := range docs {
		total += len(d.Records)
	}

	switch format {
	case "json":
		return writeJSON(w, map[string]interface{}{
			"documents": docs,
			"total":     total,
		})
	case "yaml":
		return writeYAML(w, map[string]interface{}{
			"documents": docs,
			"total":     total,
		})
	default: // table
		return writeRecordsTable(w, docs, total)
	}
}

func writeRecordsTable(w io.Writer, docs []ninja.DocumentRecords, total int) error {
	maxTargetLen, maxRuleLen := len("TARGET"), len("RULE")
	for _, d := range docs {
		for _, r := range d.Records {
			maxTargetLen = max(maxTargetLen, len(r.Target))
			maxRuleLen = max(maxRuleLen, len(r.Rule))
		}
	}

	row := func(target, rule, inputs string) {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxTargetLen, target, maxRuleLen, rule, inputs)
	}

	for i, d := range docs {
		fmt.Fprintf(w, "Document %d (%s)\n", i+1, d.Source)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  # %s\n", strings.ReplaceAll(strings.TrimSpace(n), "\n", " "))
		}
		if len(d.Records) == 0 {
			fmt.Fprintln(w, "  No build statements")
			continue
		}
		row("TARGET", "RULE", "INPUTS")
		for _, r := range d.Records {
			row(r.Target, r.Rule, strings.Join(r.Inputs, " "))
		}
	}

	fmt.Fprintf(w, "\nTotal: %d build statements\n", total)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(v)
}
