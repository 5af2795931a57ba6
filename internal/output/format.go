// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// Format selects how task listings are printed
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// descriptionWidth is the widest description shown in table output
const descriptionWidth = 48

// Group is the tasks of one stage, in board order
type Group struct {
	Step  domain.Step   `json:"step" yaml:"step"`
	Tasks []domain.Task `json:"tasks" yaml:"tasks"`
}

// ParseFormat converts a flag value into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q: must be one of table, json, yaml", s)
}

// GroupTasks splits tasks into one group per stage, keeping the server order
// inside each group. Tasks with an unknown stage are left out.
func GroupTasks(tasks []domain.Task) []Group {
	groups := make([]Group, 0, len(domain.Steps()))
	for _, step := range domain.Steps() {
		g := Group{Step: step, Tasks: []domain.Task{}}
		for _, t := range tasks {
			if t.Step == step {
				g.Tasks = append(g.Tasks, t)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Tasks writes tasks grouped by stage in the given format
func Tasks(w io.Writer, format Format, tasks []domain.Task) error {
	groups := GroupTasks(tasks)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return err
		}
		return enc.Close()

	case FormatTable, "":
		return writeTable(w, groups)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Task writes a single task as a short key/value block
func Task(w io.Writer, task domain.Task) {
	fmt.Fprintf(w, "#%d  %s\n", task.ID, normalizeTitle(task.Title))
	fmt.Fprintf(w, "    stage:       %s\n", task.Step)
	fmt.Fprintf(w, "    description: %s\n", normalizeText(task.Description))
}

func writeTable(w io.Writer, groups []Group) error {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.Step, len(g.Tasks))
		if len(g.Tasks) == 0 {
			fmt.Fprintln(w, "  (no tasks)")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tTITLE\tDESCRIPTION")
		for _, t := range g.Tasks {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", t.ID, normalizeTitle(t.Title), truncate(normalizeText(t.Description), descriptionWidth))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// normalizeTitle normalizes a task title for display.
// Empty titles become "(untitled)".
func normalizeTitle(title string) string {
	title = normalizeText(title)
	if title == "" {
		return "(untitled)"
	}
	return title
}

// normalizeText flattens newlines and tabs so a value stays on one table row
func normalizeText(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
