package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"task-prioritizer/internal/prioritize"
	"task-prioritizer/internal/prioritize/usecase"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/log"
)

type analyzeOptions struct {
	file     string
	strategy string
	timezone string
	top      int
	asJSON   bool
	weights  map[string]*float64
	now      func() time.Time
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{
		weights: map[string]*float64{},
		now:     time.Now,
	}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score and rank the tasks in a JSON file",
		Long: `Score and rank the tasks in a JSON file.

The file holds a JSON array of task objects, the same body accepted by
POST /api/tasks/analyze. Use "-" to read from stdin.

Examples:
  prioritize analyze --file tasks.json
  prioritize analyze --file tasks.json --strategy deadline --top 3
  prioritize analyze --file tasks.json --effort 0.5 --json
  cat tasks.json | prioritize analyze --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, factor := range prioritize.Factors {
				if !cmd.Flags().Changed(factor) {
					delete(opts.weights, factor)
				}
			}
			return runAnalyze(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "path to a JSON array of tasks, or - for stdin")
	flags.StringVarP(&opts.strategy, "strategy", "s", "", "weight preset: smart, fast, impact or deadline")
	flags.StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone used to resolve today")
	flags.IntVarP(&opts.top, "top", "n", 0, "only print the N best tasks (0 prints all)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	for _, factor := range prioritize.Factors {
		opts.weights[factor] = flags.Float64(factor, 0, fmt.Sprintf("override the %s weight", factor))
	}
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	ctx := cmd.Context()

	records, err := readRecords(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}

	dm, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return err
	}

	uc := usecase.New(log.NewNop(), dm, nil, usecase.Config{MaxTasks: len(records) + 1})
	uc.SetClock(opts.now)

	output, err := uc.Analyze(ctx, prioritize.AnalyzeInput{
		Tasks:     prioritize.TasksFromMaps(records),
		Strategy:  prioritize.Strategy(strings.ToLower(opts.strategy)),
		Overrides: opts.overrides(),
	})
	if err != nil {
		return err
	}

	if opts.top > 0 && len(output.Tasks) > opts.top {
		output.Tasks = output.Tasks[:opts.top]
	}

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), output)
	}
	return writeTable(cmd.OutOrStdout(), output)
}

func (o *analyzeOptions) overrides() prioritize.WeightOverrides {
	return prioritize.WeightOverrides{
		Urgency:      o.weights[prioritize.FactorUrgency],
		Importance:   o.weights[prioritize.FactorImportance],
		Effort:       o.weights[prioritize.FactorEffort],
		Dependencies: o.weights[prioritize.FactorDependencies],
	}
}

func readRecords(stdin io.Reader, path string) ([]map[string]any, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open tasks file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.New("tasks file must hold a JSON array of task objects")
		}
		return nil, fmt.Errorf("decode tasks file: %w", err)
	}
	return records, nil
}

type jsonTask struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours float64  `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies"`
	Score          float64  `json:"score"`
	Explanation    string   `json:"explanation"`
}

type jsonOutput struct {
	Tasks    []jsonTask `json:"tasks"`
	Analysis struct {
		Weights prioritize.Weights `json:"weights"`
		Cycles  [][]string         `json:"cycles"`
		Summary struct {
			TotalTasks   int      `json:"total_tasks"`
			HighestScore *float64 `json:"highest_score"`
		} `json:"summary"`
	} `json:"analysis"`
}

func writeJSON(w io.Writer, out prioritize.AnalyzeOutput) error {
	var doc jsonOutput
	doc.Tasks = make([]jsonTask, len(out.Tasks))
	for i, t := range out.Tasks {
		doc.Tasks[i] = jsonTask{
			ID:             t.ID,
			Title:          t.Title,
			EstimatedHours: t.EstimatedHours,
			Importance:     t.Importance,
			Dependencies:   t.Dependencies,
			Score:          t.Score,
			Explanation:    t.Explanation,
		}
		if t.DueDate != "" {
			due := t.DueDate
			doc.Tasks[i].DueDate = &due
		}
	}
	doc.Analysis.Weights = out.Analysis.Weights
	doc.Analysis.Cycles = out.Analysis.Cycles
	doc.Analysis.Summary.TotalTasks = out.Analysis.Summary.TotalTasks
	doc.Analysis.Summary.HighestScore = out.Analysis.Summary.HighestScore

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeTable(w io.Writer, out prioritize.AnalyzeOutput) error {
	if len(out.Tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tID\tTITLE\tDUE\tEXPLANATION")
	for i, t := range out.Tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%s\t%s\t%s\t%s\n", i+1, t.Score, t.ID, t.Title, due, t.Explanation)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	wt := out.Analysis.Weights
	fmt.Fprintf(w, "\nWeights: urgency %.2f, importance %.2f, effort %.2f, dependencies %.2f\n",
		wt.Urgency, wt.Importance, wt.Effort, wt.Dependencies)
	for _, cycle := range out.Analysis.Cycles {
		fmt.Fprintf(w, "Cycle: %s\n", strings.Join(cycle, " -> "))
	}
	return nil
}
