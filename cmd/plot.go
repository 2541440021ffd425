package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/pediametrics/growthchart-cli/internal/config"
	"github.com/pediametrics/growthchart-cli/internal/growthref"
	"github.com/pediametrics/growthchart-cli/internal/pipeline"
	"github.com/pediametrics/growthchart-cli/internal/plot"
)

var (
	plotInput  string
	plotGender string
	plotDOB    string
	plotWhich  string
	plotName   string
	plotNoOpen bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Build one growth chart from a CSV/TSV record",
	Example: `  growthchart plot -i visits.csv --gender M --dob 2018-01-01 --which height
  growthchart plot -i visits.tsv --gender F --dob 2019-06-15 --which bmi --name "Ada"
  cat visits.csv | growthchart plot -i - --gender M --dob 2018-01-01 --which weight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotGender != "M" && plotGender != "F" {
			return fmt.Errorf("--gender must be M or F")
		}
		dob, err := time.ParseInLocation("2006-01-02", plotDOB, time.Local)
		if err != nil {
			return fmt.Errorf("--dob must be YYYY-MM-DD: %w", err)
		}
		which, err := growthref.ParseMetric(plotWhich)
		if err != nil {
			return err
		}
		text, err := readInput(plotInput)
		if err != nil {
			return err
		}

		if cfg == nil {
			// Config loading failed earlier; run with the documented
			// defaults rather than a zero struct.
			cfg = cfgpkg.Default()
		}
		lookup := growthref.NewClient(cfg.LookupBaseURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
		p := pipeline.New(lookup,
			pipeline.WithLogger(logger),
			pipeline.WithRenderer(func(s *plot.Spec) (string, error) {
				return plot.Render(s, plot.RenderOptions{
					Width:  cfg.ChartWidth,
					Height: cfg.ChartHeight,
					OutDir: cfg.OutputDir,
				})
			}))

		res := p.Run(cmd.Context(), pipeline.Params{
			Gender: plotGender,
			DOB:    dob,
			Table:  text,
			Which:  which,
			Name:   plotName,
		})
		if res.Code != http.StatusOK {
			return fmt.Errorf("%s", res.Message)
		}

		fmt.Printf("✓ Chart written to %s\n", res.Path)
		if cfg.OpenViewer && !plotNoOpen {
			if err := plot.Open(res.Path); err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
			}
		}
		return nil
	},
}

// readInput loads the table text from a file, or from stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--input is required")
	}
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func init() {
	plotCmd.Flags().StringVarP(&plotInput, "input", "i", "", "growth record file (CSV or TSV, - for stdin)")
	plotCmd.Flags().StringVar(&plotGender, "gender", "", "subject gender: M or F")
	plotCmd.Flags().StringVar(&plotDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	plotCmd.Flags().StringVar(&plotWhich, "which", "height", "chart kind: height, weight or bmi")
	plotCmd.Flags().StringVar(&plotName, "name", "", "subject display name for the chart title")
	plotCmd.Flags().BoolVar(&plotNoOpen, "no-open", false, "do not open the rendered chart in a viewer")
	_ = plotCmd.MarkFlagRequired("input")
	_ = plotCmd.MarkFlagRequired("gender")
	_ = plotCmd.MarkFlagRequired("dob")
	rootCmd.AddCommand(plotCmd)
}
