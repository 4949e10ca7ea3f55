package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/httpapi"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/model"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

func newModelCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "model", Short: "Model artifact utilities"}

	var (
		samplePath string
		output     string
	)
	inspect := &cobra.Command{
		Use:     "inspect <artifact>",
		Short:   "Load an artifact, print its metadata and optionally score a sample offline",
		Example: "  hydrocore model inspect model.json\n  hydrocore model inspect model.yaml --sample sample.json -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := model.Load(args[0])
			if err != nil {
				return err
			}
			report := inspectReport{Model: h.Info()}
			if samplePath != "" {
				b, err := os.ReadFile(samplePath)
				if err != nil {
					return err
				}
				s, detail := httpapi.DecodeWaterSample(b)
				if len(detail) > 0 {
					for _, d := range detail {
						fmt.Fprintf(cmd.ErrOrStderr(), "%v: %s (%s)\n", d.Loc, d.Msg, d.Type)
					}
					return fmt.Errorf("sample %s failed validation", samplePath)
				}
				p, err := h.PredictProba(s)
				if err != nil {
					return err
				}
				label, _ := h.Predict(s)
				report.Probability = &p
				report.Potability = &label
			}
			return writeReport(cmd.OutOrStdout(), output, report)
		},
	}
	inspect.Flags().StringVar(&samplePath, "sample", "", "JSON water sample to score")
	inspect.Flags().StringVarP(&output, "output", "o", "json", "Output format: json|yaml")
	cmd.AddCommand(inspect)
	return cmd
}

type inspectReport struct {
	Model       types.ModelInfo `json:"model" yaml:"model"`
	Probability *float64        `json:"probability,omitempty" yaml:"probability,omitempty"`
	Potability  *int            `json:"Potability,omitempty" yaml:"Potability,omitempty"`
}

func writeReport(w io.Writer, format string, r inspectReport) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
