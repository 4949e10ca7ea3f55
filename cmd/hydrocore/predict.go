package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/client"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

func newPredictCmd() *cobra.Command {
	var (
		url     string
		file    string
		timeout time.Duration
		values  [types.NumFeatures]float64
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Send a water sample to a running server",
		Example: "  hydrocore predict --file sample.json\n" +
			"  cat sample.json | hydrocore predict --file -\n" +
			"  hydrocore predict --ph 7 --Hardness 150 --Solids 20000 --Chloramines 7.5 --Sulfate 330 \\\n" +
			"    --Conductivity 420 --Organic_carbon 12 --Trihalomethanes 70 --Turbidity 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			var err error
			if file != "" {
				body, err = readInput(cmd, file)
			} else {
				body, err = bodyFromFlags(cmd, values)
			}
			if err != nil {
				return err
			}
			c := client.New(url, timeout)
			resp, err := c.Predict(cmd.Context(), body)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) {
					for _, d := range apiErr.Detail {
						fmt.Fprintf(cmd.ErrOrStderr(), "%v: %s (%s)\n", d.Loc, d.Msg, d.Type)
					}
				}
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
		},
	}
	f := cmd.Flags()
	f.StringVar(&url, "url", "http://localhost:8000", "Base URL of the hydrocore server")
	f.StringVarP(&file, "file", "f", "", "JSON sample file, or - for stdin")
	f.DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	for i, name := range types.FeatureNames {
		f.Float64Var(&values[i], name, 0, "Sample value for "+name)
	}
	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

// bodyFromFlags encodes only the feature flags that were set, so the server
// reports the missing ones.
func bodyFromFlags(cmd *cobra.Command, values [types.NumFeatures]float64) ([]byte, error) {
	m := make(map[string]float64, types.NumFeatures)
	for i, name := range types.FeatureNames {
		if cmd.Flags().Changed(name) {
			m[name] = values[i]
		}
	}
	if len(m) == 0 {
		return nil, errors.New("provide --file or at least one feature flag")
	}
	return json.Marshal(m)
}
