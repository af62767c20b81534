package cli

import (
	"github.com/spf13/cobra"

	"github.com/andewx/riot/internal/probe"
)

func newProbeCommand(_ *Options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report available device backends and Vulkan capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			return probe.Run(logger).Encode(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml)")
	return cmd
}
