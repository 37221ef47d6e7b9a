package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cpuProfileFlag    string
	memProfileDirFlag string
)

func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "celfie",
		Short:         "Hide encrypted messages and links inside images",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfileFlag != "" {
				profileOutput, err := os.Create(cpuProfileFlag)
				if err != nil {
					return err
				}
				StartCPUProfiler(profileOutput)
			}
			if memProfileDirFlag != "" {
				StartMemoryProfiler(memProfileDirFlag)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cpuProfileFlag != "" {
				StopCPUProfiler()
			}
			if memProfileDirFlag != "" {
				StopMemoryProfiler()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfileFlag, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDirFlag, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(encodeCommand(), decodeCommand(), verifyCommand(), ServeAppCommand())
	return rootCmd
}

func Execute() error {
	return RootCommand().Execute()
}
