package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

func NewRootCmd(ctx context.Context, args []string) *cobra.Command {
	// create a root course details server CLI command and register sub commands
	rootCmd := &cobra.Command{
		Use:           courseDetailsServer,
		Short:         courseDetailsServer,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newStartCommand(ctx, args))
	// register to env variables
	viper.SetEnvPrefix(course)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return rootCmd
}
