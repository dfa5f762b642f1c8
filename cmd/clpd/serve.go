package main

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nearswap/nearswap/x/clp/api"
)

const flagAddr = "addr"

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pool queries and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			logger := e.keeper.Logger()
			srv := api.NewServer(e.keeper, logger)
			return srv.Run(cast.ToString(viper.Get(flagAddr)))
		},
	}
	cmd.Flags().String(flagAddr, ":8080", "listen address")
	return cmd
}
