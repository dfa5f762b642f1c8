package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nearswap/nearswap/x/clp/host"
	"github.com/nearswap/nearswap/x/clp/keeper"
)

const (
	flagHome      = "home"
	flagContract  = "contract"
	flagCaller    = "caller"
	flagDeposit   = "deposit"
	flagRecipient = "recipient"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clpd",
		Short: "Continuous liquidity pool node",
		Long: `clpd manages constant-product liquidity pools pairing the native
token with fungible reserve tokens. State lives in a local database;
swap and liquidity commands run the same contract logic an on-ledger
deployment would.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return loadConfig()
		},
	}

	home, _ := os.UserHomeDir()
	cmd.PersistentFlags().String(flagHome, filepath.Join(home, ".clpd"), "directory for the pool database")
	cmd.PersistentFlags().String(flagContract, "nearswap.near", "account the contract is deployed at")
	cmd.PersistentFlags().String(flagCaller, "", "account invoking the command")
	cmd.PersistentFlags().String(flagDeposit, "0", "native deposit attached to the call")

	cmd.AddCommand(
		initCmd(),
		createPoolCmd(),
		poolInfoCmd(),
		listPoolsCmd(),
		sharesCmd(),
		addLiquidityCmd(),
		withdrawLiquidityCmd(),
		swapCmd(),
		priceCmd(),
		adminCmd(),
		serveCmd(),
	)
	return cmd
}

// loadConfig layers an optional config.yaml from the home directory
// under the flag values. Flags win over file values.
func loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(cast.ToString(viper.Get(flagHome)))
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// env bundles the opened store, host and keeper behind one invocation.
type env struct {
	db     dbm.DB
	host   *host.Local
	keeper *keeper.Keeper
}

func openEnv() (*env, error) {
	home := cast.ToString(viper.Get(flagHome))
	if err := os.MkdirAll(home, 0o750); err != nil {
		return nil, err
	}
	db, err := dbm.NewDB("clp", dbm.GoLevelDBBackend, home)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger := log.NewLogger(os.Stderr)
	h := host.NewLocal(cast.ToString(viper.Get(flagContract)), logger)
	h.SetCaller(cast.ToString(viper.Get(flagCaller)))

	deposit, err := parseAmount(cast.ToString(viper.Get(flagDeposit)))
	if err != nil {
		db.Close()
		return nil, err
	}
	h.SetDeposit(deposit)

	k := keeper.NewKeeper(db, h, logger)
	h.Bind(k.HandleCallback)
	return &env{db: db, host: h, keeper: k}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

// run opens the environment, executes fn and flushes queued callbacks.
func run(fn func(e *env) error) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	if err := fn(e); err != nil {
		return err
	}
	return e.host.Flush()
}

func parseAmount(s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok || v.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func parsePositive(s string) (math.Int, error) {
	v, err := parseAmount(s)
	if err != nil {
		return math.Int{}, err
	}
	if !v.IsPositive() {
		return math.Int{}, fmt.Errorf("amount %q must be positive", s)
	}
	return v, nil
}
