package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aurceive/genshin-dashboard/internal/account"
	"github.com/aurceive/genshin-dashboard/internal/clock"
	"github.com/aurceive/genshin-dashboard/internal/config"
	"github.com/aurceive/genshin-dashboard/internal/detailcache"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
	"github.com/aurceive/genshin-dashboard/internal/logging"
	"github.com/aurceive/genshin-dashboard/internal/session"
	"github.com/aurceive/genshin-dashboard/internal/store"
)

type Options struct {
	// Root overrides FindRoot.
	Root   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// Run executes the CLI and returns the desired process exit code.
func Run() int {
	return RunWithOptions(Options{Args: os.Args[1:]})
}

func RunWithOptions(opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Root == "" {
		root, err := FindRoot()
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			return 1
		}
		opts.Root = root
	}

	rt := &runtime{root: opts.Root, stdout: opts.Stdout, stderr: opts.Stderr, clock: opts.Clock}
	cmd := newRootCmd(rt)
	cmd.SetArgs(opts.Args)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	err := cmd.ExecuteContext(context.Background())
	rt.close()
	if err == nil {
		return 0
	}

	if errors.Is(err, session.ErrNoCredentials) {
		fmt.Fprintln(opts.Stderr, err)
		fmt.Fprintln(opts.Stderr, "hint: genshin_dashboard login --ltoken <ltoken_v2> --ltuid <ltuid_v2>, or set "+session.EnvLToken+" and "+session.EnvLTUID)
		return 1
	}
	if ee, ok := asExitError(err); ok {
		if ee.Err != nil && ee.Code != 0 {
			fmt.Fprintln(opts.Stderr, ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(opts.Stderr, err)
	return 1
}

// runtime is the per-invocation state shared by the commands.
type runtime struct {
	root   string
	flags  config.Flags
	cfg    config.Config
	kv     store.Store
	sess   *session.Store
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock
}

func (rt *runtime) init() error {
	cfg, err := config.Load(rt.root, &rt.flags)
	if err != nil {
		return configError(err)
	}
	rt.cfg = cfg
	logging.Setup(rt.stderr, cfg.Log.Level, cfg.Log.Pretty)

	kv, err := store.Open(cfg.Store.Driver, cfg.Store.Path, cfg.Store.DSN)
	if err != nil {
		return configError(err)
	}
	rt.kv = kv
	rt.sess = session.NewStore(kv)
	log.Debug().Str("root", rt.root).Str("store", cfg.Store.Driver).Msg("runtime ready")
	return nil
}

func (rt *runtime) close() {
	if rt.kv == nil {
		return
	}
	if err := rt.kv.Close(); err != nil {
		log.Warn().Err(err).Msg("closing store")
	}
	rt.kv = nil
}

// service builds the account service for commands that talk to the aggregator.
func (rt *runtime) service() (*account.Service, error) {
	if err := rt.cfg.RequireProxy(); err != nil {
		return nil, configError(err)
	}
	creds, err := rt.sess.Resolve()
	if err != nil {
		return nil, err
	}
	client := hoyolab.NewClient(rt.cfg.Proxy.BaseURL, creds,
		hoyolab.WithUserAgent(rt.cfg.Proxy.UserAgent),
		hoyolab.WithTimeout(rt.cfg.Proxy.Timeout),
	)
	details := detailcache.NewCharacterDetails(rt.kv, rt.clock, rt.cfg.Cache.TTL)
	return account.New(client, details, account.WithEnrichTimeout(rt.cfg.Enrich.Timeout)), nil
}

func (rt *runtime) now() time.Time {
	return rt.clock.Now()
}

func newRootCmd(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "genshin_dashboard",
		Short:         "Genshin Impact account dashboard backed by a HoYoLab proxy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
	}
	rt.flags.Bind(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError(err)
	})

	root.AddCommand(
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newSummaryCmd(rt),
		newRosterCmd(rt),
		newCharacterCmd(rt),
		newRegionsCmd(rt),
		newAchievementsCmd(rt),
		newAbyssCmd(rt),
		newTheaterCmd(rt),
		newOnslaughtCmd(rt),
		newExportCmd(rt),
		newNotifyCmd(rt),
	)
	return root
}
