package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/cmd/setup"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/graceful"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/job"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/repositories"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to run reconciliation jobs",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file, defaults to ./config.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)
	rootCmd.AddCommand(migrateCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date, YYYY-MM-DD")
	runJobCmd.Flags().StringP(runJobCmdReservation, "r", "", "reservation id")
	runJobCmd.Flags().StringP(runJobCmdAction, "a", "", "webhook action to reprocess with or filter on")
}

func loaderOptions() []config.LoaderOption {
	if configFile == "" {
		return nil
	}
	return []config.LoaderOption{config.WithConfigFile(configFile)}
}

func initSetup(ctx context.Context, command string) (*setup.Setup, func()) {
	s, stoppers, err := setup.Init(command, loaderOptions()...)
	shutdown := func() {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		graceful.StopProcess(timeout, stoppers...)
	}
	if err != nil {
		shutdown()
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	return s, shutdown
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	for _, name := range job.New(nil).List() {
		fmt.Println(name)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n=ReconcileReservation -v=v1 -r={reservation-id}\nworker run -n=ReplayRequests -v=v1 -d=2024-01-14",
		Run:     runJob,
	}
	runJobCmdName        = "name"
	runJobCmdVersion     = "version"
	runJobCmdDate        = "date"
	runJobCmdReservation = "reservation"
	runJobCmdAction      = "action"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	reservationID, _ := ccmd.Flags().GetString(runJobCmdReservation)
	action, _ := ccmd.Flags().GetString(runJobCmdAction)

	s, shutdown := initSetup(ctx, "job")

	err := job.New(s.Service.Job).Start(ctx, models.JobFlag{
		JobName:       name,
		Version:       version,
		Date:          date,
		ReservationID: reservationID,
		Action:        action,
	})

	waitCtx, cancel := context.WithTimeout(ctx, s.Config.App.GracefulTimeout)
	if errWait := s.Service.Audit.Wait(waitCtx); errWait != nil {
		xlog.Warn(ctx, "[JOB] audit writes still pending", xlog.Err(errWait))
	}
	cancel()
	shutdown()

	if err != nil {
		os.Exit(1)
	}
	xlog.Info(ctx, "job server stopped!")
}

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create the audit tables",
		Long:  ``,
		Run:   migrate,
	}
)

func migrate(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	s, shutdown := initSetup(ctx, "migrate")
	defer shutdown()

	if s.RepoSQL == nil {
		xlog.Fatalf(ctx, "migrate: %v", common.ErrAuditDisabled)
	}

	err := s.RepoSQL.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		return r.GetMigrationRepository().Migrate(ctx)
	})
	if err != nil {
		xlog.Fatalf(ctx, "migrate: %v", err)
	}
	xlog.Info(ctx, "[MIGRATION] done")
}
