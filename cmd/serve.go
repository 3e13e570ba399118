//
// See the file COPYRIGHT for copyright information.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wildhaven/reserve-console-go/api"
	"github.com/wildhaven/reserve-console-go/conf"
	"github.com/wildhaven/reserve-console-go/lib/authn"
	"github.com/wildhaven/reserve-console-go/lib/format"
	"github.com/wildhaven/reserve-console-go/lib/log"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/actionlog"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

const (
	envfileFlagName    = "envfile"
	envFileDefaultName = ".env"

	printConfigFlagName = "print-config"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch the reserve management server",
	Long: "Launch the reserve management server\n\n" +
		"Configuration starts from built-in defaults, then a .env file, " +
		"then RMS_* environment variables.",
	Run: runServer,
}

func runServer(cmd *cobra.Command, args []string) {
	rmsCfg := mustInitConfig(envFilename)
	os.Exit(runServerInternal(context.Background(), rmsCfg, printConfig, make(chan string, 1)))
}

// runServerInternal starts the reserve server and blocks until it is terminated.
//
// The supplied channel will be provided with the address of the server at the time when
// the server is started and ready to accept connections.
func runServerInternal(
	ctx context.Context, unvalidatedCfg *conf.RMSConfig,
	printConfig bool, listeningAddr chan<- string,
) (exitCode int) {
	must(unvalidatedCfg.Validate())
	rmsCfg := unvalidatedCfg

	configureLogger(rmsCfg)

	if printConfig {
		cfgStr := rmsCfg.PrintRedacted()
		stderrPrintf("Here's the final redacted RMSConfig:\n\n%v\n\n", cfgStr)
		stderrPrintf("With JWTSecret: %v...%v\n", rmsCfg.Core.JWTSecret[:1], rmsCfg.Core.JWTSecret[len(rmsCfg.Core.JWTSecret)-1:])
	}

	reserveDB, err := store.SqlDB(ctx, rmsCfg.Store, true)
	must(err)
	reserveDBQ := store.NewDBQ(reserveDB, reservedb.New())

	notifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	if conf.DeploymentType(rmsCfg.Core.Deployment) == conf.DeploymentTypeDev {
		seedDevAdmins(notifyCtx, reserveDBQ, rmsCfg.Core.Admins)
	}

	actionLogger := actionlog.NewLogger(notifyCtx, reserveDBQ, rmsCfg.Core.ActionLogEnabled, false)

	mux := http.NewServeMux()
	api.AddToMux(mux, rmsCfg, reserveDBQ, actionLogger)

	s := &http.Server{
		Handler:        mux,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	addr := fmt.Sprintf("%v:%v", rmsCfg.Core.Host, rmsCfg.Core.Port)
	listener, err := net.Listen("tcp", addr)
	must(err)
	addr = fmt.Sprintf("%v:%v", rmsCfg.Core.Host, listener.Addr().(*net.TCPAddr).Port)

	go func() {
		err := s.Serve(listener)
		slog.Error("Serve", "err", err)
	}()

	slog.Info("Reserve server is ready for connections",
		"addr", addr,
		"maxRequestSize", format.HumanByteSize(rmsCfg.Core.MaxRequestBytes),
	)
	slog.Info(fmt.Sprintf("Hit the API at http://%v/api/ping", addr))

	listeningAddr <- addr
	close(listeningAddr)
	// The goroutine will hang here until the NotifyContext is done
	<-notifyCtx.Done()
	stop()
	slog.Error("Shutting down gracefully, press Ctrl+C again to force")

	// Tell the server to shut down, giving it this much time to do so gracefully.
	// Don't parent this ctx on the notifyCtx, because it's already done.
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = s.Shutdown(timeoutCtx)
	slog.Error("Server shut down", "err", err)
	stop()
	cancel()
	return 69
}

// seedDevAdmins creates an admin login for each configured admin email,
// because the seed SQL can't contain any. Password hashes are salted, so
// there's no precomputable hash that could go in a .sql file.
func seedDevAdmins(ctx context.Context, reserveDBQ *store.DBQ, admins []string) {
	for _, email := range admins {
		_, err := reserveDBQ.AddAdmin(ctx, reserveDBQ, reservedb.AddAdminParams{
			Name:     "Dev Admin",
			Email:    email,
			Password: authn.NewSaltedDevOnly("admin"),
			Role:     "superadmin",
		})
		if err != nil {
			// Probably the row already exists from a previous startup.
			slog.Debug("Did not seed dev admin", "email", email, "err", err)
			continue
		}
		slog.Info("Seeded dev admin account with password 'admin'", "email", email)
	}
	if len(admins) == 0 {
		slog.Info("No dev admins configured. Set RMS_ADMINS to seed admin logins")
	}
}

func configureLogger(rmsCfg *conf.RMSConfig) {
	var logLevel slog.Level
	must(logLevel.UnmarshalText([]byte(rmsCfg.Core.LogLevel)))
	logger := slog.New(
		log.New(
			&slog.HandlerOptions{Level: logLevel},
		),
	)
	slog.SetDefault(logger)
}

var (
	envFilename string
	printConfig bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&envFilename, envfileFlagName, envFileDefaultName,
		"An env file from which to load reserve server configuration. "+
			"Defaults to '.env' in the current directory")
	serveCmd.Flags().BoolVar(&printConfig, printConfigFlagName, true,
		"Whether to print the redacted RMSConfig on server startup")
}

// must logs an error and panics. This should only be done for
// startup errors, not after the server is up and running.
func must(err error) {
	if err != nil {
		panic("got a startup error: " + err.Error())
	}
}

func stderrPrintf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
