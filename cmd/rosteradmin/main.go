/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Command rosteradmin is the console client of the hospital roster administration backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"

	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/session"
	"github.com/asgardeo/rosteradmin/internal/system/config"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

const usage = `Usage: rosteradmin [-home dir] [-profile name] [-locale en|ar] <command> [arguments]

Commands:
  login -token <jwt>                      sign in with a bearer token
  logout                                  forget the stored token
  whoami                                  show the signed-in user
  list <entity> [filters]                 list a page of entities
  show <entity> <id>                      show one entity
  create <entity> -set field=value ...    create an entity
  update <entity> <id> -set field=value   update an entity
  delete <entity> <id> -reason <text>     delete an entity
  assign-manager -set departmentId=<id> -set userId=<id>
  remove-manager <id> -reason <text>
  assign-head -set categoryId=<id> -set userId=<id>
  remove-head <id> -reason <text>

Entities: department, scientificdegree, category, doctor, manager, categoryhead
`

// globalOptions are the flags given before the command.
type globalOptions struct {
	home    string
	profile string
	locale  string
}

func main() {
	logger := log.GetLogger()
	defer log.Sync()

	opts, args, err := parseGlobalFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	initRosterConfigurations(logger, getRosterHome(logger, opts.home))
	runtime := config.GetRosterRuntime()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sm, err := newServiceManager(ctx, runtime, opts.profile)
	if err != nil {
		logger.Fatal("Failed to initialize services", log.Error(err))
	}
	defer func() {
		if err := sm.close(); err != nil {
			logger.Error("Failed to close services", log.Error(err))
		}
	}()

	locale := runtime.Locale
	if opts.locale != "" {
		locale = i18n.ParseLocale(opts.locale)
	}
	i18n.SetCurrentLocale(locale)

	code := newApp(sm, os.Stdout, os.Stderr).run(ctx, args)
	if code != 0 {
		stop()
		log.Sync()
		os.Exit(code)
	}
}

func parseGlobalFlags(args []string, stderr io.Writer) (globalOptions, []string, error) {
	var opts globalOptions
	fs := flag.NewFlagSet("rosteradmin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = fmt.Fprint(stderr, usage) }
	fs.StringVar(&opts.home, "home", "", "Path to the rosteradmin home directory")
	fs.StringVar(&opts.profile, "profile", session.DefaultProfile, "Session profile")
	fs.StringVar(&opts.locale, "locale", "", "Display locale, en or ar")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// getRosterHome returns the home directory, defaulting to the working directory.
func getRosterHome(logger *log.Logger, home string) string {
	if home != "" {
		logger.Debug("Using home from command line argument", log.String("home", home))
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initRosterConfigurations loads the deployment configuration and initializes the runtime.
func initRosterConfigurations(logger *log.Logger, rosterHome string) {
	configFilePath := path.Join(rosterHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}
	if err := config.InitializeRosterRuntime(rosterHome, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}
}

// app dispatches console commands to the service manager.
type app struct {
	services *serviceManager
	stdout   io.Writer
	stderr   io.Writer
}

func newApp(services *serviceManager, stdout, stderr io.Writer) *app {
	return &app{services: services, stdout: stdout, stderr: stderr}
}

// run executes one command and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(a.stderr, usage)
		return 2
	}
	command, rest := args[0], args[1:]
	if command != "login" {
		if _, err := a.services.session.Restore(ctx); err != nil && !errors.Is(err, session.ErrNoSession) {
			_, _ = fmt.Fprintf(a.stderr, "warning: %v\n", err)
		}
	}

	err := a.dispatch(ctx, command, rest)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintf(a.stderr, "%v\n\n%s", err, usage)
		return 2
	default:
		a.printError(err)
		return 1
	}
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.services.session.Logout(ctx)
	case "whoami":
		return a.whoami()
	case "list":
		return a.list(ctx, args)
	case "show":
		return a.show(ctx, args)
	case "create":
		return a.create(ctx, "", args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.remove(ctx, "", args)
	case "assign-manager":
		return a.create(ctx, "manager", args)
	case "remove-manager":
		return a.remove(ctx, "manager", args)
	case "assign-head":
		return a.create(ctx, "categoryhead", args)
	case "remove-head":
		return a.remove(ctx, "categoryhead", args)
	case "help", "-h", "-help":
		_, _ = fmt.Fprint(a.stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) printError(err error) {
	var verr *crud.ValidationError
	if errors.As(err, &verr) {
		locale := i18n.CurrentLocale()
		for _, field := range verr.Fields {
			_, _ = fmt.Fprintf(a.stderr, "%s: %s\n", field.Field, field.Message.In(locale))
		}
		return
	}
	_, _ = fmt.Fprintf(a.stderr, "error: %v\n", err)
}
